package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tutorflow/engine/internal/engine"
)

// fakeStore is an in-memory Store recording call counts.
type fakeStore struct {
	mu      sync.Mutex
	puts    int
	deletes int
	payload *Payload
	putErr  error
	getErr  error
}

func (f *fakeStore) Get(_ context.Context, _, _ string) (*Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.payload == nil {
		return nil, &StorageError{Kind: KindNotFound}
	}
	return f.payload, nil
}

func (f *fakeStore) Put(_ context.Context, _, _ string, payload *Payload, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.payload = payload
	return nil
}

func (f *fakeStore) Delete(_ context.Context, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	f.payload = nil
	return nil
}

func (f *fakeStore) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

func testOpts() SaverOptions {
	return SaverOptions{Debounce: 5 * time.Millisecond, KeyRetryWait: 5 * time.Millisecond}
}

func newTestSaver(durable, fallback Store, key string) (*Saver, *engine.State) {
	state := engine.NewState("learner-1", key)
	sv := NewSaver(durable, fallback, state, func() string { return state.LessonKey }, zerolog.Nop(), testOpts())
	return sv, state
}

func settle() { time.Sleep(60 * time.Millisecond) }

func TestScheduleSave_CoalescesBurst(t *testing.T) {
	durable := &fakeStore{}
	sv, state := newTestSaver(durable, nil, "lesson")

	engine.StartTeaching(state)
	sv.ScheduleSave(LabelStateChange)
	sv.ScheduleSave(LabelStateChange)
	sv.ScheduleSave(LabelStateChange)
	settle()

	if durable.putCount() != 1 {
		t.Errorf("puts = %d, want 1 coalesced write", durable.putCount())
	}
}

func TestScheduleSave_PassiveDedupsBySignature(t *testing.T) {
	durable := &fakeStore{}
	sv, _ := newTestSaver(durable, nil, "lesson")

	sv.ScheduleSave(LabelStateChange)
	settle()
	// State untouched: a second passive save carries the same signature.
	sv.ScheduleSave(LabelStateChange)
	settle()

	if durable.putCount() != 1 {
		t.Errorf("puts = %d, want 1 (identical signature skipped)", durable.putCount())
	}
}

func TestScheduleSave_ForcedBypassesDedup(t *testing.T) {
	durable := &fakeStore{}
	sv, _ := newTestSaver(durable, nil, "lesson")

	sv.ScheduleSave("entered-worksheet")
	settle()
	sv.ScheduleSave("entered-test")
	settle()

	if durable.putCount() != 2 {
		t.Errorf("puts = %d, want 2 forced writes", durable.putCount())
	}
}

func TestScheduleSave_ForcedUpgradesPending(t *testing.T) {
	durable := &fakeStore{}
	sv, _ := newTestSaver(durable, nil, "lesson")

	// Prime lastSig so a passive save would be skipped.
	sv.ScheduleSave(LabelStateChange)
	settle()

	// Passive first, then forced while pending: the single slot fires once,
	// as a forced save.
	sv.ScheduleSave(LabelStateChange)
	sv.ScheduleSave("gate-answer")
	settle()

	if durable.putCount() != 2 {
		t.Errorf("puts = %d, want 2 (pending save upgraded to forced)", durable.putCount())
	}
}

func TestScheduleSave_EmptyKeyDropsPassive(t *testing.T) {
	durable := &fakeStore{}
	sv, _ := newTestSaver(durable, nil, "")

	sv.ScheduleSave(LabelStateChange)
	settle()

	if durable.putCount() != 0 {
		t.Errorf("puts = %d, want 0 for unresolvable key", durable.putCount())
	}
}

func TestScheduleSave_ForcedRetriesUntilKeyResolves(t *testing.T) {
	durable := &fakeStore{}
	sv, state := newTestSaver(durable, nil, "")

	sv.ScheduleSave("session-start")
	time.Sleep(8 * time.Millisecond)
	state.LessonKey = "resolved"
	settle()

	if durable.putCount() != 1 {
		t.Errorf("puts = %d, want 1 after key resolved", durable.putCount())
	}
}

func TestWrite_SchemaMissingDowngradesToFallback(t *testing.T) {
	durable := &fakeStore{putErr: &StorageError{Kind: KindSchemaMissing, Raw: errors.New("no such table")}}
	fallback := &fakeStore{}
	sv, _ := newTestSaver(durable, fallback, "lesson")

	sv.ScheduleSave("entered-worksheet")
	settle()

	if fallback.putCount() != 1 {
		t.Fatalf("fallback puts = %d, want 1", fallback.putCount())
	}
	if !sv.UsingFallback() {
		t.Error("saver should be downgraded")
	}

	// The durable store is never attempted again this session.
	sv.ScheduleSave("entered-test")
	settle()

	if durable.putCount() != 0 {
		t.Errorf("durable puts = %d, want 0", durable.putCount())
	}
	if fallback.putCount() != 2 {
		t.Errorf("fallback puts = %d, want 2", fallback.putCount())
	}
}

func TestWrite_TransientErrorSkipsCycle(t *testing.T) {
	durable := &fakeStore{putErr: &StorageError{Kind: KindTransient, Raw: errors.New("database is locked")}}
	fallback := &fakeStore{}
	sv, _ := newTestSaver(durable, fallback, "lesson")

	sv.ScheduleSave("entered-worksheet")
	settle()

	if sv.UsingFallback() {
		t.Error("transient errors must not downgrade")
	}
	if fallback.putCount() != 0 {
		t.Errorf("fallback puts = %d, want 0", fallback.putCount())
	}
}

func TestRestore_SuppressesPassiveSavesUntilApplied(t *testing.T) {
	durable := &fakeStore{payload: &Payload{Phase: "worksheet", SubPhase: "worksheet-active"}}
	sv, _ := newTestSaver(durable, nil, "lesson")

	payload, err := sv.Restore(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if payload == nil {
		t.Fatal("expected a payload")
	}

	sv.ScheduleSave(LabelStateChange)
	settle()
	if durable.putCount() != 0 {
		t.Fatalf("puts = %d, want 0 while suppressed", durable.putCount())
	}

	sv.MarkRestored()
	sv.ScheduleSave(LabelStateChange)
	settle()
	if durable.putCount() != 1 {
		t.Errorf("puts = %d, want 1 after MarkRestored", durable.putCount())
	}
}

func TestRestore_NotFoundIsFreshStart(t *testing.T) {
	durable := &fakeStore{}
	sv, _ := newTestSaver(durable, nil, "lesson")

	payload, err := sv.Restore(context.Background())
	if err != nil {
		t.Fatalf("not-found should not be an error: %v", err)
	}
	if payload != nil {
		t.Fatal("expected nil payload")
	}

	// Fresh start: passive saves are not suppressed.
	sv.ScheduleSave(LabelStateChange)
	settle()
	if durable.putCount() != 1 {
		t.Errorf("puts = %d, want 1", durable.putCount())
	}
}

func TestRestore_SchemaMissingFallsBack(t *testing.T) {
	durable := &fakeStore{getErr: &StorageError{Kind: KindSchemaMissing, Raw: errors.New("no such table")}}
	fallback := &fakeStore{payload: &Payload{Phase: "exercise"}}
	sv, _ := newTestSaver(durable, fallback, "lesson")

	payload, err := sv.Restore(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if payload == nil || payload.Phase != "exercise" {
		t.Fatalf("payload = %+v, want fallback copy", payload)
	}
	if !sv.UsingFallback() {
		t.Error("saver should be downgraded after a schema-missing read")
	}
}

func TestDelete_RemovesFromBothStores(t *testing.T) {
	durable := &fakeStore{payload: &Payload{}}
	fallback := &fakeStore{payload: &Payload{}}
	sv, _ := newTestSaver(durable, fallback, "lesson")

	if err := sv.Delete(context.Background()); err != nil {
		t.Fatal(err)
	}
	if durable.deletes != 1 || fallback.deletes != 1 {
		t.Errorf("deletes = %d/%d, want 1/1", durable.deletes, fallback.deletes)
	}
}

func TestFlush_FiresPendingImmediately(t *testing.T) {
	durable := &fakeStore{}
	sv, _ := newTestSaver(durable, nil, "lesson")

	sv.ScheduleSave("entered-test")
	sv.Flush()

	if durable.putCount() != 1 {
		t.Errorf("puts = %d, want 1 without waiting for the debounce", durable.putCount())
	}
}
