package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tutorflow/engine/ent"
	"github.com/tutorflow/engine/ent/lessonsnapshot"
	"github.com/tutorflow/engine/internal/snapshot"
)

// SnapshotStore implements snapshot.Store on the ent client. All failures
// are returned as typed *snapshot.StorageError so callers never inspect
// error text.
type SnapshotStore struct {
	client *ent.Client
}

func (s *SnapshotStore) Get(ctx context.Context, learnerID, lessonKey string) (*snapshot.Payload, error) {
	row, err := s.client.LessonSnapshot.Query().
		Where(
			lessonsnapshot.LearnerID(learnerID),
			lessonsnapshot.LessonKey(lessonKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &snapshot.StorageError{Kind: snapshot.KindNotFound, Raw: err}
		}
		return nil, classify(err)
	}

	payload, err := dataToPayload(row.Data)
	if err != nil {
		return nil, &snapshot.StorageError{Kind: snapshot.KindUnknown, Raw: err}
	}
	return payload, nil
}

func (s *SnapshotStore) Put(ctx context.Context, learnerID, lessonKey string, payload *snapshot.Payload, signature string) error {
	dataMap, err := payloadToData(payload)
	if err != nil {
		return &snapshot.StorageError{Kind: snapshot.KindUnknown, Raw: err}
	}

	err = s.client.LessonSnapshot.Create().
		SetLearnerID(learnerID).
		SetLessonKey(lessonKey).
		SetSignature(signature).
		SetData(dataMap).
		OnConflictColumns(lessonsnapshot.FieldLearnerID, lessonsnapshot.FieldLessonKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context, learnerID, lessonKey string) error {
	_, err := s.client.LessonSnapshot.Delete().
		Where(
			lessonsnapshot.LearnerID(learnerID),
			lessonsnapshot.LessonKey(lessonKey),
		).
		Exec(ctx)
	if err != nil {
		return classify(err)
	}
	return nil
}

// classify maps a driver error to a typed StorageError. SQLite reports a
// missing or mismatched schema through a small set of message signals;
// matching them here keeps the rest of the system off string inspection.
func classify(err error) *snapshot.StorageError {
	msg := err.Error()
	for _, signal := range schemaMissingSignals {
		if strings.Contains(msg, signal) {
			return &snapshot.StorageError{Kind: snapshot.KindSchemaMissing, Raw: err}
		}
	}
	for _, signal := range transientSignals {
		if strings.Contains(msg, signal) {
			return &snapshot.StorageError{Kind: snapshot.KindTransient, Raw: err}
		}
	}
	return &snapshot.StorageError{Kind: snapshot.KindUnknown, Raw: err}
}

var schemaMissingSignals = []string{
	"no such table",
	"no such column",
	"table lesson_snapshots has no column",
}

var transientSignals = []string{
	"database is locked",
	"database table is locked",
	"busy",
}

// payloadToData converts a Payload to map[string]any for ent JSON storage.
func payloadToData(p *snapshot.Payload) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("remarshal payload: %w", err)
	}
	return m, nil
}

// dataToPayload converts stored JSON back to a Payload.
func dataToPayload(m map[string]any) (*snapshot.Payload, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	var p snapshot.Payload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return &p, nil
}
