package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tutorflow/engine/internal/engine"
)

// LabelStateChange marks a passive/automatic save. Any other label is a
// forced save (e.g. "entered-worksheet") that bypasses signature dedup.
const LabelStateChange = "state-change"

const (
	defaultDebounce = 300 * time.Millisecond
	defaultKeyWait  = 400 * time.Millisecond
	maxKeyRetries   = 5
	writeTimeout    = 5 * time.Second
)

// Saver owns the write side of snapshot persistence for one session:
// a single-slot debounced pending save, signature dedup, forced-save key
// retry, and permanent downgrade to the fallback store when the durable
// store's schema is missing.
type Saver struct {
	durable  Store
	fallback Store
	state    *engine.State
	keyFn    func() string // returns "" while the canonical key is unknown
	log      zerolog.Logger

	debounce time.Duration
	keyWait  time.Duration

	mu            sync.Mutex
	pending       *time.Timer // the single pending-save slot
	pendingForced bool
	lastSig       string
	usingFallback bool
	warned        bool
	suppressed    bool // passive saves suppressed until restore completes
	inFlight      bool
}

// SaverOptions tunes saver timing. Zero values use the defaults.
type SaverOptions struct {
	Debounce     time.Duration
	KeyRetryWait time.Duration
}

// NewSaver creates a Saver for one session. fallback may be nil when no
// local store is available; downgrade then drops saves instead.
func NewSaver(durable, fallback Store, state *engine.State, keyFn func() string, log zerolog.Logger, opts SaverOptions) *Saver {
	if opts.Debounce == 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.KeyRetryWait == 0 {
		opts.KeyRetryWait = defaultKeyWait
	}
	return &Saver{
		durable:  durable,
		fallback: fallback,
		state:    state,
		keyFn:    keyFn,
		log:      log,
		debounce: opts.Debounce,
		keyWait:  opts.KeyRetryWait,
	}
}

// ScheduleSave requests a snapshot write. Bursts within the debounce
// window coalesce into the pending slot; a forced label upgrades a
// coalesced pending save to forced.
func (sv *Saver) ScheduleSave(label string) {
	forced := label != LabelStateChange

	sv.mu.Lock()
	defer sv.mu.Unlock()

	if !forced && sv.suppressed {
		return
	}

	if sv.pending != nil {
		sv.pendingForced = sv.pendingForced || forced
		return
	}

	sv.pendingForced = forced
	sv.pending = time.AfterFunc(sv.debounce, func() { sv.fire(0) })
}

// Flush fires any pending save immediately. Intended for phase exits and
// host shutdown.
func (sv *Saver) Flush() {
	sv.mu.Lock()
	hadPending := sv.pending != nil
	if hadPending {
		sv.pending.Stop()
	}
	sv.mu.Unlock()

	if hadPending {
		sv.fire(0)
	}
}

// fire performs one save attempt. attempt counts key-resolution retries
// for forced saves.
func (sv *Saver) fire(attempt int) {
	sv.mu.Lock()
	forced := sv.pendingForced
	sv.pending = nil
	sv.pendingForced = false

	// A save already in flight: skip rather than queue, trading recency
	// for avoiding a write backlog.
	if sv.inFlight {
		sv.mu.Unlock()
		return
	}

	key := sv.keyFn()
	if key == "" {
		// Key not derivable yet. Forced saves retry with fixed back-off;
		// passive saves give up silently.
		if forced && attempt < maxKeyRetries {
			sv.pendingForced = true
			sv.pending = time.AfterFunc(sv.keyWait, func() { sv.fire(attempt + 1) })
		}
		sv.mu.Unlock()
		return
	}

	sig := Signature(sv.state)
	if !forced && sig == sv.lastSig {
		sv.mu.Unlock()
		return
	}

	payload := FromState(sv.state)
	learner := sv.state.LearnerID
	sv.inFlight = true
	sv.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	err := sv.write(ctx, learner, key, payload, sig)
	cancel()

	sv.mu.Lock()
	sv.inFlight = false
	if err == nil {
		sv.lastSig = sig
	}
	sv.mu.Unlock()
}

// write persists to the active store, downgrading permanently to the
// fallback when the durable store's schema is missing.
func (sv *Saver) write(ctx context.Context, learner, key string, payload *Payload, sig string) error {
	store := sv.activeStore()
	if store == nil {
		return nil
	}

	err := store.Put(ctx, learner, key, payload, sig)
	if err == nil {
		return nil
	}

	if store == sv.durable && IsKind(err, KindSchemaMissing) {
		sv.downgrade(err)
		if sv.fallback != nil {
			return sv.fallback.Put(ctx, learner, key, payload, sig)
		}
		return nil
	}

	// Transient or unknown: skip this cycle, the next state change will
	// schedule another save.
	sv.log.Debug().Err(err).Str("lessonKey", key).Msg("snapshot write skipped")
	return err
}

// Restore loads the snapshot for the session's pair, if any. When one is
// found, passive saves are suppressed until MarkRestored is called, so an
// early passive save cannot clobber the stored snapshot with
// half-initialized state.
func (sv *Saver) Restore(ctx context.Context) (*Payload, error) {
	key := sv.keyFn()
	if key == "" {
		return nil, nil
	}

	store := sv.activeStore()
	if store == nil {
		return nil, nil
	}

	payload, err := store.Get(ctx, sv.state.LearnerID, key)
	if err != nil {
		if store == sv.durable && IsKind(err, KindSchemaMissing) {
			sv.downgrade(err)
			if sv.fallback != nil {
				payload, err = sv.fallback.Get(ctx, sv.state.LearnerID, key)
			}
		}
		if err != nil {
			if IsKind(err, KindNotFound) {
				return nil, nil
			}
			return nil, err
		}
	}

	sv.mu.Lock()
	sv.suppressed = true
	sv.mu.Unlock()
	return payload, nil
}

// MarkRestored lifts passive-save suppression once the restored payload
// has been applied to the in-memory state.
func (sv *Saver) MarkRestored() {
	sv.mu.Lock()
	sv.suppressed = false
	sv.mu.Unlock()
}

// Delete removes the session's snapshot from both stores. Called on
// lesson completion so a revisit starts fresh.
func (sv *Saver) Delete(ctx context.Context) error {
	key := sv.keyFn()
	if key == "" {
		return nil
	}

	sv.mu.Lock()
	if sv.pending != nil {
		sv.pending.Stop()
		sv.pending = nil
	}
	sv.mu.Unlock()

	var firstErr error
	if sv.durable != nil {
		if err := sv.durable.Delete(ctx, sv.state.LearnerID, key); err != nil && !IsKind(err, KindNotFound) {
			firstErr = err
		}
	}
	if sv.fallback != nil {
		if err := sv.fallback.Delete(ctx, sv.state.LearnerID, key); err != nil && !IsKind(err, KindNotFound) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// UsingFallback reports whether the saver has downgraded to the local
// fallback store.
func (sv *Saver) UsingFallback() bool {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.usingFallback
}

func (sv *Saver) activeStore() Store {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.usingFallback {
		return sv.fallback
	}
	if sv.durable != nil {
		return sv.durable
	}
	return sv.fallback
}

// downgrade switches to the fallback store for the rest of the session
// and logs a single facilitator-facing warning. The durable store is not
// retried; a structurally broken store must not be hammered.
func (sv *Saver) downgrade(cause error) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.usingFallback {
		return
	}
	sv.usingFallback = true
	if !sv.warned {
		sv.warned = true
		sv.log.Warn().Err(cause).Msg("durable snapshot store unavailable, using local fallback for this session")
	}
}
