// Package snapshot makes session state durable across reloads and device
// switches: canonical key derivation, debounced deduplicated writes, and
// restore with a local fallback when the durable store is broken.
package snapshot

import (
	"context"
	"fmt"
)

// ErrorKind classifies storage failures so callers never pattern-match on
// error message text.
type ErrorKind int

const (
	// KindUnknown is a failure the adapter could not classify.
	KindUnknown ErrorKind = iota
	// KindTransient is a retryable failure (I/O hiccup, lock contention).
	KindTransient
	// KindSchemaMissing means the store's schema (table/column) is absent.
	// Structural: callers should downgrade, not retry.
	KindSchemaMissing
	// KindNotFound means no snapshot exists for the key.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindSchemaMissing:
		return "schema-missing"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// StorageError is the typed failure every Store implementation returns.
type StorageError struct {
	Kind ErrorKind
	Raw  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Kind, e.Raw)
}

func (e *StorageError) Unwrap() error { return e.Raw }

// IsKind reports whether err is a StorageError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	se, ok := err.(*StorageError)
	return ok && se.Kind == kind
}

// Store is the key-value snapshot store contract, scoped per
// (learner, canonical lesson key) pair.
type Store interface {
	// Get returns the snapshot for the pair, or a KindNotFound error.
	Get(ctx context.Context, learnerID, lessonKey string) (*Payload, error)

	// Put writes the full payload atomically, replacing any previous
	// snapshot for the pair.
	Put(ctx context.Context, learnerID, lessonKey string, payload *Payload, signature string) error

	// Delete removes the snapshot for the pair. Deleting a missing
	// snapshot is not an error.
	Delete(ctx context.Context, learnerID, lessonKey string) error
}
