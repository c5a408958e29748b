package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tutorflow/engine/internal/snapshot"
)

// FileStore is the local fallback snapshot store: one JSON file per
// (learner, lesson) pair under a base directory. Writes are atomic
// (temp file + rename).
type FileStore struct {
	Dir string
}

// NewFileStore creates the base directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create fallback dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) Get(_ context.Context, learnerID, lessonKey string) (*snapshot.Payload, error) {
	raw, err := os.ReadFile(s.path(learnerID, lessonKey))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &snapshot.StorageError{Kind: snapshot.KindNotFound, Raw: err}
		}
		return nil, &snapshot.StorageError{Kind: snapshot.KindTransient, Raw: err}
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, &snapshot.StorageError{Kind: snapshot.KindUnknown, Raw: err}
	}
	return entry.Payload, nil
}

func (s *FileStore) Put(_ context.Context, learnerID, lessonKey string, payload *snapshot.Payload, signature string) error {
	path := s.path(learnerID, lessonKey)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &snapshot.StorageError{Kind: snapshot.KindTransient, Raw: err}
	}

	raw, err := json.Marshal(fileEntry{Signature: signature, Payload: payload})
	if err != nil {
		return &snapshot.StorageError{Kind: snapshot.KindUnknown, Raw: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return &snapshot.StorageError{Kind: snapshot.KindTransient, Raw: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &snapshot.StorageError{Kind: snapshot.KindTransient, Raw: err}
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, learnerID, lessonKey string) error {
	err := os.Remove(s.path(learnerID, lessonKey))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &snapshot.StorageError{Kind: snapshot.KindTransient, Raw: err}
	}
	return nil
}

type fileEntry struct {
	Signature string            `json:"signature"`
	Payload   *snapshot.Payload `json:"payload"`
}

func (s *FileStore) path(learnerID, lessonKey string) string {
	return filepath.Join(s.Dir, sanitize(learnerID), sanitize(lessonKey)+".json")
}

// sanitize keeps identifiers filesystem-safe.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
