package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorflow/engine/internal/snapshot"
)

func testFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return fs
}

func TestFileStore_RoundTrip(t *testing.T) {
	fs := testFileStore(t)
	ctx := context.Background()

	payload := &snapshot.Payload{
		Phase:        "worksheet",
		SubPhase:     "worksheet-active",
		Indices:      snapshot.Indices{Worksheet: 3},
		CaptionIndex: 2,
	}

	require.NoError(t, fs.Put(ctx, "learner-1", "fractions-intro", payload, "sig-1"))

	got, err := fs.Get(ctx, "learner-1", "fractions-intro")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFileStore_GetMissing(t *testing.T) {
	fs := testFileStore(t)

	_, err := fs.Get(context.Background(), "learner-1", "nope")
	require.Error(t, err)
	assert.True(t, snapshot.IsKind(err, snapshot.KindNotFound))
}

func TestFileStore_OverwriteKeepsLatest(t *testing.T) {
	fs := testFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, "l", "k", &snapshot.Payload{Phase: "teaching"}, "a"))
	require.NoError(t, fs.Put(ctx, "l", "k", &snapshot.Payload{Phase: "exercise"}, "b"))

	got, err := fs.Get(ctx, "l", "k")
	require.NoError(t, err)
	assert.Equal(t, "exercise", got.Phase)
}

func TestFileStore_Delete(t *testing.T) {
	fs := testFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, "l", "k", &snapshot.Payload{Phase: "teaching"}, "a"))
	require.NoError(t, fs.Delete(ctx, "l", "k"))

	_, err := fs.Get(ctx, "l", "k")
	assert.True(t, snapshot.IsKind(err, snapshot.KindNotFound))

	// Deleting a missing snapshot is not an error.
	assert.NoError(t, fs.Delete(ctx, "l", "k"))
}

func TestFileStore_SanitizesIdentifiers(t *testing.T) {
	fs := testFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, "who/../../ami", "math/les son", &snapshot.Payload{Phase: "teaching"}, "a"))

	got, err := fs.Get(ctx, "who/../../ami", "math/les son")
	require.NoError(t, err)
	assert.Equal(t, "teaching", got.Phase)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want snapshot.ErrorKind
	}{
		{"no such table: lesson_snapshots", snapshot.KindSchemaMissing},
		{"table lesson_snapshots has no column named data", snapshot.KindSchemaMissing},
		{"database is locked", snapshot.KindTransient},
		{"database table is locked", snapshot.KindTransient},
		{"SQLITE_BUSY: busy", snapshot.KindTransient},
		{"constraint failed", snapshot.KindUnknown},
	}

	for _, tc := range tests {
		got := classify(errors.New(tc.msg))
		assert.True(t, snapshot.IsKind(got, tc.want), "classify(%q) = %v, want %v", tc.msg, got.Kind, tc.want)
	}
}
