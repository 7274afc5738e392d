package store_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmoura/strata/pkg/core"
)

func TestSnapshotIfChanged(t *testing.T) {
	t.Run("Idempotent When Unchanged", func(t *testing.T) {
		s, _ := setupStore(t)
		_, err := s.Create("Stable")
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			changed, err := s.SnapshotIfChanged("stable")
			require.NoError(t, err)
			assert.False(t, changed)
		}

		n, _ := s.Get("stable")
		assert.Len(t, n.Versions, 1)
		assert.Equal(t, 1, n.CurrentVersion)
	})

	t.Run("Promotes Changed Working Copy", func(t *testing.T) {
		s, paths := setupStore(t)
		_, err := s.Create("Draft")
		require.NoError(t, err)

		content := []byte("# Draft\n\nsome text\n")
		require.NoError(t, s.WriteWorking("draft", content))

		changed, err := s.SnapshotIfChanged("draft")
		require.NoError(t, err)
		assert.True(t, changed)

		n, _ := s.Get("draft")
		assert.Equal(t, 2, n.CurrentVersion)
		require.Len(t, n.Versions, 2)
		assert.Equal(t, 2, n.Versions[1].Version)
		assert.Equal(t, core.HashBytes(content), n.Versions[1].Hash)
		assert.Equal(t, core.HashBytes(content), n.WorkingHash)

		blob, err := os.ReadFile(paths.Abs(n.Versions[1].Path))
		require.NoError(t, err)
		assert.Equal(t, content, blob)
	})

	t.Run("Materializes Missing Working Copy", func(t *testing.T) {
		s, paths := setupStore(t)
		_, err := s.Create("Restored")
		require.NoError(t, err)

		content := []byte("survives deletion")
		require.NoError(t, s.WriteWorking("restored", content))
		_, err = s.SnapshotIfChanged("restored")
		require.NoError(t, err)

		require.NoError(t, os.Remove(paths.WorkingFile("restored")))

		changed, err := s.SnapshotIfChanged("restored")
		require.NoError(t, err)
		assert.False(t, changed, "materialized copy matches the last version")

		got, err := s.ReadWorking("restored")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("Unknown Slug Is NotFound", func(t *testing.T) {
		s, _ := setupStore(t)

		_, err := s.SnapshotIfChanged("ghost")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestSnapshotAll(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.Create("One")
	require.NoError(t, err)
	_, err = s.Create("Two")
	require.NoError(t, err)

	require.NoError(t, s.WriteWorking("two", []byte("changed")))

	updated, err := s.SnapshotAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, updated)
}

func TestRollback(t *testing.T) {
	t.Run("Copies Forward", func(t *testing.T) {
		s, paths := setupStore(t)
		_, err := s.Create("Retro")
		require.NoError(t, err)

		require.NoError(t, s.WriteWorking("retro", []byte("v2")))
		changed, err := s.SnapshotIfChanged("retro")
		require.NoError(t, err)
		require.True(t, changed)

		workingPath, err := s.Rollback("retro", 1)
		require.NoError(t, err)
		assert.Equal(t, paths.WorkingFile("retro"), workingPath)

		n, _ := s.Get("retro")
		assert.Equal(t, 3, n.CurrentVersion)
		require.Len(t, n.Versions, 3, "rollback appends, never rewinds")

		blob, err := os.ReadFile(paths.Abs(n.Versions[2].Path))
		require.NoError(t, err)
		assert.Empty(t, blob, "version 3 duplicates the empty version 1")

		working, err := os.ReadFile(workingPath)
		require.NoError(t, err)
		assert.Empty(t, working)
	})

	t.Run("Defaults To Previous Version", func(t *testing.T) {
		s, _ := setupStore(t)
		_, err := s.Create("Steps")
		require.NoError(t, err)

		require.NoError(t, s.WriteWorking("steps", []byte("second")))
		_, err = s.SnapshotIfChanged("steps")
		require.NoError(t, err)

		_, err = s.Rollback("steps", 0)
		require.NoError(t, err)

		working, err := s.ReadWorking("steps")
		require.NoError(t, err)
		assert.Empty(t, working)
	})

	t.Run("Snapshots Pending Edits First", func(t *testing.T) {
		s, _ := setupStore(t)
		_, err := s.Create("Careful")
		require.NoError(t, err)

		// Unpromoted edit: rollback must not lose it.
		require.NoError(t, s.WriteWorking("careful", []byte("pending")))

		_, err = s.Rollback("careful", 1)
		require.NoError(t, err)

		n, _ := s.Get("careful")
		require.Len(t, n.Versions, 3)
		assert.Equal(t, core.HashBytes([]byte("pending")), n.Versions[1].Hash)
	})

	t.Run("No Previous Version", func(t *testing.T) {
		s, _ := setupStore(t)
		_, err := s.Create("Fresh")
		require.NoError(t, err)

		_, err = s.Rollback("fresh", 0)
		assert.ErrorIs(t, err, core.ErrNoPreviousVersion)
	})

	t.Run("Unknown Target Version", func(t *testing.T) {
		s, _ := setupStore(t)
		_, err := s.Create("Short")
		require.NoError(t, err)

		_, err = s.Rollback("short", 42)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Unknown Identifier", func(t *testing.T) {
		s, _ := setupStore(t)

		_, err := s.Rollback("ghost", 0)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestOpenNote(t *testing.T) {
	s, paths := setupStore(t)
	_, err := s.Create("Journal")
	require.NoError(t, err)

	require.NoError(t, s.WriteWorking("journal", []byte("today")))

	path, err := s.OpenNote("Journal")
	require.NoError(t, err)
	assert.Equal(t, paths.WorkingFile("journal"), path)

	n, _ := s.Get("journal")
	assert.Equal(t, 2, n.CurrentVersion, "open promotes pending edits")
}
