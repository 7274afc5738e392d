package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmoura/strata/pkg/store"
)

func TestNewPaths_EnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv(store.EnvHome, root)

	paths, err := store.NewPaths()
	require.NoError(t, err)

	assert.Equal(t, root, paths.Root)
	assert.Equal(t, filepath.Join(root, "index.json"), paths.Index)
	assert.Equal(t, filepath.Join(root, "daemon.pid"), paths.DaemonPID)
	assert.Equal(t, filepath.Join(root, "daemon.log"), paths.DaemonLog)
}

func TestVersionRel(t *testing.T) {
	paths := store.NewPathsAt(t.TempDir())

	assert.Equal(t, "versions/todo/0000001.md", paths.VersionRel("todo", 1))
	assert.Equal(t, "versions/todo/0000042.md", paths.VersionRel("todo", 42))
	assert.Equal(t, "versions/todo/1234567.md", paths.VersionRel("todo", 1234567))
}

func TestWorkingFile(t *testing.T) {
	paths := store.NewPathsAt(t.TempDir())
	assert.Equal(t, filepath.Join(paths.Files, "todo.md"), paths.WorkingFile("todo"))
}
