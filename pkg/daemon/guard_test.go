package daemon

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProber is an in-memory process table.
type fakeProber struct {
	alive map[int]bool
}

func (f fakeProber) Alive(pid int) bool {
	return f.alive[pid]
}

func setupGuard(t *testing.T, alive map[int]bool) (*Guard, string) {
	t.Helper()
	pidPath := filepath.Join(t.TempDir(), "daemon.pid")
	return NewGuardWithProber(pidPath, fakeProber{alive: alive}), pidPath
}

func TestGuardRunning(t *testing.T) {
	t.Run("No Marker", func(t *testing.T) {
		g, _ := setupGuard(t, nil)
		assert.False(t, g.Running())
	})

	t.Run("Live Process", func(t *testing.T) {
		g, pidPath := setupGuard(t, map[int]bool{4242: true})
		require.NoError(t, os.WriteFile(pidPath, []byte("4242"), 0644))

		assert.True(t, g.Running())
		assert.FileExists(t, pidPath)
	})

	t.Run("Stale Marker Is Removed", func(t *testing.T) {
		g, pidPath := setupGuard(t, map[int]bool{})
		require.NoError(t, os.WriteFile(pidPath, []byte("4242"), 0644))

		assert.False(t, g.Running())
		assert.NoFileExists(t, pidPath, "stale marker must be cleaned up")
	})

	t.Run("Garbage Content", func(t *testing.T) {
		g, pidPath := setupGuard(t, nil)
		require.NoError(t, os.WriteFile(pidPath, []byte("not-a-pid"), 0644))

		assert.False(t, g.Running())
	})

	t.Run("Non Positive Pid", func(t *testing.T) {
		g, pidPath := setupGuard(t, map[int]bool{0: true})
		require.NoError(t, os.WriteFile(pidPath, []byte("0"), 0644))

		assert.False(t, g.Running())
	})
}

func TestGuardWritePID(t *testing.T) {
	g, pidPath := setupGuard(t, nil)
	require.NoError(t, g.WritePID())

	data, err := os.ReadFile(pidPath)
	require.NoError(t, err)

	pid, err := strconv.Atoi(string(data))
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}
