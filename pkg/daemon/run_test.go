package daemon

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tmoura/strata/pkg/store"
)

// TestRun_PromotesOutOfBandEdit exercises the real fsnotify path: an edit
// landing in files/ must be promoted after the cooldown elapses.
func TestRun_PromotesOutOfBandEdit(t *testing.T) {
	paths := store.NewPathsAt(t.TempDir())

	s, err := store.Open(paths)
	require.NoError(t, err)
	_, err = s.Create("Live")
	require.NoError(t, err)
	require.NoError(t, s.Save())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	w := NewWatcher(paths, WithCooldown(testCooldown))
	go func() {
		_ = w.Run(ctx)
	}()

	// Wait a bit to ensure watcher is ready (naive)
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(paths.WorkingFile("live"), []byte("edited by hand"), 0644))

	require.Eventually(t, func() bool {
		reloaded, err := store.Open(paths)
		if err != nil {
			return false
		}
		n, ok := reloaded.Get("live")
		return ok && n.CurrentVersion == 2
	}, 5*time.Second, 50*time.Millisecond, "edit was never promoted")

	// The watcher registered itself in the pid marker.
	data, err := os.ReadFile(paths.DaemonPID)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
