package daemon

import (
	"fmt"
	"log/slog"
	"os"
)

// OpenLog returns a logger appending timestamped lines to daemon.log,
// plus a close func for the underlying file. The daemon runs detached, so
// this file is its only observable output.
func OpenLog(path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, f.Close, nil
}
