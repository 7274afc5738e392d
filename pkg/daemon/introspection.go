package daemon

import (
	"time"

	"github.com/aretw0/introspection"
)

// WatcherState exposes internal state for observability.
type WatcherState struct {
	Root     string        `json:"root"`
	Pattern  string        `json:"pattern"`
	Cooldown time.Duration `json:"cooldown"`
}

// State implements introspection.Introspectable.
func (w *Watcher) State() any {
	return WatcherState{
		Root:     w.paths.Root,
		Pattern:  w.pattern,
		Cooldown: w.cooldown,
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "watcher"
}

var _ introspection.Introspectable = (*Watcher)(nil)
var _ introspection.Component = (*Watcher)(nil)
