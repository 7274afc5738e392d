package store

import (
	"github.com/aretw0/introspection"
)

// State exposes internal state for observability.
type State struct {
	Root      string `json:"root"`
	NoteCount int    `json:"note_count"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return State{
		Root:      s.paths.Root,
		NoteCount: len(s.index.Notes),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
