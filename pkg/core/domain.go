// Package core holds the domain model shared by the store, the daemon and
// the CLI. It is agnostic to where the data lives on disk.
package core

import "time"

// Note is the central entity of the domain: one editable document with an
// append-only version history.
type Note struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CurrentVersion always references an existing entry in Versions.
	CurrentVersion int `json:"current_version"`

	// Versions is ordered ascending by version number, with no gaps.
	// Entries are never reordered or pruned.
	Versions []Version `json:"versions"`

	// WorkingHash caches the content hash of the working copy as of the
	// last observation. Advisory only; snapshot decisions compare against
	// the last version's hash, never this field.
	WorkingHash string `json:"working_hash,omitempty"`
}

// Version is one immutable snapshot of a note's content.
type Version struct {
	Version   int       `json:"version"`
	Path      string    `json:"path"` // relative to the data root
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

// Last returns the most recent version entry. ok is false only for a
// zero-value Note; persisted notes always carry at least one version.
func (n *Note) Last() (Version, bool) {
	if len(n.Versions) == 0 {
		return Version{}, false
	}
	return n.Versions[len(n.Versions)-1], true
}

// Current returns the version entry matching CurrentVersion, falling back
// to the last entry if the numbered one is absent.
func (n *Note) Current() (Version, bool) {
	for _, v := range n.Versions {
		if v.Version == n.CurrentVersion {
			return v, true
		}
	}
	return n.Last()
}
