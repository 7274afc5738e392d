package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tmoura/strata/pkg/core"
)

// index is the on-disk metadata document, one entry per note keyed by
// slug. It is always read and written whole; there is no incremental
// persistence.
type index struct {
	Notes map[string]*core.Note `json:"notes"`
}

func newIndex() index {
	return index{Notes: make(map[string]*core.Note)}
}

// loadIndex reads the full index file, starting empty if it does not
// exist yet.
func loadIndex(path string) (index, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newIndex(), nil
		}
		return index{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var idx index
	if err := json.Unmarshal(content, &idx); err != nil {
		return index{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if idx.Notes == nil {
		idx.Notes = make(map[string]*core.Note)
	}
	return idx, nil
}

// save rewrites the whole index. Pretty-printed so the file stays
// readable when users poke at it.
func (idx index) save(path string) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize index: %w", err)
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
