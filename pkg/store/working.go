package store

import (
	"fmt"
	"os"

	"github.com/tmoura/strata/pkg/core"
)

// ensureWorkingCopy materializes the working file from the current
// version when it is missing. Editors and the daemon both assume the
// working file exists before touching it.
func (s *Store) ensureWorkingCopy(slug string) error {
	workingPath := s.paths.WorkingFile(slug)
	if _, err := os.Stat(workingPath); err == nil {
		return nil
	}

	n, ok := s.index.Notes[slug]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, slug)
	}

	v, ok := n.Current()
	if !ok {
		return fmt.Errorf("%w: %s has no versions", core.ErrNotFound, slug)
	}

	source := s.paths.Abs(v.Path)
	content, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	if err := os.WriteFile(workingPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", workingPath, err)
	}
	return nil
}

// ReadWorking returns the raw bytes of a note's working copy.
func (s *Store) ReadWorking(slug string) ([]byte, error) {
	workingPath := s.paths.WorkingFile(slug)
	content, err := os.ReadFile(workingPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", workingPath, err)
	}
	return content, nil
}

// WriteWorking overwrites a note's working copy. Version history is not
// touched; a later snapshot pass decides whether the change is promoted.
func (s *Store) WriteWorking(slug string, content []byte) error {
	workingPath := s.paths.WorkingFile(slug)
	if err := os.WriteFile(workingPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", workingPath, err)
	}
	return nil
}
