package store

import (
	"fmt"
	"os"

	"github.com/tmoura/strata/pkg/core"
)

// SnapshotIfChanged promotes the working copy into a new version if its
// content diverged from the last recorded version. It reports whether a
// version was appended.
//
// The comparison is against the last version's hash, never the cached
// working hash, so the operation stays idempotent under the daemon's
// repeated polling.
func (s *Store) SnapshotIfChanged(slug string) (bool, error) {
	if err := s.ensureWorkingCopy(slug); err != nil {
		return false, err
	}

	n, ok := s.index.Notes[slug]
	if !ok {
		return false, fmt.Errorf("%w: %s", core.ErrNotFound, slug)
	}

	content, err := s.ReadWorking(slug)
	if err != nil {
		return false, err
	}
	hash := core.HashBytes(content)

	if last, ok := n.Last(); ok && last.Hash == hash {
		n.WorkingHash = hash
		return false, nil
	}

	now := s.now().UTC()
	newVersion := n.CurrentVersion + 1
	rel := s.paths.VersionRel(slug, newVersion)
	if err := s.writeBlob(rel, content); err != nil {
		return false, err
	}

	n.Versions = append(n.Versions, core.Version{
		Version:   newVersion,
		Path:      rel,
		Hash:      hash,
		CreatedAt: now,
	})
	n.CurrentVersion = newVersion
	n.UpdatedAt = now
	n.WorkingHash = hash

	s.logger.Debug("snapshot promoted", "slug", slug, "version", newVersion)
	return true, nil
}

// SnapshotAll runs SnapshotIfChanged for every note and returns the slugs
// that gained a version.
func (s *Store) SnapshotAll() ([]string, error) {
	var updated []string
	for _, slug := range s.Slugs() {
		changed, err := s.SnapshotIfChanged(slug)
		if err != nil {
			return updated, err
		}
		if changed {
			updated = append(updated, slug)
		}
	}
	return updated, nil
}

// Rollback restores an earlier version's content as a brand-new latest
// version and overwrites the working copy with it. History is append-only:
// the intervening versions remain inspectable.
//
// target 0 means "the version before the current one". Pending working-copy
// edits are snapshotted first so nothing is silently lost.
func (s *Store) Rollback(identifier string, target int) (string, error) {
	slug, ok := s.Resolve(identifier)
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrNotFound, identifier)
	}

	if _, err := s.SnapshotIfChanged(slug); err != nil {
		return "", err
	}

	n := s.index.Notes[slug]
	if target == 0 {
		target = n.CurrentVersion - 1
	}
	if target <= 0 {
		return "", core.ErrNoPreviousVersion
	}

	var source *core.Version
	for i := range n.Versions {
		if n.Versions[i].Version == target {
			source = &n.Versions[i]
			break
		}
	}
	if source == nil {
		return "", fmt.Errorf("%w: version %d", core.ErrNotFound, target)
	}

	sourcePath := s.paths.Abs(source.Path)
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	now := s.now().UTC()
	hash := core.HashBytes(content)
	newVersion := n.CurrentVersion + 1
	rel := s.paths.VersionRel(slug, newVersion)
	if err := s.writeBlob(rel, content); err != nil {
		return "", err
	}

	n.Versions = append(n.Versions, core.Version{
		Version:   newVersion,
		Path:      rel,
		Hash:      hash,
		CreatedAt: now,
	})
	n.CurrentVersion = newVersion
	n.UpdatedAt = now
	n.WorkingHash = hash

	workingPath := s.paths.WorkingFile(slug)
	if err := os.WriteFile(workingPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", workingPath, err)
	}

	s.logger.Debug("rolled back", "slug", slug, "from", target, "new_version", newVersion)
	return workingPath, nil
}

// OpenNote resolves an identifier, snapshots pending edits and returns
// the working-copy path ready for an editor.
func (s *Store) OpenNote(identifier string) (string, error) {
	slug, ok := s.Resolve(identifier)
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrNotFound, identifier)
	}
	if _, err := s.SnapshotIfChanged(slug); err != nil {
		return "", err
	}
	return s.paths.WorkingFile(slug), nil
}
