// Package store owns the durable state of strata: the metadata index, the
// immutable version blobs and the mutable working copies, all laid out
// under a single data root.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvHome overrides the data root directory when set.
const EnvHome = "STRATA_HOME"

// Paths maps logical locations to concrete files under the data root.
//
// Layout:
//
//	<root>/index.json                      metadata for all notes
//	<root>/versions/<slug>/<0000001>.md    immutable version blobs
//	<root>/files/<slug>.md                 mutable working copies
//	<root>/daemon.pid                      pid of the live watcher, if any
//	<root>/daemon.log                      watcher lifecycle/error log
type Paths struct {
	Root      string
	Versions  string
	Files     string
	Index     string
	DaemonPID string
	DaemonLog string
}

// NewPaths resolves the data root from STRATA_HOME, defaulting to
// ~/.strata.
func NewPaths() (*Paths, error) {
	root := os.Getenv(EnvHome)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("unable to determine home directory: %w", err)
		}
		root = filepath.Join(home, ".strata")
	}
	return NewPathsAt(root), nil
}

// NewPathsAt builds the layout rooted at an explicit directory.
func NewPathsAt(root string) *Paths {
	return &Paths{
		Root:      root,
		Versions:  filepath.Join(root, "versions"),
		Files:     filepath.Join(root, "files"),
		Index:     filepath.Join(root, "index.json"),
		DaemonPID: filepath.Join(root, "daemon.pid"),
		DaemonLog: filepath.Join(root, "daemon.log"),
	}
}

// EnsureDirs creates the root, versions and files directories.
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.Root, p.Versions, p.Files} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// WorkingFile returns the working-copy path for a slug.
func (p *Paths) WorkingFile(slug string) string {
	return filepath.Join(p.Files, slug+".md")
}

// VersionRel returns the root-relative blob path for one version of a
// note. The zero-padded name keeps directory listings in version order.
// Recorded paths always use forward slashes so the index stays portable.
func (p *Paths) VersionRel(slug string, version int) string {
	return fmt.Sprintf("versions/%s/%07d.md", slug, version)
}

// Abs resolves an index-recorded relative path against the root.
func (p *Paths) Abs(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}
