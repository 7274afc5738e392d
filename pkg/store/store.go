package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tmoura/strata/pkg/core"
)

// Store brackets one load/mutate/save cycle over the metadata index and
// the files it points at. It is not shared across processes; the daemon
// and each interactive command open their own.
type Store struct {
	paths  *Paths
	index  index
	logger *slog.Logger
	now    func() time.Time
}

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock injects a time source, useful for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open ensures the data directories exist and loads the full index into
// memory.
func Open(paths *Paths, opts ...Option) (*Store, error) {
	s := &Store{
		paths:  paths,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := paths.EnsureDirs(); err != nil {
		return nil, err
	}

	idx, err := loadIndex(paths.Index)
	if err != nil {
		return nil, err
	}
	s.index = idx
	return s, nil
}

// Save rewrites the whole index back to disk. Every mutating command
// ends with this; the last full rewrite wins if two processes race.
func (s *Store) Save() error {
	return s.index.save(s.paths.Index)
}

// Paths exposes the resolved data layout.
func (s *Store) Paths() *Paths {
	return s.paths
}

// Get returns the note for an exact slug.
func (s *Store) Get(slug string) (*core.Note, bool) {
	n, ok := s.index.Notes[slug]
	return n, ok
}

// Notes returns all notes sorted by case-insensitive title.
func (s *Store) Notes() []*core.Note {
	notes := make([]*core.Note, 0, len(s.index.Notes))
	for _, n := range s.index.Notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return strings.ToLower(notes[i].Title) < strings.ToLower(notes[j].Title)
	})
	return notes
}

// Slugs returns all slugs in lexical order.
func (s *Store) Slugs() []string {
	slugs := make([]string, 0, len(s.index.Notes))
	for slug := range s.index.Notes {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Create registers a new note and returns its working-copy path.
// Version 1 is written atomically with the note itself: an empty blob, an
// empty working copy and an index entry whose working hash is the hash of
// empty content. An empty title falls back to a timestamp-derived one.
func (s *Store) Create(title string) (string, error) {
	now := s.now().UTC()
	if title == "" {
		title = "note-" + now.Format("20060102-150405")
	}

	base := core.Slugify(title)
	slug := base
	for counter := 2; ; counter++ {
		if _, exists := s.index.Notes[slug]; !exists {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}

	rel := s.paths.VersionRel(slug, 1)
	if err := s.writeBlob(rel, nil); err != nil {
		return "", err
	}

	workingPath := s.paths.WorkingFile(slug)
	if err := os.WriteFile(workingPath, nil, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", workingPath, err)
	}

	hash := core.EmptyHash()
	s.index.Notes[slug] = &core.Note{
		Title:          title,
		Slug:           slug,
		CreatedAt:      now,
		UpdatedAt:      now,
		CurrentVersion: 1,
		Versions: []core.Version{{
			Version:   1,
			Path:      rel,
			Hash:      hash,
			CreatedAt: now,
		}},
		WorkingHash: hash,
	}

	s.logger.Debug("note created", "slug", slug, "title", title)
	return workingPath, nil
}

// Resolve maps an identifier to a slug: exact slug first, then
// case-insensitive title equality, then case-insensitive slug equality.
func (s *Store) Resolve(identifier string) (string, bool) {
	if _, ok := s.index.Notes[identifier]; ok {
		return identifier, true
	}

	lower := strings.ToLower(identifier)
	for _, n := range s.index.Notes {
		if strings.ToLower(n.Title) == lower || n.Slug == lower {
			return n.Slug, true
		}
	}
	return "", false
}

// Delete removes a note, its working copy and every version blob.
// The identifier must match exactly one note's slug; more than one match
// is an error and nothing is deleted.
func (s *Store) Delete(identifier string) (string, error) {
	var matches []*core.Note
	for _, n := range s.index.Notes {
		if strings.ToLower(n.Slug) == identifier {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", core.ErrNotFound, identifier)
	case 1:
	default:
		return "", fmt.Errorf("%w: %s", core.ErrAmbiguous, identifier)
	}

	slug := matches[0].Slug
	delete(s.index.Notes, slug)

	workingPath := s.paths.WorkingFile(slug)
	if _, err := os.Stat(workingPath); err == nil {
		if err := os.Remove(workingPath); err != nil {
			return "", fmt.Errorf("failed to remove %s: %w", workingPath, err)
		}
	}

	versionsDir := s.paths.Abs("versions/" + slug)
	if _, err := os.Stat(versionsDir); err == nil {
		if err := os.RemoveAll(versionsDir); err != nil {
			return "", fmt.Errorf("failed to remove %s: %w", versionsDir, err)
		}
	}

	s.logger.Debug("note deleted", "slug", slug)
	return slug, nil
}

// Search returns notes whose current-version content contains the query,
// case-insensitively. Unreadable blobs are treated as empty rather than
// failing the whole scan.
func (s *Store) Search(query string) []*core.Note {
	needle := strings.ToLower(query)

	var matched []*core.Note
	for _, n := range s.Notes() {
		v, ok := n.Current()
		if !ok {
			continue
		}
		content, err := os.ReadFile(s.paths.Abs(v.Path))
		if err != nil {
			content = nil
		}
		if strings.Contains(strings.ToLower(string(content)), needle) {
			matched = append(matched, n)
		}
	}
	return matched
}

// writeBlob writes an immutable version blob at a root-relative path,
// creating parent directories as needed.
func (s *Store) writeBlob(rel string, content []byte) error {
	abs := s.paths.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("failed to create directories for %s: %w", abs, err)
	}
	if err := os.WriteFile(abs, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", abs, err)
	}
	return nil
}
