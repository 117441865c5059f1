// Package storage persists the card, project and note collections as a
// single JSON document on disk. Writes go through a temp-file-then-rename
// sequence so the canonical file is never observed half-written, and a
// .bak sibling is refreshed after every successful write for manual
// recovery.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"cardbox/models"
)

// ErrCorrupt is returned when the data file exists but cannot be parsed.
// Callers must treat this as fatal: proceeding with an empty document and
// writing it back would destroy recoverable data.
var ErrCorrupt = errors.New("data file is corrupt")

// WriteError indicates a failure during the atomic write sequence.
// The canonical file is left untouched and the temp file has been
// cleaned up on a best-effort basis.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write data file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Document is the full on-disk state. Timestamps are stored as RFC 3339
// strings via the standard time.Time encoding.
type Document struct {
	Cards    []models.Card    `json:"cards"`
	Projects []models.Project `json:"projects"`
	Notes    []models.Note    `json:"notes"`
}

func emptyDocument() *Document {
	return &Document{
		Cards:    []models.Card{},
		Projects: []models.Project{},
		Notes:    []models.Note{},
	}
}

// normalize replaces nil collections with empty slices so the document
// always serializes with all three arrays present.
func (d *Document) normalize() {
	if d.Cards == nil {
		d.Cards = []models.Card{}
	}
	if d.Projects == nil {
		d.Projects = []models.Project{}
	}
	if d.Notes == nil {
		d.Notes = []models.Note{}
	}
}

// Store owns the data file. The mutex serializes every
// read-modify-write cycle so concurrent operations cannot lose updates.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open prepares a store backed by the file at path. A missing file is
// initialized with empty collections and persisted immediately; an
// existing file that fails to parse returns an error wrapping ErrCorrupt.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat data file %s: %w", path, err)
		}
		if err := s.write(emptyDocument()); err != nil {
			return nil, err
		}
		log.Printf("Initialized new data file: %s", path)
		return s, nil
	}

	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document fresh from disk. No in-memory copy is trusted
// between calls; the file may have been edited externally.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update runs fn against a freshly loaded document and persists the
// result atomically. The whole cycle holds the store lock, so an Update
// is a single logical transaction: either every mutation fn made is on
// disk afterwards, or none of them are.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) load() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// File removed since Open; treat like first run.
			return emptyDocument(), nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.path, ErrCorrupt, err)
	}
	doc.normalize()
	return doc, nil
}

// write serializes doc to a temp file in the same directory, renames it
// over the target (atomic for same-volume renames), then refreshes the
// .bak sibling. The .bak copy is best-effort and never read back
// automatically.
func (s *Store) write(doc *Document) error {
	doc.normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return &WriteError{Path: s.path, Err: err}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &WriteError{Path: s.path, Err: err}
	}

	if err := copyFile(s.path, s.path+".bak"); err != nil {
		log.Printf("Backup copy failed for %s: %v", s.path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// DefaultPath returns the per-user location of the data file, used when
// DATA_FILE is not set.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "cardbox", "cards.json"), nil
}
