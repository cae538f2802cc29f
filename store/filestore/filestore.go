// Package filestore is the reference CassetteStore implementation: it
// serializes a cassette to a structured JSON file.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/osoekawaitlab/interposition/cassette"
)

// document is the on-disk shape of a cassette: an ordered list of
// interactions. Field ordering and naming follow the canonical format:
// headers as ordered two-element arrays and fingerprints as lowercase
// hex, both handled by custom (Un)MarshalJSON methods on the domain
// types themselves; body/chunk data as base64, which is encoding/json's
// default encoding for []byte fields.
type document struct {
	Interactions []cassette.Interaction `json:"interactions"`
}

// Store persists a cassette to a single JSON file on disk.
type Store struct {
	path            string
	createIfMissing bool
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithCreateIfMissing configures Load to return an empty cassette
// instead of failing when path does not exist, and makes Save create
// path's parent directory if it is missing. Save creates the file itself
// in either mode. The default is strict: Load on missing storage fails
// with a *cassette.LoadError.
func WithCreateIfMissing(enabled bool) Option {
	return func(s *Store) {
		s.createIfMissing = enabled
	}
}

// New returns a Store backed by the JSON file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the cassette persisted at the store's path. On missing
// storage it fails with a *cassette.LoadError unless WithCreateIfMissing
// was set, in which case it returns an empty cassette. Unreadable or
// malformed content always fails with a *cassette.LoadError, regardless
// of the missing-storage policy.
func (s *Store) Load() (*cassette.Cassette, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) && s.createIfMissing {
			return cassette.New(), nil
		}
		return nil, cassette.NewLoadError(err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, cassette.NewLoadError(fmt.Errorf("parse %s: %w", s.path, err))
	}

	c, err := cassette.FromInteractions(doc.Interactions)
	if err != nil {
		return nil, cassette.NewLoadError(fmt.Errorf("validate %s: %w", s.path, err))
	}

	return c, nil
}

// Save persists c to the store's path. The write is all-or-nothing: data
// is written to a sibling temp file and then renamed into place, so a
// crash mid-save never leaves a truncated cassette observable at path.
func (s *Store) Save(c *cassette.Cassette) error {
	doc := document{Interactions: c.Interactions()}
	if doc.Interactions == nil {
		doc.Interactions = []cassette.Interaction{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return cassette.NewSaveError(err)
	}

	dir := filepath.Dir(s.path)
	if s.createIfMissing {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return cassette.NewSaveError(err)
		}
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return cassette.NewSaveError(err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return cassette.NewSaveError(err)
	}

	return nil
}
