// Package filestore writes statistics documents to disk as a pretty
// `<base>.json` and a minified `<base>.min.json`.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// Store persists statistics documents under a base path.
type Store struct {
	base string
}

// New creates a store writing to base.json and base.min.json. A trailing
// ".json" on base is ignored.
func New(base string) *Store {
	return &Store{base: strings.TrimSuffix(base, ".json")}
}

// Paths returns the pretty and minified file paths.
func (s *Store) Paths() (pretty, minified string) {
	return s.base + ".json", s.base + ".min.json"
}

// Save writes both files, creating the parent directory when needed.
// Each file is written to a temp file and renamed into place.
func (s *Store) Save(st *domain.Stats) error {
	prettyDoc, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	minDoc, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	pretty, minified := s.Paths()
	if dir := filepath.Dir(pretty); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := writeAtomic(pretty, append(prettyDoc, '\n')); err != nil {
		return err
	}
	return writeAtomic(minified, minDoc)
}

// Load reads the pretty document back. Returns domain.ErrNotFound when the
// file does not exist.
func (s *Store) Load() (*domain.Stats, error) {
	pretty, _ := s.Paths()

	data, err := os.ReadFile(pretty)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("stats file %s: %w", pretty, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read stats file: %w", err)
	}

	var st domain.Stats
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode stats file %s: %w", pretty, err)
	}
	return &st, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
