package save

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nathoo/frogquest/types"
)

// Store reads and writes the single save file at Path.
type Store struct {
	Path string
	Log  *slog.Logger
}

// NewStore creates a store for the given path.
func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{Path: path, Log: log}
}

// Exists reports whether a save file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Write replaces the save file with the given frog and counter. The record
// is built in memory and renamed into place, so a failed write leaves the
// previous save intact.
func (s *Store) Write(f *types.Frog, adventures int) error {
	data, err := Marshal(f, adventures)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing save: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting save permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("replacing save: %w", err)
	}

	s.Log.Debug("game saved", "path", s.Path, "adventures", adventures)
	return nil
}

// Read loads the save file. Any problem (missing, unreadable, malformed)
// is reported as no save.
func (s *Store) Read() (*Record, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Log.Debug("save unreadable", "path", s.Path, "error", err)
		}
		return nil, false
	}

	rec, err := Unmarshal(data)
	if err != nil {
		s.Log.Debug("save rejected", "path", s.Path, "error", err)
		return nil, false
	}
	return rec, true
}
