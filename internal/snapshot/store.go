// Package snapshot persists the last accepted catalog snapshot.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is the snapshot file used when none is configured.
const DefaultPath = "past_results.txt"

// Store reads and writes the last accepted snapshot.
type Store interface {
	// Load returns the persisted snapshot, or "" when none exists yet.
	Load(ctx context.Context) (string, error)
	// Save replaces the persisted snapshot.
	Save(ctx context.Context, text string) error
}

// PersistenceError represents an I/O failure reading or writing a snapshot.
type PersistenceError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persistence error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("persistence error for %s: %s", e.Path, e.Message)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// FileStore keeps the snapshot in a single text file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for path, falling back to DefaultPath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot file. A missing file is an empty snapshot.
func (s *FileStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", &PersistenceError{
			Path:    s.path,
			Message: "failed to read snapshot",
			Cause:   err,
		}
	}
	return string(data), nil
}

// fileMode returns the mode of the existing snapshot file, or 0644 when there
// is none yet.
func (s *FileStore) fileMode() fs.FileMode {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}

// Save writes text to a temporary file next to the snapshot and renames it
// into place.
func (s *FileStore) Save(_ context.Context, text string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &PersistenceError{Path: s.path, Message: "failed to create temporary file", Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &PersistenceError{Path: s.path, Message: "failed to write snapshot", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &PersistenceError{Path: s.path, Message: "failed to close snapshot", Cause: err}
	}
	if err := os.Chmod(tmpName, s.fileMode()); err != nil {
		_ = os.Remove(tmpName)
		return &PersistenceError{Path: s.path, Message: "failed to set snapshot permissions", Cause: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return &PersistenceError{Path: s.path, Message: "failed to replace snapshot", Cause: err}
	}
	return nil
}
