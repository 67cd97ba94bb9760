package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mynkprtp/movieApi/domain"
)

// LocalFileStore implements domain.FileStore on a local directory
type LocalFileStore struct {
	dir string
}

// NewLocalFileStore creates the poster directory if needed
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create file store dir: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

// path resolves a stored name inside the directory. Base strips any path
// components a client may have smuggled into the upload name; a name that
// reduces to nothing would resolve to the directory itself, so it yields "".
func (s *LocalFileStore) path(name string) string {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ""
	}
	return filepath.Join(s.dir, base)
}

// Save implements domain.FileStore and returns the stored name
func (s *LocalFileStore) Save(name string, data io.Reader) (string, error) {
	p := s.path(name)
	if p == "" {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	stored := filepath.Base(p)
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return stored, nil
}

// Open implements domain.FileStore
func (s *LocalFileStore) Open(name string) (io.ReadCloser, error) {
	p := s.path(name)
	if p == "" {
		return nil, domain.ErrFileNotFound
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

// Remove implements domain.FileStore. Removing a missing file is not an
// error, and a name that resolves to nothing (a record with no poster) is a
// no-op rather than an os.Remove on the directory.
func (s *LocalFileStore) Remove(name string) error {
	p := s.path(name)
	if p == "" {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists implements domain.FileStore
func (s *LocalFileStore) Exists(name string) bool {
	p := s.path(name)
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}
