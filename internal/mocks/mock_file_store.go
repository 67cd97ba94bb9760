package mocks

import (
	"bytes"
	"io"

	"github.com/mynkprtp/movieApi/domain"
)

// MockFileStore implements domain.FileStore in memory for testing
type MockFileStore struct {
	SaveFunc   func(name string, data io.Reader) (string, error)
	OpenFunc   func(name string) (io.ReadCloser, error)
	RemoveFunc func(name string) error
	ExistsFunc func(name string) bool

	// Files backs the default behaviors
	Files map[string][]byte
}

// NewMockFileStore creates a new MockFileStore with default behaviors
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{Files: map[string][]byte{}}
}

// Save stores a file
func (m *MockFileStore) Save(name string, data io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(name, data)
	}
	// Default behavior: keep the bytes in memory
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.Files[name] = b
	return name, nil
}

// Open reads a file back
func (m *MockFileStore) Open(name string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(name)
	}
	b, ok := m.Files[name]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// Remove deletes a file
func (m *MockFileStore) Remove(name string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	delete(m.Files, name)
	return nil
}

// Exists reports whether a file is present
func (m *MockFileStore) Exists(name string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(name)
	}
	_, ok := m.Files[name]
	return ok
}
