package testutil

import (
	"fmt"
	"sort"

	"sb-go/internal/sb"
)

// MockFilesystemManager is an in-memory implementation of
// sb.FilesystemManager for tests. It holds file contents in a map keyed
// by name, as if one working directory existed.
type MockFilesystemManager struct {
	files map[string][]byte

	// CopyErr, when set, is returned by every Copy call. Used to test
	// I/O failure paths.
	CopyErr error
}

// NewMockFilesystemManager creates an empty mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{files: make(map[string][]byte)}
}

// AddFile places a file with the given content in the mock directory.
func (m *MockFilesystemManager) AddFile(name string, content []byte) {
	m.files[name] = append([]byte(nil), content...)
}

// File returns the content of a file and whether it exists.
func (m *MockFilesystemManager) File(name string) ([]byte, bool) {
	content, ok := m.files[name]
	return content, ok
}

// Exists reports whether the named file exists.
func (m *MockFilesystemManager) Exists(name string) (bool, error) {
	_, ok := m.files[name]
	return ok, nil
}

// List returns all file names, sorted for determinism.
func (m *MockFilesystemManager) List() ([]string, error) {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Copy duplicates src's content under dst. Mirrors the atomic contract:
// on error dst is untouched.
func (m *MockFilesystemManager) Copy(src, dst string) error {
	if m.CopyErr != nil {
		return m.CopyErr
	}
	content, ok := m.files[src]
	if !ok {
		return fmt.Errorf("opening %s: file does not exist", src)
	}
	m.files[dst] = append([]byte(nil), content...)
	return nil
}

// Remove deletes the named file.
func (m *MockFilesystemManager) Remove(name string) error {
	if _, ok := m.files[name]; !ok {
		return fmt.Errorf("removing %s: file does not exist", name)
	}
	delete(m.files, name)
	return nil
}

// Compile-time check that MockFilesystemManager implements the interface
var _ sb.FilesystemManager = (*MockFilesystemManager)(nil)
