package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sb-go/internal/sb"
)

// OSFilesystemManager is the real filesystem implementation of
// sb.FilesystemManager, scoped to a single working directory. All names
// are resolved against that directory.
type OSFilesystemManager struct {
	dir string
}

// NewOSFilesystemManager creates a filesystem manager rooted at dir.
func NewOSFilesystemManager(dir string) *OSFilesystemManager {
	return &OSFilesystemManager{dir: dir}
}

func (m *OSFilesystemManager) resolve(name string) string {
	return filepath.Join(m.dir, name)
}

// Exists reports whether name refers to a regular file.
func (m *OSFilesystemManager) Exists(name string) (bool, error) {
	info, err := os.Stat(m.resolve(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}

// List returns the names of regular files in the working directory.
func (m *OSFilesystemManager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Copy copies src to dst through a temporary file in the same
// directory, renamed into place on success. A failed copy removes the
// temp file and leaves dst as it was.
func (m *OSFilesystemManager) Copy(src, dst string) error {
	in, err := os.Open(m.resolve(src))
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(m.dir, ".sb-copy-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	// Carry the source's permission bits onto the copy.
	if info, err := in.Stat(); err == nil {
		os.Chmod(tmpPath, info.Mode().Perm())
	}

	if err := os.Rename(tmpPath, m.resolve(dst)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// Remove deletes the named file.
func (m *OSFilesystemManager) Remove(name string) error {
	if err := os.Remove(m.resolve(name)); err != nil {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}

// Compile-time check that OSFilesystemManager implements the interface
var _ sb.FilesystemManager = (*OSFilesystemManager)(nil)
