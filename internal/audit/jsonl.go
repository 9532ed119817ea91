package audit

import (
	"encoding/json"
	"fmt"
	"os"

	"sb-go/internal/sb"
)

// FileAuditLog appends entries to a line-delimited JSON file. The file
// is opened in append mode for each write and closed right after, so
// one entry is one atomic append and no handle is held across commands.
type FileAuditLog struct {
	path string
}

// NewFileAuditLog creates an audit log writing to the given file path.
// The file is created on first append.
func NewFileAuditLog(path string) *FileAuditLog {
	return &FileAuditLog{path: path}
}

// Path returns the log file path.
func (l *FileAuditLog) Path() string { return l.path }

// Append writes one entry as a single JSON line.
func (l *FileAuditLog) Append(e sb.Entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding audit entry: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}

// Compile-time check that FileAuditLog implements the interface
var _ sb.AuditLog = (*FileAuditLog)(nil)
