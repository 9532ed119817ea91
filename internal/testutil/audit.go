package testutil

import "sb-go/internal/sb"

// MemoryAuditLog captures appended entries for assertions in tests.
type MemoryAuditLog struct {
	Entries []sb.Entry

	// AppendErr, when set, is returned by every Append call.
	AppendErr error
}

// NewMemoryAuditLog creates an empty in-memory audit log.
func NewMemoryAuditLog() *MemoryAuditLog {
	return &MemoryAuditLog{}
}

// Append records the entry.
func (l *MemoryAuditLog) Append(e sb.Entry) error {
	if l.AppendErr != nil {
		return l.AppendErr
	}
	l.Entries = append(l.Entries, e)
	return nil
}

// Last returns the most recently appended entry. ok is false when the
// log is empty.
func (l *MemoryAuditLog) Last() (e sb.Entry, ok bool) {
	if len(l.Entries) == 0 {
		return sb.Entry{}, false
	}
	return l.Entries[len(l.Entries)-1], true
}

// Compile-time check that MemoryAuditLog implements the interface
var _ sb.AuditLog = (*MemoryAuditLog)(nil)
