package sb

// Entry is one immutable audit record describing a command's outcome.
// Entries are appended to a line-delimited JSON log and never rewritten.
type Entry struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Command   string `json:"command"`
	Filename  string `json:"filename"`
	Outcome   string `json:"outcome"`
}

// AuditLog appends immutable entries to the audit trail.
// Each Append must be a single atomic write of one complete entry so
// that concurrent invocations may interleave entries but never corrupt
// them.
type AuditLog interface {
	Append(e Entry) error
}
