package sb

import "time"

// Operation is one recorded command invocation in the history store.
type Operation struct {
	ID        int64  // auto-increment, assigned on insert
	OpID      string // UUID identifying the invocation
	Command   string
	Filename  string
	Outcome   string
	CreatedAt time.Time
}

// Database stores the operation history.
type Database interface {
	// CreateOperation inserts one operation row and fills in op.ID.
	CreateOperation(op *Operation) error

	// ListOperations returns the most recent operations, newest first.
	ListOperations(limit int) ([]*Operation, error)

	// Close closes the database connection.
	Close() error
}
