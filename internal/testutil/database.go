package testutil

import (
	"strconv"
	"time"

	"sb-go/internal/sb"
)

// MemoryDatabase is an in-memory implementation of sb.Database for
// tests. Rows are held in insertion order.
type MemoryDatabase struct {
	Ops []*sb.Operation

	nextID int64
}

// NewMemoryDatabase creates an empty in-memory history store.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{nextID: 1}
}

// CreateOperation appends the operation and assigns its ID.
func (d *MemoryDatabase) CreateOperation(op *sb.Operation) error {
	op.ID = d.nextID
	d.nextID++
	d.Ops = append(d.Ops, op)
	return nil
}

// ListOperations returns the most recent operations, newest first.
func (d *MemoryDatabase) ListOperations(limit int) ([]*sb.Operation, error) {
	var ops []*sb.Operation
	for i := len(d.Ops) - 1; i >= 0 && len(ops) < limit; i-- {
		ops = append(ops, d.Ops[i])
	}
	return ops, nil
}

// Close is a no-op.
func (d *MemoryDatabase) Close() error { return nil }

// Compile-time check that MemoryDatabase implements the interface
var _ sb.Database = (*MemoryDatabase)(nil)

// FixedClock is an sb.Clock that always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// SeqIDGenerator returns "op-1", "op-2", ... in order.
type SeqIDGenerator struct {
	n int
}

func (g *SeqIDGenerator) New() string {
	g.n++
	return "op-" + strconv.Itoa(g.n)
}
