package database

import (
	"context"
	"database/sql"
	"fmt"

	"sb-go/internal/database/migrations"
	"sb-go/internal/sb"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements the sb.Database interface using SQLite.
type SQLiteDatabase struct {
	db   *sql.DB
	path string
}

// NewSQLiteDatabase opens (or creates) a SQLite database at path and
// brings its schema up to date. path can be a file path or ":memory:".
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &SQLiteDatabase{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite database connection with
// appropriate PRAGMAs. Exported for tools and tests that need a properly
// configured connection without the schema check.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// CreateOperation inserts one operation row and fills in its ID.
func (s *SQLiteDatabase) CreateOperation(op *sb.Operation) error {
	res, err := s.db.ExecContext(context.Background(),
		`INSERT INTO operations (op_id, command, filename, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		op.OpID, op.Command, op.Filename, op.Outcome, op.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading operation id: %w", err)
	}
	op.ID = id
	return nil
}

// ListOperations returns the most recent operations, newest first.
func (s *SQLiteDatabase) ListOperations(limit int) ([]*sb.Operation, error) {
	rows, err := s.db.QueryContext(context.Background(),
		`SELECT id, op_id, command, filename, outcome, created_at
		 FROM operations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var ops []*sb.Operation
	for rows.Next() {
		var op sb.Operation
		if err := rows.Scan(&op.ID, &op.OpID, &op.Command, &op.Filename, &op.Outcome, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		ops = append(ops, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operations: %w", err)
	}
	return ops, nil
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteDatabase implements the interface
var _ sb.Database = (*SQLiteDatabase)(nil)
