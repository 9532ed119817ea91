package database

import (
	"os"
	"path/filepath"
	"testing"

	"sb-go/internal/config"
)

func TestNewDatabaseFromConfig(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		db, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "memory"}, "host-1")
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() error = %v", err)
		}
		db.Close()
	})

	t.Run("sqlite creates data dir and host-named file", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "db")

		db, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "sqlite", DataDir: dataDir}, "host-1")
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() error = %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dataDir, "host-1.db")); err != nil {
			t.Errorf("database file not created: %v", err)
		}
	})

	t.Run("sqlite requires data_dir", func(t *testing.T) {
		if _, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "sqlite"}, "host-1"); err == nil {
			t.Fatal("expected error for missing data_dir")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "bogus"}, "host-1"); err == nil {
			t.Fatal("expected error for unknown type")
		}
	})
}
