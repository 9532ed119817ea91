package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		HostID:   "test-host-abc",
		BaseDir:  "/home/user/.local/share/sb",
		LogDir:   "/home/user/.local/share/sb/log",
		AuditLog: "logfile.txt",
		Database: DatabaseConfig{Type: "sqlite", DataDir: "/home/user/.local/share/sb/db"},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.HostID != original.HostID {
		t.Errorf("HostID = %q, want %q", got.HostID, original.HostID)
	}
	if got.BaseDir != original.BaseDir {
		t.Errorf("BaseDir = %q, want %q", got.BaseDir, original.BaseDir)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.AuditLog != original.AuditLog {
		t.Errorf("AuditLog = %q, want %q", got.AuditLog, original.AuditLog)
	}
	if got.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", got.Database.Type, "sqlite")
	}
	if got.Database.DataDir != original.Database.DataDir {
		t.Errorf("Database.DataDir = %q, want %q", got.Database.DataDir, original.Database.DataDir)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("host-1", "/data/sb")

	if cfg.HostID != "host-1" {
		t.Errorf("HostID = %q, want %q", cfg.HostID, "host-1")
	}
	if cfg.BaseDir != "/data/sb" {
		t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, "/data/sb")
	}
	if cfg.LogDir != "/data/sb/log" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/data/sb/log")
	}
	if cfg.AuditLog != "logfile.txt" {
		t.Errorf("AuditLog = %q, want %q", cfg.AuditLog, "logfile.txt")
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", cfg.Database.Type, "sqlite")
	}
	if cfg.Database.DataDir != "/data/sb/db" {
		t.Errorf("Database.DataDir = %q, want %q", cfg.Database.DataDir, "/data/sb/db")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file with parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "sb.toml")
		cfg := NewConfig("host-1", "/data/sb")

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.HostID != "host-1" {
			t.Errorf("HostID = %q, want %q", got.HostID, "host-1")
		}
	})

	t.Run("fails if config already exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sb.toml")
		if err := os.WriteFile(path, []byte("host_id = \"x\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := Init(path, NewConfig("host-2", "/data")); err == nil {
			t.Fatal("expected error for existing config")
		}
	})
}

func TestReadFromFile_Missing(t *testing.T) {
	_, err := ReadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
