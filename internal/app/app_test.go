package app_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sb-go/internal/app"
	"sb-go/internal/config"
	"sb-go/internal/sb"
)

// newTestApp wires an SBApp against temp directories with an in-memory
// history database.
func newTestApp(t *testing.T) (*app.SBApp, string) {
	t.Helper()

	baseDir := t.TempDir()
	workDir := t.TempDir()

	cfg := config.NewConfig("test-host", baseDir)
	cfg.Database.Type = "memory"

	a, err := app.NewSBApp(cfg, workDir)
	if err != nil {
		t.Fatalf("NewSBApp() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })

	return a, workDir
}

func TestSBApp_BackupRestoreRoundTrip(t *testing.T) {
	a, workDir := newTestApp(t)

	original := []byte("important data")
	if err := os.WriteFile(filepath.Join(workDir, "test.txt"), original, 0644); err != nil {
		t.Fatal(err)
	}

	backupName, err := a.Backup("test.txt")
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if !strings.HasPrefix(backupName, "test.txt.") || !strings.HasSuffix(backupName, ".bak") {
		t.Errorf("backup name = %q, want test.txt.<ts>.bak", backupName)
	}

	// Damage the original, then restore.
	if err := os.WriteFile(filepath.Join(workDir, "test.txt"), []byte("damaged"), 0644); err != nil {
		t.Fatal(err)
	}

	restored, err := a.Restore("test.txt")
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored != "test.txt" {
		t.Errorf("restored = %q, want test.txt", restored)
	}

	got, err := os.ReadFile(filepath.Join(workDir, "test.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(original) {
		t.Errorf("content = %q, want pre-backup content %q", got, original)
	}
}

func TestSBApp_WritesAuditLogInWorkDir(t *testing.T) {
	a, workDir := newTestApp(t)

	if err := os.WriteFile(filepath.Join(workDir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Backup("a.txt"); err != nil {
		t.Fatalf("Backup() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(workDir, "logfile.txt"))
	if err != nil {
		t.Fatalf("audit log not written: %v", err)
	}

	var entry sb.Entry
	if err := json.Unmarshal([]byte(strings.TrimRight(string(data), "\n")), &entry); err != nil {
		t.Fatalf("audit line not valid JSON: %v", err)
	}
	if entry.Command != "backup" || entry.Filename != "a.txt" || entry.Outcome != "ok" {
		t.Errorf("entry = %+v, want backup/a.txt/ok", entry)
	}
	if entry.User == "" {
		t.Error("entry.User is empty")
	}
}

func TestSBApp_DeleteAndHistory(t *testing.T) {
	a, workDir := newTestApp(t)

	if err := os.WriteFile(filepath.Join(workDir, "doomed.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := a.Delete("doomed.txt"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(workDir, "doomed.txt")); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}

	// A failed delete is recorded too.
	if err := a.Delete("doomed.txt"); !errors.Is(err, sb.ErrSourceNotFound) {
		t.Fatalf("Delete() error = %v, want ErrSourceNotFound", err)
	}

	ops, err := a.GetHistory(10)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("got %d operations, want 2", len(ops))
	}
	if ops[0].Outcome == "ok" {
		t.Errorf("newest outcome = %q, want the failed delete first", ops[0].Outcome)
	}
	if ops[1].Outcome != "ok" {
		t.Errorf("older outcome = %q, want ok", ops[1].Outcome)
	}
}

func TestSBApp_RestoreNothingToRestore(t *testing.T) {
	a, _ := newTestApp(t)

	_, err := a.Restore("nothing.txt")
	if !errors.Is(err, sb.ErrNoBackupFound) {
		t.Fatalf("Restore() error = %v, want ErrNoBackupFound", err)
	}
}
