package app

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"sb-go/internal/audit"
	"sb-go/internal/config"
	"sb-go/internal/database"
	"sb-go/internal/fs"
	"sb-go/internal/sb"
)

// SBApp is the application layer between the CLI and SBService.
// It constructs all dependencies from config, binds the service to a
// working directory, and manages the DB and log file lifecycle on Close.
type SBApp struct {
	cfg     *config.Config
	db      sb.Database
	service *sb.SBService
	logFile *os.File
}

// NewSBApp creates a fully wired SBApp from the given config.
// workDir is the directory commands operate in; backups, restores and
// the audit log all live there. The caller must call Close when done.
func NewSBApp(cfg *config.Config, workDir string) (*SBApp, error) {
	db, err := database.NewDatabaseFromConfig(cfg.Database, cfg.HostID)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	fsmgr := fs.NewOSFilesystemManager(workDir)

	auditPath := cfg.AuditLog
	if auditPath == "" {
		auditPath = "logfile.txt"
	}
	if !filepath.IsAbs(auditPath) {
		auditPath = filepath.Join(workDir, auditPath)
	}
	auditLog := audit.NewFileAuditLog(auditPath)

	svc := sb.NewSBService(fsmgr, auditLog, db, &slogAdapter{l: logger}, sb.RealClock{}, sb.UUIDGenerator{}, currentUser())

	return &SBApp{
		cfg:     cfg,
		db:      db,
		service: svc,
		logFile: logFile,
	}, nil
}

// Backup backs up the named file. Returns the timestamped backup name.
func (a *SBApp) Backup(name string) (string, error) {
	return a.service.Backup(name)
}

// Restore restores the named file from its most recent backup.
// Returns the name of the file written.
func (a *SBApp) Restore(name string) (string, error) {
	return a.service.Restore(name)
}

// Delete removes the named file.
func (a *SBApp) Delete(name string) error {
	return a.service.Delete(name)
}

// GetHistory returns the most recent recorded operations.
func (a *SBApp) GetHistory(limit int) ([]*sb.Operation, error) {
	return a.service.GetHistory(limit)
}

// Close closes the database and the log file.
func (a *SBApp) Close() error {
	var firstErr error

	if err := a.db.Close(); err != nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}

// currentUser returns the name recorded in audit entries. Lookup
// failures fall back to $USER, then to "unknown", rather than failing
// the command.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
