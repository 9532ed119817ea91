package sb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dispatch failures. Callers match these with errors.Is; anything else
// is an unexpected filesystem error wrapping the underlying cause.
var (
	ErrSourceNotFound = errors.New("source file does not exist")
	ErrNoBackupFound  = errors.New("no backup file found")
)

// SBService dispatches the backup, restore and delete commands against
// a single working directory. Every command, success or failure,
// appends exactly one audit entry and one history row recording the
// outcome. A failed backup or restore leaves the original file
// untouched.
type SBService struct {
	fsmgr    FilesystemManager
	auditLog AuditLog
	database Database
	logger   Logger
	clock    Clock
	idgen    IDGenerator
	user     string
}

// NewSBService creates a new SBService with the provided dependencies.
// user is recorded in every audit entry.
func NewSBService(fsmgr FilesystemManager, auditLog AuditLog, database Database, logger Logger, clock Clock, idgen IDGenerator, user string) *SBService {
	return &SBService{
		fsmgr:    fsmgr,
		auditLog: auditLog,
		database: database,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
		user:     user,
	}
}

// Backup validates name, copies the file to a fresh timestamped backup
// and refreshes the plain fallback copy. Returns the timestamped backup
// name.
func (s *SBService) Backup(name string) (string, error) {
	validated, err := Validate(name)
	if err != nil {
		s.record("backup", name, err)
		return "", err
	}

	backupName, err := s.doBackup(validated)
	s.record("backup", validated.String(), err)
	if err != nil {
		return "", err
	}
	return backupName, nil
}

func (s *SBService) doBackup(name ValidatedName) (string, error) {
	exists, err := s.fsmgr.Exists(name.String())
	if err != nil {
		return "", fmt.Errorf("checking source: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}

	backupName := TimestampedName(name, s.clock.Now().UTC().Unix())
	if err := s.fsmgr.Copy(name.String(), backupName); err != nil {
		return "", fmt.Errorf("copying to %s: %w", backupName, err)
	}

	// The fallback copy is refreshed alongside the timestamped one so
	// tooling that only knows the "<stem>.bak" form stays usable.
	fallback := FallbackName(name)
	if err := s.fsmgr.Copy(name.String(), fallback); err != nil {
		return "", fmt.Errorf("refreshing %s: %w", fallback, err)
	}

	s.logger.Info("backup created", "file", name.String(), "backup", backupName)
	return backupName, nil
}

// Restore validates name and copies the most recent backup candidate
// over it. When name itself is a timestamped backup file that exists,
// that exact backup is restored to the original name it encodes.
// Returns the name of the file written.
func (s *SBService) Restore(name string) (string, error) {
	validated, err := Validate(name)
	if err != nil {
		s.record("restore", name, err)
		return "", err
	}

	restored, err := s.doRestore(validated)
	s.record("restore", validated.String(), err)
	if err != nil {
		return "", err
	}
	return restored, nil
}

func (s *SBService) doRestore(name ValidatedName) (string, error) {
	if target, ok := restoreTarget(name.String()); ok {
		return s.restoreExact(name.String(), target)
	}

	listing, err := s.fsmgr.List()
	if err != nil {
		return "", fmt.Errorf("listing directory: %w", err)
	}

	candidate := SelectLatest(name, listing)
	if candidate == nil {
		return "", fmt.Errorf("%w for %s", ErrNoBackupFound, name)
	}

	if err := s.fsmgr.Copy(candidate.Name, name.String()); err != nil {
		return "", fmt.Errorf("restoring from %s: %w", candidate.Name, err)
	}

	s.logger.Info("file restored", "file", name.String(), "backup", candidate.Name)
	return name.String(), nil
}

// restoreExact restores a named timestamped backup over the original
// file it encodes.
func (s *SBService) restoreExact(backupName, target string) (string, error) {
	exists, err := s.fsmgr.Exists(backupName)
	if err != nil {
		return "", fmt.Errorf("checking backup: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrNoBackupFound, backupName)
	}

	if err := s.fsmgr.Copy(backupName, target); err != nil {
		return "", fmt.Errorf("restoring from %s: %w", backupName, err)
	}

	s.logger.Info("file restored", "file", target, "backup", backupName)
	return target, nil
}

// Delete validates name and removes the file.
func (s *SBService) Delete(name string) error {
	validated, err := Validate(name)
	if err != nil {
		s.record("delete", name, err)
		return err
	}

	err = s.doDelete(validated)
	s.record("delete", validated.String(), err)
	return err
}

func (s *SBService) doDelete(name ValidatedName) error {
	exists, err := s.fsmgr.Exists(name.String())
	if err != nil {
		return fmt.Errorf("checking file: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}

	if err := s.fsmgr.Remove(name.String()); err != nil {
		return fmt.Errorf("removing file: %w", err)
	}

	s.logger.Info("file deleted", "file", name.String())
	return nil
}

// record appends the audit entry and the history row for a finished
// command. Recording failures are logged but do not fail the command;
// the audit trail must never mask the command's own outcome.
func (s *SBService) record(command, filename string, opErr error) {
	now := s.clock.Now().UTC()
	outcome := "ok"
	if opErr != nil {
		outcome = "error: " + opErr.Error()
	}

	entry := Entry{
		Timestamp: now.Format(time.RFC3339),
		User:      s.user,
		Command:   command,
		Filename:  strings.TrimSpace(filename),
		Outcome:   outcome,
	}
	if err := s.auditLog.Append(entry); err != nil {
		s.logger.Error("appending audit entry", "error", err)
	}

	op := &Operation{
		OpID:      s.idgen.New(),
		Command:   command,
		Filename:  strings.TrimSpace(filename),
		Outcome:   outcome,
		CreatedAt: now,
	}
	if err := s.database.CreateOperation(op); err != nil {
		s.logger.Error("recording operation", "error", err)
	}
}

// restoreTarget extracts the original name from a timestamped backup
// name: "test.txt.100.bak" yields ("test.txt", true). Plain "<stem>.bak"
// names carry no original name and are resolved through the selector.
func restoreTarget(name string) (string, bool) {
	trimmed := strings.TrimSuffix(name, backupExt)
	if trimmed == name {
		return "", false
	}
	i := strings.LastIndex(trimmed, ".")
	if i <= 0 {
		return "", false
	}
	if ts, err := strconv.ParseInt(trimmed[i+1:], 10, 64); err != nil || ts < 0 {
		return "", false
	}
	return trimmed[:i], true
}
