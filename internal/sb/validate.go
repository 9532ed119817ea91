package sb

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation failures. Callers match these with errors.Is.
var (
	ErrEmptyName     = errors.New("empty file name")
	ErrAbsolutePath  = errors.New("absolute paths not allowed")
	ErrPathTraversal = errors.New("parent traversal not allowed")
)

// ValidatedName is a filename that has passed Validate.
// It names a file in the working directory and is safe to use for
// backup-suffix construction without further normalization.
type ValidatedName string

func (n ValidatedName) String() string { return string(n) }

// Validate checks a user-supplied filename. Surrounding whitespace is
// stripped; the name is otherwise returned unchanged. It rejects empty
// names, root-anchored paths (leading separator or a drive-letter
// prefix), and any name with a ".." path component. The traversal check
// is per component, not a substring search, so names like "a..b" pass.
func Validate(name string) (ValidatedName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}

	if filepath.IsAbs(trimmed) || strings.HasPrefix(trimmed, "\\") || hasDrivePrefix(trimmed) {
		return "", fmt.Errorf("%w: %s", ErrAbsolutePath, trimmed)
	}

	// Both separators count: a backslash-separated name from a Windows
	// shell must not smuggle a ".." component past the check.
	for _, component := range strings.FieldsFunc(trimmed, isSeparator) {
		if component == ".." {
			return "", fmt.Errorf("%w: %s", ErrPathTraversal, trimmed)
		}
	}

	return ValidatedName(trimmed), nil
}

func isSeparator(r rune) bool { return r == '/' || r == '\\' }

// hasDrivePrefix reports whether name starts with a drive-letter-style
// prefix such as "C:". filepath.IsAbs only knows these on Windows.
func hasDrivePrefix(name string) bool {
	if len(name) < 2 || name[1] != ':' {
		return false
	}
	c := name[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
