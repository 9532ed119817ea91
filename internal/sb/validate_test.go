package sb_test

import (
	"errors"
	"testing"

	"sb-go/internal/sb"
)

func TestValidate(t *testing.T) {
	t.Run("valid names pass unchanged", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{
			"test.txt",
			"notes",
			"archive.tar.gz",
			"a..b",      // embedded dots are not a traversal component
			"..hidden",  // leading dots without a separator
			"weird..",   // trailing dots
			"sub/file.txt",
			".config",
		} {
			got, err := sb.Validate(name)
			if err != nil {
				t.Errorf("Validate(%q) error = %v, want nil", name, err)
				continue
			}
			if got.String() != name {
				t.Errorf("Validate(%q) = %q, want input unchanged", name, got)
			}
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		t.Parallel()
		got, err := sb.Validate("  test.txt \n")
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if got.String() != "test.txt" {
			t.Errorf("Validate() = %q, want %q", got, "test.txt")
		}
	})

	t.Run("empty and whitespace-only names are rejected", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"", "   ", "\t", "\n"} {
			_, err := sb.Validate(name)
			if !errors.Is(err, sb.ErrEmptyName) {
				t.Errorf("Validate(%q) error = %v, want ErrEmptyName", name, err)
			}
		}
	})

	t.Run("absolute paths are rejected", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{
			"/etc/passwd",
			"/tmp/x",
			`\windows\system32`,
			`C:\data\file.txt`,
			"c:/data/file.txt",
		} {
			_, err := sb.Validate(name)
			if !errors.Is(err, sb.ErrAbsolutePath) {
				t.Errorf("Validate(%q) error = %v, want ErrAbsolutePath", name, err)
			}
		}
	})

	t.Run("parent traversal components are rejected", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{
			"..",
			"../x",
			"x/..",
			"a/../b",
			"./../x",
			`a\..\b`,
			"../../etc/passwd",
		} {
			_, err := sb.Validate(name)
			if !errors.Is(err, sb.ErrPathTraversal) {
				t.Errorf("Validate(%q) error = %v, want ErrPathTraversal", name, err)
			}
		}
	})
}
