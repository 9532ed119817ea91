package sb

// FilesystemManager abstracts file access within a single working
// directory. All names are plain file names relative to that directory;
// implementations resolve them against the directory they were
// constructed with. The abstraction exists so the service can be tested
// without touching the real filesystem.
type FilesystemManager interface {
	// Exists reports whether name refers to a regular file.
	Exists(name string) (bool, error)

	// List returns the names of regular files in the working directory.
	List() ([]string, error)

	// Copy copies src to dst. Implementations must write through a
	// temporary file and rename into place so a failed copy never
	// leaves a partially written dst.
	Copy(src, dst string) error

	// Remove deletes the named file.
	Remove(name string) error
}
