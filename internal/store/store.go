// Package store abstracts the filesystem behind the memoization protocol so
// the artifact layer can be tested against an in-memory fake.
package store

import "io"

// FileStore is the capability the artifact layer needs from a filesystem:
// existence checks, reads, and writes. It is the only memoization state in
// the system; nothing else persists across requests.
type FileStore interface {
	// Exists reports whether a file is present at path.
	Exists(path string) bool

	// Open opens an existing file for reading.
	Open(path string) (io.ReadCloser, error)

	// Create opens path for writing, creating parent directories as
	// needed. The file's bytes become visible when the writer is closed.
	Create(path string) (io.WriteCloser, error)

	// Size returns the byte size of an existing file.
	Size(path string) (int64, error)
}
