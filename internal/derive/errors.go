package derive

import "errors"

// Failure taxonomy for the public surface. Entry points wrap these with
// context; callers match with errors.Is and decide how to log or surface the
// failure.
var (
	// ErrNotFound means the source or referenced file is missing.
	ErrNotFound = errors.New("source file not found")

	// ErrUnreadable means the file exists but cannot be opened or is not a
	// recognized image.
	ErrUnreadable = errors.New("file is not a readable image")

	// ErrUnsupportedFormat means the decoded type tag has no codec.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrAllocation means a canvas or intermediate bitmap could not be
	// created.
	ErrAllocation = errors.New("bitmap allocation failed")

	// ErrEncode means the write to the destination failed.
	ErrEncode = errors.New("image encode failed")
)
