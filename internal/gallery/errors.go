package gallery

import "errors"

var (
	// ErrIndex is returned when the image root exists but cannot be walked.
	ErrIndex = errors.New("failed to index images")

	// ErrFileRead is returned when an indexed image can no longer be read,
	// typically because it was removed after the index was built.
	ErrFileRead = errors.New("failed to read image")
)
