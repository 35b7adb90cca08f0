package hostsfile

import (
	"errors"
	"fmt"
)

var (
	// ErrSkipped is matched by every error that marks a check skipped
	ErrSkipped = errors.New("skipped")
	// ErrMissingFile is returned when the path is not a regular file
	ErrMissingFile = errors.New("can't find file")
	// ErrEmptyFile is returned when the file has no content
	ErrEmptyFile = errors.New("file has no content")
)

// SkipError reports a hosts file that cannot be checked.
type SkipError struct {
	Path string
	Err  error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("%s. %q", e.Err, e.Path)
}

func (e *SkipError) Unwrap() []error {
	return []error{ErrSkipped, e.Err}
}

// IsSkipped reports whether err means the check is inapplicable
// rather than failed.
func IsSkipped(err error) bool {
	return errors.Is(err, ErrSkipped)
}
