package preset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for file extensions or names without a
	// codec.
	ErrUnknownFormat = errors.New("preset: unknown format")

	// ErrNotDocument is returned when the input decodes to something other
	// than an object.
	ErrNotDocument = errors.New("preset: not a document")
)

// DecodeError reports a document that could not be decoded.
type DecodeError struct {
	Path   string // empty for in-memory data
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("preset: decode %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("preset: decode %s %s: %v", e.Format, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
