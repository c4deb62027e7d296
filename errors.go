package textfx

import (
	"errors"
	"fmt"
)

var (
	// ErrSurfaceUnavailable is returned when the destination surface is nil
	// or a scratch surface cannot be created. Nothing is drawn to the
	// destination in that case.
	ErrSurfaceUnavailable = errors.New("textfx: surface unavailable")

	// ErrNotReady is returned when fonts failed to load or the context
	// ended before they were ready.
	ErrNotReady = errors.New("textfx: fonts not ready")

	// ErrCanvasTooLarge is returned when the computed canvas exceeds the
	// renderer's maximum dimension.
	ErrCanvasTooLarge = errors.New("textfx: canvas too large")

	// ErrLayerNotFound is returned by stack edits that name an unknown id.
	ErrLayerNotFound = errors.New("textfx: layer not found")

	// ErrTypeMismatch is returned when an update carries params of another
	// layer type.
	ErrTypeMismatch = errors.New("textfx: layer type mismatch")
)

// LayerError annotates a stack error with the layer it concerns.
type LayerError struct {
	ID  string
	Op  string
	Err error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("textfx: %s layer %q: %v", e.Op, e.ID, e.Err)
}

func (e *LayerError) Unwrap() error {
	return e.Err
}
