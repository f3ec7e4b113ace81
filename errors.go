package vessel

import (
	"errors"
	"fmt"
)

// ErrBadCast indicates a typed extraction against an empty container or a
// container holding a different type. Use errors.Is() to check for it.
var ErrBadCast = errors.New("bad cast")

// BadCastError represents a rejected typed extraction.
// It wraps ErrBadCast with the requested and the held type.
type BadCastError struct {
	Err  error // Underlying sentinel error (ErrBadCast)
	Want Token // Type requested by the caller
	Have Token // Type held by the container, NoType when empty
}

func (e *BadCastError) Error() string {
	if e.Have.IsNone() {
		return fmt.Sprintf("%s: want %s, container is empty", e.Err.Error(), e.Want)
	}
	return fmt.Sprintf("%s: want %s, have %s", e.Err.Error(), e.Want, e.Have)
}

func (e *BadCastError) Unwrap() error {
	return e.Err
}

// NewBadCastError creates a BadCastError for a rejected extraction.
func NewBadCastError(want, have Token) error {
	return &BadCastError{
		Err:  ErrBadCast,
		Want: want,
		Have: have,
	}
}
