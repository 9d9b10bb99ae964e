package securetypes

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned when byte input for a SecureString is not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// LengthMismatchError reports a fixed-length construction or decode whose
// source length differs from the required length.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, but got %d", e.Expected, e.Actual)
}
