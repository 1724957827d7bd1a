package service

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input validation failure. Handlers map
// anything wrapping it to a 400; the wrapped message names the offending
// field.
var ErrValidation = errors.New("validation failed")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
