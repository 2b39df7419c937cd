package probe

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is an error code. Errors returned by this module wrap one of these
// codes, so callers test them with errors.Is.
type Err int

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrInternalServerError
	ErrUnsupportedSurface
)

var errText = map[Err]string{
	ErrSuccess:             "success",
	ErrNotFound:            "not found",
	ErrBadParameter:        "bad parameter",
	ErrNotImplemented:      "not implemented",
	ErrInternalServerError: "internal server error",
	ErrUnsupportedSurface:  "unsupported surface",
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	if text, exists := errText[e]; exists {
		return text
	}
	return fmt.Sprintf("error code %d", int(e))
}

// With returns the error with the arguments appended as detail
func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

// Withf returns the error with formatted detail
func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
