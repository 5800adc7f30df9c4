package server

import "fmt"

// ValidationError represents required input that is absent: no prompt text,
// no uploaded file. Always surfaced as HTTP 400, never logged as a server
// fault.
type ValidationError struct {
    Message string
}

func (e *ValidationError) Error() string { return e.Message }

// validationf builds a ValidationError with a formatted message.
func validationf(format string, args ...any) error {
    return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
