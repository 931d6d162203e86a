package workflow

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// TerminalError marks a failure that must never be retried automatically.
// Fault-injection flags and explicit business rejections surface as terminal
// errors; everything else is treated as transient and eligible for retry.
type TerminalError struct {
	Err error
}

func (e *TerminalError) Error() string {
	return e.Err.Error()
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// NewTerminalError wraps err as terminal
func NewTerminalError(err error) error {
	if err == nil {
		return nil
	}
	return &TerminalError{Err: err}
}

// NewTerminalErrorf creates a terminal error from a format string
func NewTerminalErrorf(format string, args ...interface{}) error {
	return &TerminalError{Err: errors.Errorf(format, args...)}
}

// IsTerminal reports whether err is, or wraps, a terminal error
func IsTerminal(err error) bool {
	var terminal *TerminalError
	return stderrors.As(err, &terminal)
}
