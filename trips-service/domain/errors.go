package domain

import "fmt"

// BookingFailedError is the terminal outcome of a rolled-back booking. It
// carries the failure that started the rollback and how many compensations
// were dispatched before the saga gave up.
type BookingFailedError struct {
	Cause                error
	CompensationsApplied int
}

func (e *BookingFailedError) Error() string {
	return fmt.Sprintf("booking failed after %d compensation(s): %v", e.CompensationsApplied, e.Cause)
}

func (e *BookingFailedError) Unwrap() error {
	return e.Cause
}
