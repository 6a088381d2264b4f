package scheduling

import (
	"errors"
	"fmt"

	"gigbook/models"
)

// ErrSlotConflict means the requested time slot overlaps an active booking.
// The submission is rejected whole; nothing is written.
var ErrSlotConflict = errors.New("requested time slot conflicts with an existing booking")

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// TerminalStateError rejects a status change on a booking whose status
// permits no further transitions.
type TerminalStateError struct {
	BookingID string
	Status    models.BookingStatus
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("booking %s is %s and cannot change status", e.BookingID, e.Status)
}
