package scheduling

import "gigbook/models"

// CheckTransition guards a status change. Any non-terminal booking may move
// to any recognized status; the operator's workflow buttons impose no linear
// ordering. Completed and Cancelled admit no further transitions.
func CheckTransition(bookingID string, current, next models.BookingStatus) error {
	if !next.IsValid() {
		return invalidField("status", "unknown status "+string(next))
	}
	if current.IsTerminal() {
		return &TerminalStateError{BookingID: bookingID, Status: current}
	}
	return nil
}
