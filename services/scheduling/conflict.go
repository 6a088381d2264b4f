package scheduling

import "gigbook/models"

// HasConflict reports whether the candidate slot overlaps any booking in the
// given set. Cancelled bookings never conflict. A non-empty excludeID skips
// that booking, so an edit can be re-validated against everything but itself.
//
// Linear scan; the calendar belongs to a single operator, so the active set
// stays small.
func HasConflict(candidate models.TimeSlot, bookings []models.Booking, excludeID string) bool {
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b.Slot) {
			return true
		}
	}
	return false
}
