package bookingRepo

import (
	"context"
	"errors"

	"gigbook/models"
)

// ErrNotFound is returned when no booking carries the requested id.
var ErrNotFound = errors.New("booking not found")

// ErrSlotTaken is returned by the transactional writes when the store-side
// overlap re-check finds the slot already occupied. It is the authoritative
// guard behind the service-level conflict scan.
var ErrSlotTaken = errors.New("time slot already taken")

// DateRange bounds a query to dates From..To inclusive, "YYYY-MM-DD".
type DateRange struct {
	From string
	To   string
}

// Repository is the narrow persistence contract the scheduling core depends
// on. Anything that can list, create, and patch booking documents can back it.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListActive returns bookings with status != Cancelled, optionally
	// bounded to a date range.
	ListActive(ctx context.Context, rng *DateRange) ([]models.Booking, error)
	ListActiveOnDate(ctx context.Context, date string) ([]models.Booking, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// CreateIfFree inserts the booking unless an active booking overlaps its
	// slot, checked and written in one transaction.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	// UpdateSlotIfFree moves a booking to a new slot unless another active
	// booking overlaps it, checked and written in one transaction.
	UpdateSlotIfFree(ctx context.Context, id string, slot models.TimeSlot) error
}
