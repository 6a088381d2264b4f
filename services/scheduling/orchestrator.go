package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "gigbook/database/repository/booking"
	"gigbook/models"
	"gigbook/services/notification"
)

// SubmitRequest is a client's intake submission, already decoded from the
// multi-step form.
type SubmitRequest struct {
	Contact    models.Contact  `json:"contact"`
	Slot       models.TimeSlot `json:"slot"`
	EventType  string          `json:"eventType"`
	Venue      models.Venue    `json:"venue"`
	GuestCount int             `json:"guestCount"`
	Notes      string          `json:"notes"`
}

// UpdatePatch carries the fields an operator edit wants to change; nil means
// leave alone. Price is deliberately absent: it is fixed at creation.
type UpdatePatch struct {
	Contact    *models.Contact       `json:"contact"`
	Slot       *models.TimeSlot      `json:"slot"`
	EventType  *string               `json:"eventType"`
	Venue      *models.Venue         `json:"venue"`
	GuestCount *int                  `json:"guestCount"`
	Notes      *string               `json:"notes"`
	Status     *models.BookingStatus `json:"status"`
}

// BookingService validates, prices, and persists booking requests.
type BookingService interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.Booking, error)
	Update(ctx context.Context, id string, patch UpdatePatch) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListActive(ctx context.Context, rng *bookingRepo.DateRange) ([]models.Booking, error)
	BookedDates(ctx context.Context, from time.Time, months int) ([]string, error)
}

// DefaultBookingService implements BookingService against the booking
// repository, notifying the registered observer on every state change.
type DefaultBookingService struct {
	Repo     bookingRepo.Repository
	Observer notification.BookingObserver
	Logger   *zap.Logger
}

// Submit runs the full intake pipeline: validate required fields, check the
// candidate slot against active bookings, price the event, persist the new
// booking in Inquiry status. Any failure blocks the whole operation; nothing
// is partially written.
func (svc *DefaultBookingService) Submit(ctx context.Context, req SubmitRequest) (*models.Booking, error) {
	contact, err := validateContact(req.Contact)
	if err != nil {
		return nil, err
	}
	if err := validateSlot(req.Slot); err != nil {
		return nil, err
	}
	if req.EventType == "" {
		return nil, invalidField("eventType", "required")
	}

	var active []models.Booking
	err = svc.withRetry(ctx, "list active bookings", func() error {
		var listErr error
		active, listErr = svc.Repo.ListActiveOnDate(ctx, req.Slot.Date)
		return listErr
	})
	if err != nil {
		return nil, err
	}

	if HasConflict(req.Slot, active, "") {
		return nil, ErrSlotConflict
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		Contact:    contact,
		Slot:       req.Slot,
		EventType:  req.EventType,
		Venue:      req.Venue,
		GuestCount: req.GuestCount,
		Status:     models.StatusInquiry,
		Price:      Price(req.EventType),
		Notes:      req.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	err = svc.withRetry(ctx, "create booking", func() error {
		return svc.Repo.CreateIfFree(ctx, booking)
	})
	if err != nil {
		if err == bookingRepo.ErrSlotTaken {
			// A concurrent submission won the slot between our scan and the
			// transactional write.
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	svc.Observer.BookingCreated(ctx, booking)
	return booking, nil
}

// Update applies an operator edit. A slot change is re-validated against
// every active booking except this one; a status change goes through the
// terminal-state guard. Everything else is a plain field patch. The whole
// patch is validated before anything is written, so a rejected edit never
// leaves a partial write behind.
func (svc *DefaultBookingService) Update(ctx context.Context, id string, patch UpdatePatch) (*models.Booking, error) {
	booking, err := svc.getWithRetry(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := CheckTransition(id, booking.Status, *patch.Status); err != nil {
			return nil, err
		}
	}

	fields, err := patchFields(patch)
	if err != nil {
		return nil, err
	}

	if patch.Slot != nil && *patch.Slot != booking.Slot {
		if err := validateSlot(*patch.Slot); err != nil {
			return nil, err
		}
		if err := svc.moveSlot(ctx, booking, *patch.Slot); err != nil {
			return nil, err
		}
	}

	if len(fields) > 0 {
		err = svc.withRetry(ctx, "update booking fields", func() error {
			return svc.Repo.UpdateFields(ctx, id, fields)
		})
		if err != nil {
			return nil, err
		}
	}

	updated, err := svc.getWithRetry(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != booking.Status {
		svc.Observer.StatusChanged(ctx, updated, booking.Status, *patch.Status)
	}
	return updated, nil
}

// moveSlot re-runs conflict validation for an already-validated slot,
// excluding the booking's own prior record, then writes the move
// transactionally.
func (svc *DefaultBookingService) moveSlot(ctx context.Context, booking *models.Booking, slot models.TimeSlot) error {
	var active []models.Booking
	err := svc.withRetry(ctx, "list active bookings", func() error {
		var listErr error
		active, listErr = svc.Repo.ListActiveOnDate(ctx, slot.Date)
		return listErr
	})
	if err != nil {
		return err
	}
	if HasConflict(slot, active, booking.ID) {
		return ErrSlotConflict
	}

	err = svc.withRetry(ctx, "update booking slot", func() error {
		return svc.Repo.UpdateSlotIfFree(ctx, booking.ID, slot)
	})
	if err == bookingRepo.ErrSlotTaken {
		return ErrSlotConflict
	}
	return err
}

// patchFields turns the patch into the repository's $set map, validating
// whatever it touches.
func patchFields(patch UpdatePatch) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if patch.Contact != nil {
		contact, err := validateContact(*patch.Contact)
		if err != nil {
			return nil, err
		}
		fields["contact"] = contact
	}
	if patch.EventType != nil {
		if *patch.EventType == "" {
			return nil, invalidField("eventType", "required")
		}
		fields["event_type"] = *patch.EventType
	}
	if patch.Venue != nil {
		fields["venue"] = *patch.Venue
	}
	if patch.GuestCount != nil {
		fields["guest_count"] = *patch.GuestCount
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	return fields, nil
}

func (svc *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return svc.getWithRetry(ctx, id)
}

func (svc *DefaultBookingService) ListActive(ctx context.Context, rng *bookingRepo.DateRange) ([]models.Booking, error) {
	var bookings []models.Booking
	err := svc.withRetry(ctx, "list active bookings", func() error {
		var listErr error
		bookings, listErr = svc.Repo.ListActive(ctx, rng)
		return listErr
	})
	return bookings, err
}

func (svc *DefaultBookingService) getWithRetry(ctx context.Context, id string) (*models.Booking, error) {
	var booking *models.Booking
	err := svc.withRetry(ctx, "fetch booking", func() error {
		var getErr error
		booking, getErr = svc.Repo.GetByID(ctx, id)
		return getErr
	})
	return booking, err
}
