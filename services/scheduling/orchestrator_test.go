package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "gigbook/database/repository/booking"
	"gigbook/models"
)

// fakeRepo is an in-memory Repository with scriptable transient failures.
type fakeRepo struct {
	bookings    map[string]*models.Booking
	listCalls   int
	failures    map[string]int // op -> remaining failures
	createTaken bool           // force ErrSlotTaken from CreateIfFree
}

func newFakeRepo(seed ...models.Booking) *fakeRepo {
	repo := &fakeRepo{
		bookings: map[string]*models.Booking{},
		failures: map[string]int{},
	}
	for i := range seed {
		b := seed[i]
		repo.bookings[b.ID] = &b
	}
	return repo
}

func (f *fakeRepo) failNext(op string, n int) { f.failures[op] = n }

func (f *fakeRepo) transientFailure(op string) error {
	if f.failures[op] > 0 {
		f.failures[op]--
		return errors.New("store unavailable")
	}
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if err := f.transientFailure("get"); err != nil {
		return nil, err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) ListActive(_ context.Context, rng *bookingRepo.DateRange) ([]models.Booking, error) {
	f.listCalls++
	if err := f.transientFailure("list"); err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		if rng != nil && (b.Slot.Date < rng.From || b.Slot.Date > rng.To) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) ListActiveOnDate(ctx context.Context, date string) ([]models.Booking, error) {
	return f.ListActive(ctx, &bookingRepo.DateRange{From: date, To: date})
}

func (f *fakeRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	if err := f.transientFailure("update"); err != nil {
		return err
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "contact":
			b.Contact = value.(models.Contact)
		case "event_type":
			b.EventType = value.(string)
		case "venue":
			b.Venue = value.(models.Venue)
		case "guest_count":
			b.GuestCount = value.(int)
		case "notes":
			b.Notes = value.(string)
		case "status":
			b.Status = value.(models.BookingStatus)
		}
	}
	return nil
}

func (f *fakeRepo) CreateIfFree(_ context.Context, booking *models.Booking) error {
	if err := f.transientFailure("create"); err != nil {
		return err
	}
	if f.createTaken {
		return bookingRepo.ErrSlotTaken
	}
	for _, b := range f.bookings {
		if b.Status != models.StatusCancelled && booking.Slot.Overlaps(b.Slot) {
			return bookingRepo.ErrSlotTaken
		}
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeRepo) UpdateSlotIfFree(_ context.Context, id string, slot models.TimeSlot) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	for _, other := range f.bookings {
		if other.ID == id || other.Status == models.StatusCancelled {
			continue
		}
		if slot.Overlaps(other.Slot) {
			return bookingRepo.ErrSlotTaken
		}
	}
	b.Slot = slot
	return nil
}

// fakeObserver records what the orchestrator reports.
type fakeObserver struct {
	created       []string
	statusChanges []string
}

func (o *fakeObserver) BookingCreated(_ context.Context, b *models.Booking) {
	o.created = append(o.created, b.ID)
}

func (o *fakeObserver) StatusChanged(_ context.Context, b *models.Booking, from, to models.BookingStatus) {
	o.statusChanges = append(o.statusChanges, string(from)+"->"+string(to))
}

func newService(repo *fakeRepo) (*DefaultBookingService, *fakeObserver) {
	observer := &fakeObserver{}
	return &DefaultBookingService{
		Repo:     repo,
		Observer: observer,
		Logger:   zap.NewNop(),
	}, observer
}

func validSubmit() SubmitRequest {
	return SubmitRequest{
		Contact: models.Contact{
			Name:  "Jamie Rivera",
			Email: "jamie@example.com",
			Phone: "(555) 123-4567",
		},
		Slot:       models.TimeSlot{Date: "2025-06-14", Start: 18 * 60, End: 22 * 60},
		EventType:  "Wedding Ceremony & Reception",
		Venue:      models.Venue{Name: "Lakeside Hall", Location: "Madison, WI"},
		GuestCount: 120,
	}
}

func TestSubmit_CreatesInquiryBooking(t *testing.T) {
	repo := newFakeRepo()
	svc, observer := newService(repo)

	booking, err := svc.Submit(context.Background(), validSubmit())

	require.NoError(t, err)
	assert.Equal(t, models.StatusInquiry, booking.Status)
	assert.Equal(t, 1500, booking.Price)
	assert.Equal(t, "5551234567", booking.Contact.Phone)
	assert.False(t, booking.DepositPaid())
	assert.False(t, booking.CreatedAt.IsZero())
	assert.NotEmpty(t, booking.ID)

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, []string{booking.ID}, observer.created)
}

func TestSubmit_RejectsConflictingSlot(t *testing.T) {
	repo := newFakeRepo(activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusConfirmed))
	svc, observer := newService(repo)

	req := validSubmit()
	req.Slot = models.TimeSlot{Date: "2025-06-14", Start: 20 * 60, End: 23 * 60}

	_, err := svc.Submit(context.Background(), req)

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, repo.bookings, 1) // no partial write
	assert.Empty(t, observer.created)
}

func TestSubmit_AllowsOverlapWithCancelled(t *testing.T) {
	repo := newFakeRepo(activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusCancelled))
	svc, _ := newService(repo)

	req := validSubmit()
	req.Slot = models.TimeSlot{Date: "2025-06-14", Start: 20 * 60, End: 23 * 60}

	booking, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, repo.bookings, 2)
	assert.Equal(t, models.StatusInquiry, booking.Status)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitRequest)
		field  string
	}{
		{"missing name", func(r *SubmitRequest) { r.Contact.Name = "  " }, "contact.name"},
		{"bad email", func(r *SubmitRequest) { r.Contact.Email = "not-an-email" }, "contact.email"},
		{"short phone", func(r *SubmitRequest) { r.Contact.Phone = "555-1234" }, "contact.phone"},
		{"missing date", func(r *SubmitRequest) { r.Slot.Date = "" }, "slot.date"},
		{"bad date", func(r *SubmitRequest) { r.Slot.Date = "June 14" }, "slot.date"},
		{"inverted interval", func(r *SubmitRequest) { r.Slot.Start, r.Slot.End = 22 * 60, 18 * 60 }, "slot"},
		{"crosses midnight", func(r *SubmitRequest) { r.Slot.Start, r.Slot.End = 23 * 60, 26 * 60 }, "slot"},
		{"missing event type", func(r *SubmitRequest) { r.EventType = "" }, "eventType"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc, _ := newService(repo)

			req := validSubmit()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestSubmit_RetriesTransientStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failNext("list", 2)
	svc, _ := newService(repo)

	_, err := svc.Submit(context.Background(), validSubmit())

	require.NoError(t, err)
	assert.Len(t, repo.bookings, 1)
}

func TestSubmit_SurfacesPersistentStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failNext("list", 5)
	svc, _ := newService(repo)

	_, err := svc.Submit(context.Background(), validSubmit())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, repo.bookings)
}

func TestSubmit_ConcurrentWinnerDetectedAtWrite(t *testing.T) {
	// The transactional write is the authoritative guard: even when the scan
	// saw no conflict, a race loss surfaces as a slot conflict.
	repo := newFakeRepo()
	repo.createTaken = true
	svc, _ := newService(repo)

	_, err := svc.Submit(context.Background(), validSubmit())

	require.ErrorIs(t, err, ErrSlotConflict)
}

func TestUpdate_TerminalStatusGuard(t *testing.T) {
	done := activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusCompleted)
	repo := newFakeRepo(done)
	svc, observer := newService(repo)

	next := models.StatusConfirmed
	_, err := svc.Update(context.Background(), "b1", UpdatePatch{Status: &next})

	var terminalErr *TerminalStateError
	require.ErrorAs(t, err, &terminalErr)
	assert.Equal(t, models.StatusCompleted, repo.bookings["b1"].Status)
	assert.Empty(t, observer.statusChanges)
}

func TestUpdate_StatusChangeApplied(t *testing.T) {
	repo := newFakeRepo(activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusInquiry))
	svc, observer := newService(repo)

	next := models.StatusConfirmed
	updated, err := svc.Update(context.Background(), "b1", UpdatePatch{Status: &next})

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, []string{"Inquiry->Confirmed"}, observer.statusChanges)
}

func TestUpdate_SlotChangeRevalidatesExcludingSelf(t *testing.T) {
	repo := newFakeRepo(
		activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusConfirmed),
		activeBooking("b2", "2025-06-14", 9*60, 11*60, models.StatusPending),
	)
	svc, _ := newService(repo)

	// Shifting b1 within its own window only overlaps itself: allowed.
	shifted := models.TimeSlot{Date: "2025-06-14", Start: 19 * 60, End: 23 * 60}
	updated, err := svc.Update(context.Background(), "b1", UpdatePatch{Slot: &shifted})
	require.NoError(t, err)
	assert.Equal(t, shifted, updated.Slot)

	// Moving b1 onto b2's slot conflicts.
	onto := models.TimeSlot{Date: "2025-06-14", Start: 10 * 60, End: 12 * 60}
	_, err = svc.Update(context.Background(), "b1", UpdatePatch{Slot: &onto})
	require.ErrorIs(t, err, ErrSlotConflict)
}

func TestUpdate_NoSlotChangeSkipsConflictScan(t *testing.T) {
	repo := newFakeRepo(activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusInquiry))
	svc, _ := newService(repo)

	notes := "bring the fog machine"
	updated, err := svc.Update(context.Background(), "b1", UpdatePatch{Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Zero(t, repo.listCalls)
}

func TestUpdate_SameSlotPatchSkipsConflictScan(t *testing.T) {
	same := models.TimeSlot{Date: "2025-06-14", Start: 18 * 60, End: 22 * 60}
	repo := newFakeRepo(activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusInquiry))
	svc, _ := newService(repo)

	_, err := svc.Update(context.Background(), "b1", UpdatePatch{Slot: &same})

	require.NoError(t, err)
	assert.Zero(t, repo.listCalls)
}

func TestUpdate_PriceImmutable(t *testing.T) {
	booking := activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusInquiry)
	booking.EventType = "Wedding Ceremony & Reception"
	booking.Price = 1500
	repo := newFakeRepo(booking)
	svc, _ := newService(repo)

	cheaper := "Birthday Party"
	updated, err := svc.Update(context.Background(), "b1", UpdatePatch{EventType: &cheaper})

	require.NoError(t, err)
	assert.Equal(t, "Birthday Party", updated.EventType)
	assert.Equal(t, 1500, updated.Price)
}

func TestUpdate_InvalidFieldRejectsWholePatch(t *testing.T) {
	// A patch combining a valid slot move with a broken field must not write
	// anything: the slot stays where it was.
	original := models.TimeSlot{Date: "2025-06-14", Start: 18 * 60, End: 22 * 60}
	repo := newFakeRepo(activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusInquiry))
	svc, _ := newService(repo)

	newSlot := models.TimeSlot{Date: "2025-06-15", Start: 10 * 60, End: 12 * 60}
	badContact := models.Contact{Name: "Jamie Rivera", Email: "not-an-email", Phone: "5551234567"}
	_, err := svc.Update(context.Background(), "b1", UpdatePatch{
		Slot:    &newSlot,
		Contact: &badContact,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "contact.email", validationErr.Field)
	assert.Equal(t, original, repo.bookings["b1"].Slot)
}

func TestUpdate_InvalidSlotRejectedBeforeWrite(t *testing.T) {
	repo := newFakeRepo(activeBooking("b1", "2025-06-14", 18*60, 22*60, models.StatusInquiry))
	svc, _ := newService(repo)

	inverted := models.TimeSlot{Date: "2025-06-15", Start: 12 * 60, End: 10 * 60}
	notes := "updated"
	_, err := svc.Update(context.Background(), "b1", UpdatePatch{
		Slot:  &inverted,
		Notes: &notes,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "slot", validationErr.Field)
	assert.Empty(t, repo.bookings["b1"].Notes)
}

func TestUpdate_UnknownBooking(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newService(repo)

	notes := "x"
	_, err := svc.Update(context.Background(), "missing", UpdatePatch{Notes: &notes})

	require.ErrorIs(t, err, bookingRepo.ErrNotFound)
}
