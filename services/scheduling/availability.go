package scheduling

import (
	"context"
	"sort"
	"time"

	bookingRepo "gigbook/database/repository/booking"
)

// BookedDates returns the sorted dates carrying at least one active booking
// within a lookahead window starting at from. The calendar picker uses it to
// disable dates that are already taken; the default window is six months.
func (svc *DefaultBookingService) BookedDates(ctx context.Context, from time.Time, months int) ([]string, error) {
	rng := &bookingRepo.DateRange{
		From: from.Format("2006-01-02"),
		To:   from.AddDate(0, months, 0).Format("2006-01-02"),
	}

	bookings, err := svc.ListActive(ctx, rng)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var dates []string
	for _, b := range bookings {
		if !seen[b.Slot.Date] {
			seen[b.Slot.Date] = true
			dates = append(dates, b.Slot.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}
