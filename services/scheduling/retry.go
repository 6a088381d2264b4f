package scheduling

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	bookingRepo "gigbook/database/repository/booking"
)

const (
	persistAttempts = 3
	retryBaseDelay  = 100 * time.Millisecond
)

// withRetry runs a persistence operation with bounded exponential backoff.
// Domain outcomes (not found, slot taken) are never retried; only genuine
// store failures are, and the last error is surfaced to the caller.
func (svc *DefaultBookingService) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	delay := retryBaseDelay
	for attempt := 1; attempt <= persistAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, bookingRepo.ErrNotFound) || errors.Is(err, bookingRepo.ErrSlotTaken) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		if attempt < persistAttempts {
			svc.Logger.Warn("persistence operation failed, retrying",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return err
			}
			delay *= 2
		}
	}
	svc.Logger.Error("persistence operation failed", zap.String("op", op), zap.Error(err))
	return err
}
