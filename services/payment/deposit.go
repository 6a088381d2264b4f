package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"gigbook/models"
)

// DepositCollaborator turns a deposit quote into something the client UI can
// pay. It only ever sees the numbers the pricing rules computed; it never
// reaches back into the scheduling core.
type DepositCollaborator interface {
	CreateDepositIntent(ctx context.Context, quote models.DepositQuote) (*models.DepositIntent, error)
}

// StripeDepositCollaborator implements DepositCollaborator with Stripe
// payment intents. The package-level stripe.Key is set at startup.
type StripeDepositCollaborator struct {
	Currency string
	Logger   *zap.Logger
}

func (s *StripeDepositCollaborator) CreateDepositIntent(ctx context.Context, quote models.DepositQuote) (*models.DepositIntent, error) {
	if quote.DepositAmount <= 0 {
		return nil, fmt.Errorf("invalid deposit amount %d for booking %s", quote.DepositAmount, quote.BookingID)
	}

	params := &stripe.PaymentIntentParams{
		// Stripe amounts are in the currency's smallest unit.
		Amount:   stripe.Int64(int64(quote.DepositAmount) * 100),
		Currency: stripe.String(s.Currency),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", quote.BookingID)
	params.AddMetadata("full_price", fmt.Sprintf("%d", quote.Price))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit payment intent: %w", err)
	}

	s.Logger.Info("deposit payment intent created",
		zap.String("booking_id", quote.BookingID),
		zap.String("intent_id", pi.ID),
		zap.Int("deposit", quote.DepositAmount),
	)

	return &models.DepositIntent{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       quote.DepositAmount,
		Currency:     s.Currency,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
