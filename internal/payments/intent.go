package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// ErrDisabled means the payment provider key is not configured; the intent
// endpoint reports unavailability while everything else keeps working.
var ErrDisabled = errors.New("payment provider is not configured")

// DefaultCurrency is applied when a request carries no currency code.
const DefaultCurrency = "bdt"

// IntentCreator requests a payment-intent handle from the payment provider
// and returns the client-side completion secret. The front end completes
// the payment out-of-band; this service never confirms completion itself.
type IntentCreator interface {
	Create(ctx context.Context, price float64, currency string) (string, error)
}

// StripeIntents implements IntentCreator against Stripe.
type StripeIntents struct {
	enabled bool
}

// NewStripeIntents configures the Stripe client. An empty key yields a
// disabled client.
func NewStripeIntents(secretKey string) *StripeIntents {
	if secretKey == "" {
		return &StripeIntents{}
	}
	stripe.Key = secretKey
	return &StripeIntents{enabled: true}
}

func (s *StripeIntents) Create(ctx context.Context, price float64, currency string) (string, error) {
	if !s.enabled {
		return "", ErrDisabled
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	// The provider counts in minor units.
	amount := int64(price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
