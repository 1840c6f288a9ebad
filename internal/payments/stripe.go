// Package payments talks to the hosted payment processor.
package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/spec-kit/scholarship-service/internal/config"
)

// ErrNotConfigured is returned when no processor key is set.
var ErrNotConfigured = errors.New("payment processor not configured")

// intentCreator is satisfied by the stripe-go payment intent client.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway creates card payment intents.
type StripeGateway struct {
	intents  intentCreator
	currency string
	timeout  time.Duration
}

// NewStripeGateway builds a gateway from config. Without a secret key every
// call fails with ErrNotConfigured.
func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	gw := &StripeGateway{currency: cfg.Currency, timeout: cfg.Timeout()}
	if cfg.SecretKey != "" {
		gw.intents = client.New(cfg.SecretKey, nil).PaymentIntents
	}
	return gw
}

// CreateIntent opens a payment intent for amount minor units and returns
// the client secret the browser confirms it with.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if g.intents == nil {
		return "", ErrNotConfigured
	}
	if amount <= 0 {
		return "", fmt.Errorf("invalid amount %d", amount)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
