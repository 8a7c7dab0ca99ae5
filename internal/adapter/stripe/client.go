package stripe

import (
	"context"
	"fmt"
	"log/slog"

	sdk "github.com/stripe/stripe-go/v82"
	sdkclient "github.com/stripe/stripe-go/v82/client"
)

// Client exposes payment intent creation against the gateway.
type Client interface {
	CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error)
}

// APIClient implements Client via the Stripe API.
type APIClient struct {
	api    *sdkclient.API
	logger *slog.Logger
}

// NewAPIClient creates a Stripe client bound to the given secret key.
func NewAPIClient(secretKey string, logger *slog.Logger) *APIClient {
	api := &sdkclient.API{}
	api.Init(secretKey, nil)
	return &APIClient{api: api, logger: logger}
}

// CreateIntent stages a payment for the given amount and returns the
// client secret authorizing the frontend to complete the charge.
func (c *APIClient) CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error) {
	params := &sdk.PaymentIntentParams{
		Amount:   sdk.Int64(amountInCents),
		Currency: sdk.String(currency),
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.logger.Error("payment intent creation failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
