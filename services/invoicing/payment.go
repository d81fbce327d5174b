package invoicing

import (
	"fmt"
	"math"
	"strings"

	"shutterdesk/config"
	"shutterdesk/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// createPaymentIntent opens a Stripe payment intent for the invoice amount
// and returns its ID. Returns an empty ID without error when Stripe is not
// configured.
func createPaymentIntent(req models.InvoiceRequest) (string, error) {
	if config.AppConfig.StripeKey == "" {
		return "", nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(fmt.Sprintf("Photography session %s", req.SessionID)),
	}
	if strings.Contains(req.ClientEmail, "@") {
		params.ReceiptEmail = stripe.String(req.ClientEmail)
	}
	params.AddMetadata("session_id", req.SessionID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ID, nil
}
