package invoicing

import (
	"context"
	"fmt"

	"shutterdesk/models"
	"shutterdesk/utils"

	"go.uber.org/zap"
)

// CreateInvoice persists a new invoice record. A payment intent is attached
// when Stripe is configured; its absence is not a failure, invoices can be
// settled out of band.
func (s *DefaultInvoicingService) CreateInvoice(ctx context.Context, req models.InvoiceRequest) (*models.Invoice, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("invoice request is missing session id")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invoice amount must be positive, got %.2f", req.Amount)
	}

	status := req.Status
	if status == "" {
		status = "open"
	}
	inv := models.Invoice{
		SessionID:   req.SessionID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Amount:      req.Amount,
		LineItems:   req.LineItems,
		Status:      status,
	}

	logger := utils.GetLogger()
	if intentID, err := createPaymentIntent(req); err != nil {
		logger.Warn("stripe payment intent not created",
			zap.String("sessionId", req.SessionID),
			zap.Error(err),
		)
	} else if intentID != "" {
		inv.PaymentIntentID = intentID
	}

	id, err := s.Repo.Create(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice record: %w", err)
	}
	inv.InvoiceID = id

	logger.Info("created invoice",
		zap.String("invoiceId", id),
		zap.String("sessionId", req.SessionID),
		zap.Float64("amount", req.Amount),
	)
	return &inv, nil
}

// ListInvoicesForSession returns the invoices already created from a session.
func (s *DefaultInvoicingService) ListInvoicesForSession(ctx context.Context, sessionID string) ([]models.Invoice, error) {
	return s.Repo.GetBySessionID(ctx, sessionID)
}
