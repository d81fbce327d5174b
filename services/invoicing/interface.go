package invoicing

import (
	"context"

	invoiceRepo "shutterdesk/database/repository/invoice"
	"shutterdesk/models"
)

// InvoicingService creates invoice records from create-invoice commands.
type InvoicingService interface {
	CreateInvoice(ctx context.Context, req models.InvoiceRequest) (*models.Invoice, error)
	ListInvoicesForSession(ctx context.Context, sessionID string) ([]models.Invoice, error)
}

// DefaultInvoicingService implements InvoicingService. When a Stripe key is
// configured it also opens a payment intent for the invoice amount.
type DefaultInvoicingService struct {
	Repo invoiceRepo.InvoiceRepository
}
