package invoiceRepo

import (
	"context"
	"time"

	"shutterdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new invoice record and returns its ID.
func (r *mongoInvoiceRepo) Create(ctx context.Context, inv models.Invoice) (string, error) {
	if inv.InvoiceID == "" {
		inv.InvoiceID = uuid.New().String()
	}
	inv.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return "", err
	}
	return inv.InvoiceID, nil
}

// GetBySessionID fetches all invoices created from a session.
func (r *mongoInvoiceRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.Invoice, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}
