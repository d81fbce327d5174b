package invoiceRepo

import (
	"context"

	"shutterdesk/database"
	"shutterdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository stores invoice records created by the invoicing service.
type InvoiceRepository interface {
	Create(ctx context.Context, inv models.Invoice) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.Invoice, error)
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo returns an InvoiceRepository backed by MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoInvoiceRepo{
		coll: db.Collection("invoices"),
	}
}
