package models

import "time"

// InvoiceRequest is the command payload sent to the invoicing service when
// an operator creates an invoice from a booked session.
type InvoiceRequest struct {
	SessionID   string     `json:"session_id"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	Amount      float64    `json:"amount"`
	LineItems   []LineItem `json:"line_items"`
	Status      string     `json:"status"` // Initial invoice status, e.g. "open"
}

// Invoice represents an invoice record created by the invoicing service.
type Invoice struct {
	InvoiceID       string     `bson:"invoice_id" json:"invoice_id"`
	SessionID       string     `bson:"session_id" json:"session_id"`
	ClientName      string     `bson:"client_name" json:"client_name"`
	ClientEmail     string     `bson:"client_email" json:"client_email"`
	Amount          float64    `bson:"amount" json:"amount"`
	LineItems       []LineItem `bson:"line_items" json:"line_items"`
	Status          string     `bson:"status" json:"status"` // e.g. "open", "paid"
	PaymentIntentID string     `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
}
