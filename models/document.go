package models

import "time"

// DocumentKind selects which commercial document is generated. The kind
// only changes the document title; line items and totals are computed the
// same way for every kind.
type DocumentKind string

const (
	DocumentQuote   DocumentKind = "quote"
	DocumentOrder   DocumentKind = "order"
	DocumentInvoice DocumentKind = "invoice"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentQuote, DocumentOrder, DocumentInvoice:
		return true
	}
	return false
}

// Title returns the printable heading for the document kind.
func (k DocumentKind) Title() string {
	switch k {
	case DocumentQuote:
		return "Quote"
	case DocumentOrder:
		return "Order Confirmation"
	case DocumentInvoice:
		return "Invoice"
	}
	return ""
}

// LineItem is one priced row of a generated document. Quantity is always 1
// in the current scope.
type LineItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unit_price"`
	LineTotal   float64 `bson:"line_total" json:"line_total"`
}

// Document is a derived, non-persisted printable artifact. It snapshots the
// recipient and session details at generation time; the rendering surface
// that receives it owns display and printing.
type Document struct {
	Kind        DocumentKind `json:"kind"`
	Title       string       `json:"title"`
	SessionID   string       `json:"session_id"`
	ClientName  string       `json:"client_name"`
	ClientEmail string       `json:"client_email"`
	ClientPhone string       `json:"client_phone"`
	SessionType string       `json:"session_type"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Location    string       `json:"location"`
	LineItems   []LineItem   `json:"line_items"`
	Subtotal    float64      `json:"subtotal"`
	Total       float64      `json:"total"` // Equal to Subtotal; no tax or discount modeling
	Notes       string       `json:"notes,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
}
