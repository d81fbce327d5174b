package models

import "time"

// SessionStatus is the lifecycle state of a booking session.
type SessionStatus string

const (
	StatusPending  SessionStatus = "pending"
	StatusQuoted   SessionStatus = "quoted"
	StatusBooked   SessionStatus = "booked"
	StatusInvoiced SessionStatus = "invoiced"
)

// Valid reports whether s is one of the defined lifecycle states.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusQuoted, StatusBooked, StatusInvoiced:
		return true
	}
	return false
}

// Session represents one client engagement request, the root entity of the
// booking workflow. Package and add-on references may point at catalog
// entries that no longer exist; consumers degrade gracefully on a miss.
type Session struct {
	ID          string        `bson:"id" json:"id"`                                       // Opaque, stable identifier (e.g., UUID)
	ClientName  string        `bson:"client_name" json:"client_name"`                     // Client full name
	ClientEmail string        `bson:"client_email" json:"client_email"`                   // Client email address
	ClientPhone string        `bson:"client_phone,omitempty" json:"client_phone,omitempty"`
	SessionType string        `bson:"session_type" json:"session_type"`                   // Free-text category, e.g. "engagement", "motorcycle"
	Date        string        `bson:"date" json:"date"`                                   // Scheduled date in "YYYY-MM-DD" format
	Time        string        `bson:"time,omitempty" json:"time,omitempty"`               // Display time string, e.g. "2:00 PM"
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`       // Display location string
	Status      SessionStatus `bson:"status" json:"status"`                               // Lifecycle state
	PackageID   string        `bson:"package_id,omitempty" json:"package_id,omitempty"`   // Selected catalog package reference
	AddOnIDs    IDList        `bson:"addon_ids,omitempty" json:"addon_ids,omitempty"`     // Selected add-on references
	QuoteAmount Money         `bson:"quote_amount,omitempty" json:"quote_amount,omitempty"` // Manually entered quote, independent of the computed total
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}

// SessionView is a Session with every optional field populated with its
// display default. Downstream presentation and document code operates on a
// view so it never has to branch on absence.
type SessionView struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	ClientPhone string        `json:"client_phone"`
	SessionType string        `json:"session_type"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Status      SessionStatus `json:"status"`
	PackageID   string        `json:"package_id"`
	AddOnIDs    IDList        `json:"addon_ids"`
	QuoteAmount float64       `json:"quote_amount"`
	Notes       string        `json:"notes"`
	CreatedAt   time.Time     `json:"created_at"`
}

// SessionRow is one row of a rendered session listing. DisplayNo is a
// positional number local to the snapshot it was rendered in; SessionID is
// the real identifier used for lookups and mutations. The two are never
// interchangeable.
type SessionRow struct {
	DisplayNo   int           `json:"display_no"`
	SessionID   string        `json:"session_id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	ClientPhone string        `json:"client_phone"`
	SessionType string        `json:"session_type"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Status      SessionStatus `json:"status"`
	QuoteAmount float64       `json:"quote_amount"`
}

// ViewSnapshot is a cached, immutable listing result. Display numbers are
// meaningful only within the snapshot that produced them.
type ViewSnapshot struct {
	SnapshotID string       `json:"snapshot_id"`
	Rows       []SessionRow `json:"rows"`
	CreatedAt  time.Time    `json:"created_at"`
}

// SessionSummary carries the derived values an operator sees when selecting
// a session: the computed total (when one is computable) and the actions
// legal in the current state.
type SessionSummary struct {
	SessionID      string   `json:"session_id"`
	Total          float64  `json:"total,omitempty"`
	PriceAvailable bool     `json:"price_available"`
	Actions        []string `json:"actions"`
}

// StatusChange is a validated request to move a session to a new status.
// The state machine produces it; the session store applies it.
type StatusChange struct {
	SessionID string        `json:"session_id"`
	From      SessionStatus `json:"from"`
	To        SessionStatus `json:"to"`
}
