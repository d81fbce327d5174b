package models

import "time"

// ShootRequest is the command payload sent to the portfolio service when an
// operator generates a shoot from a booked session.
type ShootRequest struct {
	SessionID    string   `json:"session_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Date         string   `json:"date"`
	ClientEmails []string `json:"client_emails"` // Emails authorized to view the shoot
}

// Shoot is a portfolio record created from a booked session.
type Shoot struct {
	ID           string    `bson:"id" json:"id"`
	SessionID    string    `bson:"session_id" json:"session_id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Category     string    `bson:"category" json:"category"`
	Date         string    `bson:"date" json:"date"`
	ClientEmails []string  `bson:"client_emails" json:"client_emails"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
