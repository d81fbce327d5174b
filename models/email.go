package models

// EmailPayload is the queued payload for a client email task. When Document
// is set the worker renders it into the message body.
type EmailPayload struct {
	SessionID string    `json:"sessionId"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Document  *Document `json:"document,omitempty"`
}
