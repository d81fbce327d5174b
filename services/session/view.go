package session

import "shutterdesk/models"

// Display defaults for absent optional fields. Contact fields fall back to
// "N/A"; schedule fields fall back to "TBD".
const (
	PlaceholderNA  = "N/A"
	PlaceholderTBD = "TBD"
)

// BuildView returns a fully-populated view of a session: every optional
// field is filled with its display default exactly once, so downstream
// presentation and document code never branches on absence.
func BuildView(sess models.Session) models.SessionView {
	return models.SessionView{
		ID:          sess.ID,
		ClientName:  orDefault(sess.ClientName, PlaceholderNA),
		ClientEmail: orDefault(sess.ClientEmail, PlaceholderNA),
		ClientPhone: orDefault(sess.ClientPhone, PlaceholderNA),
		SessionType: orDefault(sess.SessionType, PlaceholderNA),
		Date:        orDefault(sess.Date, PlaceholderTBD),
		Time:        orDefault(sess.Time, PlaceholderTBD),
		Location:    orDefault(sess.Location, PlaceholderTBD),
		Status:      sess.Status,
		PackageID:   sess.PackageID,
		AddOnIDs:    sess.AddOnIDs,
		QuoteAmount: sess.QuoteAmount.Float64(),
		Notes:       sess.Notes,
		CreatedAt:   sess.CreatedAt,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
