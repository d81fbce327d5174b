package session

import (
	"time"

	"shutterdesk/models"
)

// GenerateDocument builds a printable document from a session and a catalog
// snapshot. Missing optional session fields degrade to placeholders and
// unresolvable catalog references are dropped; the only failure modes are a
// malformed session record or an unknown document kind.
func GenerateDocument(sess models.Session, kind models.DocumentKind, packages []models.Package, addOns []models.AddOn) (*models.Document, error) {
	if sess.ID == "" {
		return nil, ErrInvalidSession
	}
	if !kind.Valid() {
		return nil, ErrInvalidSession
	}

	view := BuildView(sess)
	items, subtotal := buildLineItems(sess, packages, addOns)

	return &models.Document{
		Kind:        kind,
		Title:       kind.Title(),
		SessionID:   view.ID,
		ClientName:  view.ClientName,
		ClientEmail: view.ClientEmail,
		ClientPhone: view.ClientPhone,
		SessionType: view.SessionType,
		Date:        view.Date,
		Time:        view.Time,
		Location:    view.Location,
		LineItems:   items,
		Subtotal:    subtotal,
		Total:       subtotal,
		Notes:       view.Notes,
		GeneratedAt: time.Now(),
	}, nil
}

// buildLineItems produces one line for the resolved package followed by one
// line per resolved add-on, in reference order, quantity 1 each. The second
// return value is the two-decimal subtotal.
func buildLineItems(sess models.Session, packages []models.Package, addOns []models.AddOn) ([]models.LineItem, float64) {
	var items []models.LineItem
	subtotal := 0.0

	if pkg, ok := ResolvePackage(packages, sess.PackageID); ok {
		price := round2(pkg.Price.Float64())
		items = append(items, models.LineItem{
			Description: pkg.Name,
			Quantity:    1,
			UnitPrice:   price,
			LineTotal:   price,
		})
		subtotal += price
	}
	for _, addon := range ResolveAddOns(addOns, sess.AddOnIDs) {
		price := round2(addon.Price.Float64())
		items = append(items, models.LineItem{
			Description: addon.Name,
			Quantity:    1,
			UnitPrice:   price,
			LineTotal:   price,
		})
		subtotal += price
	}
	return items, round2(subtotal)
}
