package session

import (
	"math"

	"shutterdesk/models"
)

// ComputeTotal sums the session's package price and the prices of its
// resolvable add-ons. A total of zero or less yields ErrNoPriceAvailable:
// in this domain zero is not a price, it means nothing is computable yet.
// Unresolvable references and malformed prices contribute nothing.
func ComputeTotal(sess models.Session, packages []models.Package, addOns []models.AddOn) (float64, error) {
	total := 0.0
	if pkg, ok := ResolvePackage(packages, sess.PackageID); ok {
		total += pkg.Price.Float64()
	}
	for _, addon := range ResolveAddOns(addOns, sess.AddOnIDs) {
		total += addon.Price.Float64()
	}
	if total <= 0 {
		return 0, ErrNoPriceAvailable
	}
	return round2(total), nil
}

// round2 rounds an amount to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
