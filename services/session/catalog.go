package session

import "shutterdesk/models"

// ResolvePackage looks up a package by identifier within a catalog snapshot.
// A miss is not an error; callers degrade to placeholder output.
func ResolvePackage(packages []models.Package, packageID string) (*models.Package, bool) {
	want := models.CanonicalID(packageID)
	if want == "" {
		return nil, false
	}
	for i := range packages {
		if models.CanonicalID(packages[i].ID) == want {
			return &packages[i], true
		}
	}
	return nil, false
}

// ResolveAddOns maps add-on references to their catalog records, preserving
// reference order. References that cannot be resolved are silently dropped.
func ResolveAddOns(addOns []models.AddOn, refs models.IDList) []models.AddOn {
	var resolved []models.AddOn
	for _, ref := range refs {
		want := models.CanonicalID(ref)
		for i := range addOns {
			if models.CanonicalID(addOns[i].ID) == want {
				resolved = append(resolved, addOns[i])
				break
			}
		}
	}
	return resolved
}
