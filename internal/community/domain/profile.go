package domain

import "time"

// Profile is a resident's membership record. Authentication fields live with
// the identity provider; we own the residency fields (building, floor,
// verified) and nothing here ever deletes a profile.
type Profile struct {
	ID         string
	Email      string
	Nickname   string
	BuildingID *string // nil until a verification request is approved
	Floor      string
	Verified   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ResidesIn reports whether the profile is verified for the given building.
func (p *Profile) ResidesIn(buildingID string) bool {
	return p.Verified && p.BuildingID != nil && *p.BuildingID == buildingID
}
