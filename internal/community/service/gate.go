package service

import (
	"context"
	"errors"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/internal/community/store"
)

var (
	// ErrNotVerified denies callers whose residency has never been approved
	// (or whose latest request is still pending/rejected).
	ErrNotVerified = errors.New("resident not verified")

	// ErrWrongBuilding denies verified callers reaching for content outside
	// their own building.
	ErrWrongBuilding = errors.New("resident belongs to a different building")
)

// residency loads the caller's profile and returns it with the building the
// caller is verified for. Every board operation goes through here: the target
// building is always derived from the profile, never from request input, so a
// crafted buildingRef cannot cross the tenancy boundary.
func residency(ctx context.Context, st store.Store, userID string) (domain.Profile, string, error) {
	p, err := st.Profiles().GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, "", ErrNotVerified
		}
		return domain.Profile{}, "", err
	}
	if !p.Verified || p.BuildingID == nil {
		return domain.Profile{}, "", ErrNotVerified
	}
	return p, *p.BuildingID, nil
}
