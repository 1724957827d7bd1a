package community_test

import (
	"testing"

	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

// TestBuildingIsolation verifies residents of one building can never read or
// touch another building's boards, even with a direct post ID in hand.
func TestBuildingIsolation(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "auto")
	defer cleanup()

	alice := residentClient(t, baseURL, "user-iso-alice", "alice")
	mallory := residentClient(t, baseURL, "user-iso-mallory", "mallory")

	north := registerBuilding(t, alice, "North Tower", "10 Compass Street")
	south := registerBuilding(t, alice, "South Tower", "20 Compass Street")

	verifyResident(t, alice, nil, north.ID, "9A")
	verifyResident(t, mallory, nil, south.ID, "1B")

	post, err := alice.CreatePost(t.Context(), residentsdk.CreatePostRequest{
		BoardType: "free",
		Title:     "North residents only",
		Content:   "See you in the lobby.",
	})
	require.NoError(t, err)

	// Mallory's board listing shows only her own building, which is empty.
	posts, err := mallory.ListPosts(t.Context(), "")
	require.NoError(t, err)
	require.Empty(t, posts)

	// Direct access by ID is refused rather than hidden.
	_, err = mallory.GetPost(t.Context(), post.ID)
	assertAPIError(t, err, "wrong_building")

	_, err = mallory.CreateComment(t.Context(), post.ID, "hello from the south")
	assertAPIError(t, err, "wrong_building")

	_, err = mallory.ToggleLike(t.Context(), post.ID)
	assertAPIError(t, err, "wrong_building")

	_, err = mallory.ListComments(t.Context(), post.ID)
	assertAPIError(t, err, "wrong_building")

	// Nothing leaked through: counters are untouched.
	got, err := alice.GetPost(t.Context(), post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), got.LikesCount)
	require.Equal(t, int64(0), got.CommentsCount)
}

// TestUnverifiedAccessDenied verifies every gated content operation rejects
// callers without an approved residency.
func TestUnverifiedAccessDenied(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "manual")
	defer cleanup()

	ghost := residentClient(t, baseURL, "user-ghost", "ghost")

	_, err := ghost.ListPosts(t.Context(), "")
	assertAPIError(t, err, "not_verified")

	_, err = ghost.CreatePost(t.Context(), residentsdk.CreatePostRequest{
		BoardType: "free",
		Title:     "hello?",
		Content:   "anyone there",
	})
	assertAPIError(t, err, "not_verified")

	// The directory and the caller's own status stay open to them.
	_, err = ghost.ListBuildings(t.Context())
	require.NoError(t, err)

	status, err := ghost.GetVerificationStatus(t.Context())
	require.NoError(t, err)
	require.False(t, status.Verified)
}

// TestPendingRequestConflicts covers duplicate submission, double review, and
// resubmission after rejection.
func TestPendingRequestConflicts(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "manual")
	defer cleanup()

	admin := adminClient(t, baseURL, "user-conf-admin", "concierge")
	frank := residentClient(t, baseURL, "user-frank", "frank")

	building := registerBuilding(t, admin, "Pine Lodge", "5 Hilltop Road")

	submit := func() (residentsdk.VerificationRequestInfo, error) {
		return frank.SubmitVerificationRequest(t.Context(), residentsdk.SubmitVerificationRequest{
			BuildingID:  building.ID,
			Floor:       "4D",
			DocumentURL: "https://storage.example.com/docs/lease-frank.pdf",
		})
	}

	first, err := submit()
	require.NoError(t, err)

	// One pending request per resident.
	_, err = submit()
	assertAPIError(t, err, "conflict")

	rejected, err := admin.ReviewVerificationRequest(t.Context(), first.ID, "reject")
	require.NoError(t, err)
	require.Equal(t, "rejected", rejected.Status)

	// Decisions are final; a second review conflicts.
	_, err = admin.ReviewVerificationRequest(t.Context(), first.ID, "approve")
	assertAPIError(t, err, "conflict")

	status, err := frank.GetVerificationStatus(t.Context())
	require.NoError(t, err)
	require.False(t, status.Verified)

	// Rejection clears the way for a fresh submission.
	second, err := submit()
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	_, err = admin.ReviewVerificationRequest(t.Context(), second.ID, "approve")
	require.NoError(t, err)

	status, err = frank.GetVerificationStatus(t.Context())
	require.NoError(t, err)
	require.True(t, status.Verified)
}

// TestBuildingDirectoryConflicts verifies the create-or-register semantics of
// the directory: duplicate name and address pairs are rejected regardless of
// case.
func TestBuildingDirectoryConflicts(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "auto")
	defer cleanup()

	grace := residentClient(t, baseURL, "user-grace", "grace")

	registerBuilding(t, grace, "Ocean Breeze", "7 Shoreline Drive")

	_, err := grace.CreateBuilding(t.Context(), residentsdk.CreateBuildingRequest{
		Name:    "OCEAN BREEZE",
		Address: "7 shoreline drive",
	})
	assertAPIError(t, err, "conflict")

	// A different address is a different building.
	other, err := grace.CreateBuilding(t.Context(), residentsdk.CreateBuildingRequest{
		Name:    "Ocean Breeze",
		Address: "9 Shoreline Drive",
	})
	require.NoError(t, err)
	require.NotEmpty(t, other.ID)

	buildings, err := grace.ListBuildings(t.Context())
	require.NoError(t, err)
	require.Len(t, buildings, 2)

	// Verification against a building that doesn't exist is a 404.
	_, err = grace.SubmitVerificationRequest(t.Context(), residentsdk.SubmitVerificationRequest{
		BuildingID:  "no-such-building",
		Floor:       "1A",
		DocumentURL: "https://storage.example.com/docs/lease-grace.pdf",
	})
	assertAPIError(t, err, "not_found")
}
