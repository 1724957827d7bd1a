package community_test

import (
	"testing"

	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

// TestResidencyFlowManualApproval walks the full resident journey under the
// manual approval policy: register a building, submit proof, wait in the
// review queue, get approved, then post, comment, and like on the building
// boards.
func TestResidencyFlowManualApproval(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "manual")
	defer cleanup()

	admin := adminClient(t, baseURL, "user-admin", "concierge")
	alice := residentClient(t, baseURL, "user-alice", "alice")
	bob := residentClient(t, baseURL, "user-bob", "bob")

	building := registerBuilding(t, admin, "Sunrise Tower", "1 Example Street")

	// Alice submits proof of residency and lands in the pending queue.
	vr, err := alice.SubmitVerificationRequest(t.Context(), residentsdk.SubmitVerificationRequest{
		BuildingID:  building.ID,
		Floor:       "12A",
		DocumentURL: "https://storage.example.com/docs/lease-alice.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", vr.Status)

	status, err := alice.GetVerificationStatus(t.Context())
	require.NoError(t, err)
	require.False(t, status.Verified)
	require.NotNil(t, status.PendingRequest)
	require.Equal(t, vr.ID, status.PendingRequest.ID)

	// The queue shows her request to the administrator.
	queue, err := admin.ListPendingVerificationRequests(t.Context())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, "user-alice", queue[0].UserID)

	reviewed, err := admin.ReviewVerificationRequest(t.Context(), vr.ID, "approve")
	require.NoError(t, err)
	require.Equal(t, "approved", reviewed.Status)
	require.NotEmpty(t, reviewed.ReviewedAt)

	status, err = alice.GetVerificationStatus(t.Context())
	require.NoError(t, err)
	require.True(t, status.Verified)
	require.Equal(t, building.ID, status.BuildingID)
	require.Equal(t, "12A", status.Floor)
	require.Nil(t, status.PendingRequest)

	// The profile reflects the approved residency.
	profile, err := alice.GetProfile(t.Context())
	require.NoError(t, err)
	require.True(t, profile.Verified)
	require.Equal(t, building.ID, profile.BuildingID)
	require.Equal(t, "12A", profile.Floor)

	// Alice posts on the free board. The building comes from her profile.
	post, err := alice.CreatePost(t.Context(), residentsdk.CreatePostRequest{
		BoardType: "free",
		Title:     "Rooftop BBQ this Saturday",
		Content:   "Bring your own snags.",
	})
	require.NoError(t, err)
	require.Equal(t, building.ID, post.BuildingID)
	require.Equal(t, int64(0), post.LikesCount)
	require.Equal(t, int64(0), post.CommentsCount)
	require.NotNil(t, post.Author)
	require.Equal(t, "alice", post.Author.Nickname)
	require.Equal(t, "12A", post.Author.Floor)

	// Bob verifies into the same building and joins the conversation.
	verifyResident(t, bob, admin, building.ID, "5B")

	comment, err := bob.CreateComment(t.Context(), post.ID, "Count me in!")
	require.NoError(t, err)
	require.Equal(t, post.ID, comment.PostID)
	require.NotNil(t, comment.Author)
	require.Equal(t, "bob", comment.Author.Nickname)

	like, err := bob.ToggleLike(t.Context(), post.ID)
	require.NoError(t, err)
	require.True(t, like.Liked)
	require.Equal(t, int64(1), like.LikesCount)

	// Counters are visible on the post itself, along with bob's like state.
	got, err := bob.GetPost(t.Context(), post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.LikesCount)
	require.Equal(t, int64(1), got.CommentsCount)
	require.True(t, got.Liked)

	// Alice hasn't liked her own post.
	got, err = alice.GetPost(t.Context(), post.ID)
	require.NoError(t, err)
	require.False(t, got.Liked)

	// Toggling again withdraws the like.
	like, err = bob.ToggleLike(t.Context(), post.ID)
	require.NoError(t, err)
	require.False(t, like.Liked)
	require.Equal(t, int64(0), like.LikesCount)

	comments, err := alice.ListComments(t.Context(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "Count me in!", comments[0].Content)
}

// TestResidencyFlowAutoApproval verifies the auto policy approves submissions
// in the same request, with no administrator involved.
func TestResidencyFlowAutoApproval(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "auto")
	defer cleanup()

	carol := residentClient(t, baseURL, "user-carol", "carol")

	building := registerBuilding(t, carol, "Harbour View", "2 Wharf Road")

	vr, err := carol.SubmitVerificationRequest(t.Context(), residentsdk.SubmitVerificationRequest{
		BuildingID:  building.ID,
		Floor:       "3C",
		DocumentURL: "https://storage.example.com/docs/lease-carol.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, "approved", vr.Status)
	require.NotEmpty(t, vr.ReviewedAt)

	status, err := carol.GetVerificationStatus(t.Context())
	require.NoError(t, err)
	require.True(t, status.Verified)
	require.Equal(t, building.ID, status.BuildingID)

	// Gated operations open up immediately.
	post, err := carol.CreatePost(t.Context(), residentsdk.CreatePostRequest{
		BoardType: "notice",
		Title:     "Water outage Tuesday",
		Content:   "Plumbing maintenance from 9am to noon.",
	})
	require.NoError(t, err)
	require.Equal(t, building.ID, post.BuildingID)
}

// TestProfileNicknameUpdate checks the mutable profile fields round-trip and
// flow through to post author projections.
func TestProfileNicknameUpdate(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "auto")
	defer cleanup()

	dave := residentClient(t, baseURL, "user-dave", "dave")
	building := registerBuilding(t, dave, "Cedar Court", "3 Garden Lane")
	verifyResident(t, dave, nil, building.ID, "7F")

	updated, err := dave.UpdateProfile(t.Context(), residentsdk.UpdateProfileRequest{
		Nickname: "davetheplumber",
	})
	require.NoError(t, err)
	require.Equal(t, "davetheplumber", updated.Nickname)

	post, err := dave.CreatePost(t.Context(), residentsdk.CreatePostRequest{
		BoardType: "share",
		Title:     "Spare ladder to lend",
		Content:   "Knock on 7F.",
	})
	require.NoError(t, err)
	require.NotNil(t, post.Author)
	require.Equal(t, "davetheplumber", post.Author.Nickname)
}

// TestBoardFilterAndOrdering verifies board type filtering and the newest
// first listing order.
func TestBoardFilterAndOrdering(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "auto")
	defer cleanup()

	erin := residentClient(t, baseURL, "user-erin", "erin")
	building := registerBuilding(t, erin, "Maple House", "4 Forest Way")
	verifyResident(t, erin, nil, building.ID, "2B")

	for _, p := range []struct{ board, title string }{
		{"notice", "Fire drill"},
		{"share", "Free couch"},
		{"free", "Anyone play chess?"},
	} {
		_, err := erin.CreatePost(t.Context(), residentsdk.CreatePostRequest{
			BoardType: p.board,
			Title:     p.title,
			Content:   "details inside",
		})
		require.NoError(t, err)
	}

	all, err := erin.ListPosts(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Anyone play chess?", all[0].Title, "listing should be newest first")

	notices, err := erin.ListPosts(t.Context(), "notice")
	require.NoError(t, err)
	require.Len(t, notices, 1)
	require.Equal(t, "Fire drill", notices[0].Title)

	_, err = erin.ListPosts(t.Context(), "bogus-board")
	assertAPIError(t, err, "invalid_request")
}
