package community_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint works without a token.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "manual")
	defer cleanup()

	client := residentsdk.NewClient(baseURL, "")

	health, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}

// TestReadyzEndpoint verifies readiness reports healthy dependencies.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "manual")
	defer cleanup()

	resp, err := http.Get(baseURL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health residentsdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Keys)
}

// TestAuthRequired verifies every v1 route rejects missing tokens.
func TestAuthRequired(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "manual")
	defer cleanup()

	anonymous := residentsdk.NewClient(baseURL, "")

	_, err := anonymous.ListBuildings(t.Context())
	assertAPIError(t, err, "invalid_token")

	_, err = anonymous.GetProfile(t.Context())
	assertAPIError(t, err, "invalid_token")

	_, err = anonymous.ListPosts(t.Context(), "")
	assertAPIError(t, err, "invalid_token")
}

// TestAdminScopeRequired verifies the review queue is closed to residents
// holding only read/write scopes.
func TestAdminScopeRequired(t *testing.T) {
	baseURL, cleanup := setupCommunityContainer(t, "manual")
	defer cleanup()

	resident := residentClient(t, baseURL, "user-scope-1", "scopetester")

	_, err := resident.ListPendingVerificationRequests(t.Context())
	assertAPIError(t, err, "insufficient_scope")

	_, err = resident.ReviewVerificationRequest(t.Context(), "any-id", "approve")
	assertAPIError(t, err, "insufficient_scope")
}
