package residentsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a typed HTTP client for the community service. The zero value is
// not usable; construct it with NewClient. The access token comes from the
// identity provider and is sent verbatim on every request.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient builds a Client against the given base URL (no trailing slash).
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithToken returns a shallow copy of the client using a different token.
// Useful in tests that act as several residents against one service.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

// ============================================================================
// Health
// ============================================================================

// GetLiveness calls GET /livez.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
	return out, err
}

// ============================================================================
// Building directory
// ============================================================================

// ListBuildings calls GET /v1/buildings.
func (c *Client) ListBuildings(ctx context.Context) ([]BuildingInfo, error) {
	var out ListBuildingsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/buildings", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Buildings, nil
}

// CreateBuilding calls POST /v1/buildings.
func (c *Client) CreateBuilding(ctx context.Context, req CreateBuildingRequest) (BuildingInfo, error) {
	var out BuildingInfo
	err := c.do(ctx, http.MethodPost, "/v1/buildings", req, &out, http.StatusCreated)
	return out, err
}

// ============================================================================
// Verification workflow
// ============================================================================

// SubmitVerificationRequest calls POST /v1/verification/requests.
func (c *Client) SubmitVerificationRequest(ctx context.Context, req SubmitVerificationRequest) (VerificationRequestInfo, error) {
	var out VerificationRequestInfo
	err := c.do(ctx, http.MethodPost, "/v1/verification/requests", req, &out, http.StatusCreated)
	return out, err
}

// GetVerificationStatus calls GET /v1/verification/status.
func (c *Client) GetVerificationStatus(ctx context.Context) (VerificationStatusResponse, error) {
	var out VerificationStatusResponse
	err := c.do(ctx, http.MethodGet, "/v1/verification/status", nil, &out, http.StatusOK)
	return out, err
}

// ListPendingVerificationRequests calls GET /v1/verification/requests.
// Requires the community:admin scope.
func (c *Client) ListPendingVerificationRequests(ctx context.Context) ([]VerificationRequestInfo, error) {
	var out ListVerificationRequestsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/verification/requests", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

// ReviewVerificationRequest calls POST /v1/verification/requests/{id}/review.
// Requires the community:admin scope.
func (c *Client) ReviewVerificationRequest(ctx context.Context, requestID, decision string) (VerificationRequestInfo, error) {
	var out VerificationRequestInfo
	path := "/v1/verification/requests/" + url.PathEscape(requestID) + "/review"
	err := c.do(ctx, http.MethodPost, path, ReviewVerificationRequest{Decision: decision}, &out, http.StatusOK)
	return out, err
}

// ============================================================================
// Profile
// ============================================================================

// GetProfile calls GET /v1/profile.
func (c *Client) GetProfile(ctx context.Context) (ProfileResponse, error) {
	var out ProfileResponse
	err := c.do(ctx, http.MethodGet, "/v1/profile", nil, &out, http.StatusOK)
	return out, err
}

// UpdateProfile calls PATCH /v1/profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error) {
	var out ProfileResponse
	err := c.do(ctx, http.MethodPatch, "/v1/profile", req, &out, http.StatusOK)
	return out, err
}

// ============================================================================
// Boards
// ============================================================================

// CreatePost calls POST /v1/posts.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (PostInfo, error) {
	var out PostInfo
	err := c.do(ctx, http.MethodPost, "/v1/posts", req, &out, http.StatusCreated)
	return out, err
}

// ListPosts calls GET /v1/posts?board=<boardType>. An empty boardType lists
// every board of the caller's building.
func (c *Client) ListPosts(ctx context.Context, boardType string) ([]PostInfo, error) {
	path := "/v1/posts"
	if boardType != "" {
		path += "?board=" + url.QueryEscape(boardType)
	}
	var out ListPostsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// GetPost calls GET /v1/posts/{id}.
func (c *Client) GetPost(ctx context.Context, postID string) (PostInfo, error) {
	var out PostInfo
	err := c.do(ctx, http.MethodGet, "/v1/posts/"+url.PathEscape(postID), nil, &out, http.StatusOK)
	return out, err
}

// ListComments calls GET /v1/posts/{id}/comments.
func (c *Client) ListComments(ctx context.Context, postID string) ([]CommentInfo, error) {
	var out ListCommentsResponse
	path := "/v1/posts/" + url.PathEscape(postID) + "/comments"
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// CreateComment calls POST /v1/posts/{id}/comments.
func (c *Client) CreateComment(ctx context.Context, postID, content string) (CommentInfo, error) {
	var out CommentInfo
	path := "/v1/posts/" + url.PathEscape(postID) + "/comments"
	err := c.do(ctx, http.MethodPost, path, CreateCommentRequest{Content: content}, &out, http.StatusCreated)
	return out, err
}

// ToggleLike calls POST /v1/posts/{id}/like.
func (c *Client) ToggleLike(ctx context.Context, postID string) (ToggleLikeResponse, error) {
	var out ToggleLikeResponse
	path := "/v1/posts/" + url.PathEscape(postID) + "/like"
	err := c.do(ctx, http.MethodPost, path, nil, &out, http.StatusOK)
	return out, err
}

// ============================================================================
// Plumbing
// ============================================================================

// do performs one request/response cycle: marshal the body if present, attach
// the bearer token, and decode either the success payload or an *APIError.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	target any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
