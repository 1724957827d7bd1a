package residentsdk

// ============================================================================
// Health types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"` // "ok" | "degraded"
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}

// ============================================================================
// Building directory types
// ============================================================================

// BuildingInfo is a building directory entry.
type BuildingInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"` // RFC3339
}

// CreateBuildingRequest registers a new building in the directory.
type CreateBuildingRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ListBuildingsResponse wraps the directory listing, ordered by name.
type ListBuildingsResponse struct {
	Buildings []BuildingInfo `json:"buildings"`
}

// ============================================================================
// Verification workflow types
// ============================================================================

// SubmitVerificationRequest asserts the caller's residency at a building.
// DocumentURL is an opaque reference into object storage; the service stores
// it without interpreting it.
type SubmitVerificationRequest struct {
	BuildingID  string `json:"building_id"`
	Floor       string `json:"floor"`
	DocumentURL string `json:"document_url"`
}

// VerificationRequestInfo is one workflow instance.
type VerificationRequestInfo struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	BuildingID string `json:"building_id"`
	Floor      string `json:"floor"`
	Status     string `json:"status"` // "pending" | "approved" | "rejected"
	CreatedAt  string `json:"created_at"`
	ReviewedAt string `json:"reviewed_at,omitempty"`
}

// VerificationStatusResponse is the read-only projection clients render
// pending/approved banners from.
type VerificationStatusResponse struct {
	Verified       bool                     `json:"verified"`
	BuildingID     string                   `json:"building_id,omitempty"`
	Floor          string                   `json:"floor,omitempty"`
	PendingRequest *VerificationRequestInfo `json:"pending_request,omitempty"`
}

// ReviewVerificationRequest carries an administrator's decision.
type ReviewVerificationRequest struct {
	Decision string `json:"decision"` // "approve" | "reject"
}

// ListVerificationRequestsResponse is the admin review queue.
type ListVerificationRequestsResponse struct {
	Requests []VerificationRequestInfo `json:"requests"`
}

// ============================================================================
// Profile types
// ============================================================================

// ProfileResponse is the caller's own membership profile.
type ProfileResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Nickname   string `json:"nickname"`
	BuildingID string `json:"building_id,omitempty"`
	Floor      string `json:"floor,omitempty"`
	Verified   bool   `json:"verified"`
	CreatedAt  string `json:"created_at"`
}

// UpdateProfileRequest changes mutable profile fields.
type UpdateProfileRequest struct {
	Nickname string `json:"nickname"`
}

// ============================================================================
// Board types
// ============================================================================

// AuthorInfo is the projection of a post or comment author shown on boards.
type AuthorInfo struct {
	Nickname string `json:"nickname"`
	Floor    string `json:"floor"`
}

// CreatePostRequest creates a post on one of the caller's building boards.
type CreatePostRequest struct {
	BoardType string `json:"board_type"` // "notice" | "share" | "free"
	Title     string `json:"title"`
	Content   string `json:"content"`
}

// PostInfo is a board post with its denormalized interaction counters.
type PostInfo struct {
	ID            string      `json:"id"`
	BoardType     string      `json:"board_type"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	AuthorID      string      `json:"author_id"`
	BuildingID    string      `json:"building_id"`
	LikesCount    int64       `json:"likes_count"`
	CommentsCount int64       `json:"comments_count"`
	Liked         bool        `json:"liked"` // whether the caller has liked this post
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
	Author        *AuthorInfo `json:"author,omitempty"`
}

// ListPostsResponse wraps a board listing, newest first.
type ListPostsResponse struct {
	Posts []PostInfo `json:"posts"`
}

// CreateCommentRequest adds a comment to a post.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CommentInfo is a single comment.
type CommentInfo struct {
	ID        string      `json:"id"`
	PostID    string      `json:"post_id"`
	AuthorID  string      `json:"author_id"`
	Content   string      `json:"content"`
	CreatedAt string      `json:"created_at"`
	Author    *AuthorInfo `json:"author,omitempty"`
}

// ListCommentsResponse wraps a post's comments, oldest first.
type ListCommentsResponse struct {
	Comments []CommentInfo `json:"comments"`
}

// ToggleLikeResponse reports the like state after a toggle.
type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
