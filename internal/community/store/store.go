package store

import (
	"context"
	"errors"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. We can change having the sub-repos as methods later but we do it
// now so we can have more control and actively stop people from accidently
// doing transactions within transactions.
type Store interface {
	Profiles() Profiles
	Buildings() Buildings
	VerificationRequests() VerificationRequests
	Posts() Posts
	Comments() Comments
	Likes() Likes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., an approval
	// flipping both the request row and the profile row).
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	// GetProfileByID returns a resident's membership profile.
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// CreateProfile inserts a new profile (id comes from the identity
	// provider's subject claim, not a fresh ULID).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// UpdateNickname mutates the nickname and bumps updated_at.
	UpdateNickname(ctx context.Context, userID string, nickname string) error

	// SetResidency sets building/floor/verified in one statement. Used by
	// the approval transition inside its transaction.
	SetResidency(ctx context.Context, userID string, buildingID string, floor string, verified bool) error
}

type Buildings interface {
	// ListBuildings returns the whole directory ordered by name.
	ListBuildings(ctx context.Context) ([]domain.Building, error)

	// GetBuildingByID fetches a single directory entry.
	GetBuildingByID(ctx context.Context, id string) (domain.Building, error)

	// CreateBuilding inserts a directory entry. Returns ErrAlreadyExists
	// when a building with the same name and address (case-insensitive)
	// is already registered.
	CreateBuilding(ctx context.Context, b domain.Building) error
}

type VerificationRequests interface {
	// CreateVerificationRequest inserts a new workflow instance. Returns
	// ErrAlreadyExists when the user already has a pending request (partial
	// unique index on user_id WHERE status='pending').
	CreateVerificationRequest(ctx context.Context, vr domain.VerificationRequest) error

	// GetVerificationRequestByID fetches a single request.
	GetVerificationRequestByID(ctx context.Context, id string) (domain.VerificationRequest, error)

	// GetPendingByUserID returns the user's pending request, if any.
	GetPendingByUserID(ctx context.Context, userID string) (domain.VerificationRequest, error)

	// ListByStatus returns requests in a given state, oldest first (the
	// admin review queue).
	ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.VerificationRequest, error)

	// MarkReviewed transitions a request out of pending. The UPDATE is
	// guarded by status='pending'; it returns ErrNotFound when no pending
	// row matched, so callers can distinguish a lost race from a missing id.
	MarkReviewed(ctx context.Context, id string, status domain.VerificationStatus, reviewedAt time.Time) error
}

type Posts interface {
	// CreatePost inserts a post with zeroed counters.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID fetches a post with its author projection.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPostsByBuilding returns a building's posts newest first,
	// optionally filtered to one board.
	ListPostsByBuilding(ctx context.Context, buildingID string, board domain.BoardType) ([]domain.Post, error)

	// AdjustLikesCount atomically applies likes_count = max(likes_count+delta, 0)
	// on the post row. Must run inside the same transaction as the Like
	// row change so the counter can never drift from its source set.
	AdjustLikesCount(ctx context.Context, postID string, delta int64) error

	// AdjustCommentsCount is the comments_count analogue of AdjustLikesCount.
	AdjustCommentsCount(ctx context.Context, postID string, delta int64) error

	// ListCounterDrift reports posts whose stored counters differ from the
	// cardinality of their like/comment sets, with the recomputed values.
	ListCounterDrift(ctx context.Context) ([]CounterDrift, error)

	// SetCounters overwrites both counters. Only the reconciler calls this.
	SetCounters(ctx context.Context, postID string, likes, comments int64) error
}

// CounterDrift is one reconciliation finding: a post whose cached counters
// disagree with the authoritative like/comment sets.
type CounterDrift struct {
	PostID         string
	StoredLikes    int64
	ActualLikes    int64
	StoredComments int64
	ActualComments int64
}

type Comments interface {
	// CreateComment inserts a comment. The caller adjusts the post counter
	// in the same transaction.
	CreateComment(ctx context.Context, c domain.Comment) error

	// ListCommentsByPost returns a post's comments oldest first with author
	// projections.
	ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error)

	// CountByPost returns the authoritative comment cardinality for a post.
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type Likes interface {
	// CreateLike inserts a like. Returns ErrAlreadyExists when the
	// (post_id, user_id) unique index rejects a duplicate.
	CreateLike(ctx context.Context, l domain.Like) error

	// DeleteLike removes the caller's like. Returns ErrNotFound when there
	// was nothing to remove.
	DeleteLike(ctx context.Context, postID, userID string) error

	// HasLiked reports whether the user currently likes the post.
	HasLiked(ctx context.Context, postID, userID string) (bool, error)

	// CountByPost returns the authoritative like cardinality for a post.
	CountByPost(ctx context.Context, postID string) (int64, error)
}
