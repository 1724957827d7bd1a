package domain

import "time"

// Like records one user's like on one post. The store enforces uniqueness on
// (PostID, UserID); a like is deleted on unlike rather than soft-removed.
type Like struct {
	ID        string
	PostID    string
	UserID    string
	CreatedAt time.Time
}
