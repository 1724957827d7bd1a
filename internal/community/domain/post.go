package domain

import "time"

// BoardType partitions posts within a building.
type BoardType string

const (
	BoardNotice BoardType = "notice"
	BoardShare  BoardType = "share"
	BoardFree   BoardType = "free"
)

// Valid reports whether b is a known board.
func (b BoardType) Valid() bool {
	switch b {
	case BoardNotice, BoardShare, BoardFree:
		return true
	}
	return false
}

// Post is a board entry. BuildingID is fixed at creation from the author's
// verified profile and never changes. LikesCount and CommentsCount are
// denormalized aggregates of the likes/comments tables; the interaction
// service keeps them consistent and the reconciler heals any drift.
type Post struct {
	ID            string
	BoardType     BoardType
	Title         string
	Content       string
	AuthorID      string
	BuildingID    string
	LikesCount    int64
	CommentsCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Author is a read-time projection for board rendering; not persisted
	// on the post row.
	Author *Author
}

// Author is the nickname/floor projection boards show next to content.
type Author struct {
	Nickname string
	Floor    string
}
