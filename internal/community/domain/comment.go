package domain

import "time"

// Comment belongs to a post and, transitively, to that post's building.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time

	Author *Author
}
