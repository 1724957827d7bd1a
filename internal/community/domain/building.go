package domain

import "time"

// Building is a directory entry. Buildings are created on first registration
// and never deleted or merged.
type Building struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
