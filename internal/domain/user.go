package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserBrief is the public projection of a user shown in membership lists.
type UserBrief struct {
	ID       uuid.UUID `db:"id"`
	Username string    `db:"username"`
}

// Page describes limit/offset pagination.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page into [1, max] with a default when unset.
func (p Page) Normalize(def, max int) Page {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
