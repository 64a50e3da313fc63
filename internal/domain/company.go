package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant that owns quizzes and members.
type Company struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Visible     bool
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisibleTo reports whether the company may be shown to the given user.
func (c *Company) VisibleTo(userID uuid.UUID) bool {
	return c.Visible || c.OwnerID == userID
}

// CompanyUpdateParams holds the optional fields of a company update.
type CompanyUpdateParams struct {
	Name        *string
	Description *string
	Visible     *bool
}

// CompanyMember links a user to a company with a role.
type CompanyMember struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      MemberRole
	CreatedAt time.Time
}

// MemberView is a membership row joined with the user and company it links.
type MemberView struct {
	MemberID    uuid.UUID  `db:"member_id"`
	UserID      uuid.UUID  `db:"user_id"`
	Username    string     `db:"username"`
	CompanyID   uuid.UUID  `db:"company_id"`
	CompanyName string     `db:"company_name"`
	Role        MemberRole `db:"role"`
	ActionID    *uuid.UUID `db:"action_id"`
	CreatedAt   time.Time  `db:"created_at"`
}
