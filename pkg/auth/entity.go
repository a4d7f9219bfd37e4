package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a system user.
// Profile fields are optional and empty when unset.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Location     string
	Bio          string
	IsActive     bool
	DateJoined   time.Time
}

// ProfileChanges carries a partial profile update; nil fields are left as is.
type ProfileChanges struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Location  *string
	Bio       *string
}

// Apply copies the non-nil fields onto u.
func (p ProfileChanges) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
}
