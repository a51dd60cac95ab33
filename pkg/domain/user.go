package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical uuid representation.
func (id UserID) String() string { return uuid.UUID(id).String() }

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Role is the marketplace persona a user account acts as.
type Role string

const (
	RoleJobSeeker       Role = "job_seeker"
	RoleBusinessOwner   Role = "business_owner"
	RoleServiceProvider Role = "service_provider"
	RoleAdmin           Role = "admin"
)

// SelfServiceRoles lists the roles a user may pick when registering.
var SelfServiceRoles = []Role{RoleJobSeeker, RoleBusinessOwner, RoleServiceProvider} //nolint: gochecknoglobals

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleBusinessOwner, RoleServiceProvider, RoleAdmin:
		return true
	}

	return false
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID UserID
	Role   Role
}

// IsAdmin reports whether the principal has administrative rights.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// Anonymous reports whether the principal carries no identity.
func (p Principal) Anonymous() bool { return p.UserID == UserID{} }

// User is a registered marketplace account.
type User struct {
	ID           UserID `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Phone        string `json:"phone,omitempty"`
	Municipality string `json:"municipality,omitempty"`

	EmailVerified bool `json:"emailVerified"`
	PhoneVerified bool `json:"phoneVerified"`
	Active        bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
