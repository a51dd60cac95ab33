package storage

import (
	"catconnect/pkg/domain"
	"context"
)

// UserUpdates lists the user fields to change; nil fields are left untouched.
type UserUpdates struct {
	Name          *string
	Phone         *string
	Municipality  *string
	EmailVerified *bool
	PhoneVerified *bool
	Active        *bool
}

type UserStorage interface {
	// CreateUser inserts a user. A taken email yields ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail expects an already normalized email.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// ActiveUsersByRole returns every active user holding role.
	ActiveUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
