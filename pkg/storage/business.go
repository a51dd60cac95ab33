package storage

import (
	"catconnect/pkg/domain"
	"context"
)

// BusinessUpdates lists the business fields to change; nil fields are left untouched.
type BusinessUpdates struct {
	Name         *string
	Category     *string
	Description  *string
	Address      *string
	Municipality *string
	Phone        *string
	Email        *string
	Website      *string

	Location         *domain.Coordinates
	Status           *domain.BusinessStatus
	ModerationReason *string
}

// BusinessFilter narrows a business listing. Zero values do not filter.
type BusinessFilter struct {
	Status       domain.BusinessStatus
	Municipality string
	Category     string
	OwnerID      *domain.UserID
}

// BusinessStorage persists businesses. Soft deleted businesses are invisible
// to every method.
type BusinessStorage interface {
	// CreateBusiness inserts a business. A permit number already used by a live
	// business yields ErrDuplicate.
	CreateBusiness(ctx context.Context, business domain.Business) (*domain.Business, error)
	BusinessByID(ctx context.Context, id domain.BusinessID) (*domain.Business, error)
	BusinessByPermitNumber(ctx context.Context, permitNumber string) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, id domain.BusinessID, updates BusinessUpdates) (*domain.Business, error)
	// DeleteBusiness soft deletes the business and returns it, or nil when not found.
	DeleteBusiness(ctx context.Context, id domain.BusinessID) (*domain.Business, error)
	ListBusinesses(ctx context.Context, filter BusinessFilter, page PageQuery) (Page[domain.Business], error)
}
