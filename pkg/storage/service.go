package storage

import (
	"catconnect/pkg/domain"
	"context"
)

// ServiceUpdates lists the service fields to change; nil fields are left untouched.
type ServiceUpdates struct {
	Title        *string
	Description  *string
	Category     *string
	Rate         *int
	RateUnit     *string
	Municipality *string
	Active       *bool
}

// ServiceFilter narrows a service listing. Zero values do not filter.
type ServiceFilter struct {
	ProviderID   *domain.UserID
	Category     string
	Municipality string
	ActiveOnly   bool
}

type ServiceStorage interface {
	CreateService(ctx context.Context, service domain.Service) (*domain.Service, error)
	ServiceByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error)
	UpdateService(ctx context.Context, id domain.ServiceID, updates ServiceUpdates) (*domain.Service, error)
	ListServices(ctx context.Context, filter ServiceFilter, page PageQuery) (Page[domain.Service], error)
}
