package marketplace

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"catconnect/pkg/validation"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ServiceInput publishes a service offering.
type ServiceInput struct {
	Title        string `json:"title"        validate:"required,max=160"`
	Description  string `json:"description"  validate:"required,max=4000"`
	Category     string `json:"category"     validate:"required,max=80"`
	Rate         int    `json:"rate"         validate:"gte=0"`
	RateUnit     string `json:"rateUnit"     validate:"omitempty,oneof=hour day job month"`
	Municipality string `json:"municipality" validate:"required,municipality"`
}

// ServiceUpdate lists the offering fields a provider may change.
type ServiceUpdate struct {
	Title        *string `json:"title"        validate:"omitempty,min=1,max=160"`
	Description  *string `json:"description"  validate:"omitempty,min=1,max=4000"`
	Category     *string `json:"category"     validate:"omitempty,min=1,max=80"`
	Rate         *int    `json:"rate"         validate:"omitempty,gte=0"`
	RateUnit     *string `json:"rateUnit"     validate:"omitempty,oneof=hour day job month"`
	Municipality *string `json:"municipality" validate:"omitempty,municipality"`
}

// ServiceFilter narrows a service listing.
type ServiceFilter struct {
	ProviderID   *domain.UserID
	Category     string
	Municipality string
}

// ServiceService manages the offerings of service providers.
type ServiceService struct {
	*base
}

// Create publishes an active offering of p.
func (s *ServiceService) Create(ctx context.Context, p domain.Principal, in ServiceInput) (*domain.Service, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if p.Role != domain.RoleServiceProvider && !p.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only service providers can offer services")
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	municipality, _ := domain.CanonicalMunicipality(in.Municipality)
	service, err := s.storage.CreateService(ctx, domain.Service{
		ProviderID:   p.UserID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Category:     strings.TrimSpace(in.Category),
		Rate:         in.Rate,
		RateUnit:     in.RateUnit,
		Municipality: municipality,
		Active:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	logger.Info(ctx, "service created", zap.Stringer("serviceID", service.ID), zap.Stringer("providerID", p.UserID))

	return service, nil
}

// Get returns an offering. Inactive offerings are only visible to their
// provider and admins.
func (s *ServiceService) Get(ctx context.Context, p domain.Principal, id domain.ServiceID) (*domain.Service, error) {
	service, err := s.storage.ServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get service: %w", err)
	}
	if service == nil || (!service.Active && !canManage(p, service.ProviderID)) {
		return nil, serrors.With(serrors.ErrNotFound, "service not found")
	}

	return service, nil
}

// List returns a page of offerings, newest first. Providers listing their
// own offerings also see inactive ones.
func (s *ServiceService) List(ctx context.Context,
	p domain.Principal,
	filter ServiceFilter,
	page PageRequest) (storage.Page[domain.Service], error) {
	q, err := s.pageQuery(page)
	if err != nil {
		return storage.Page[domain.Service]{}, err
	}

	f := storage.ServiceFilter{
		ProviderID: filter.ProviderID,
		Category:   strings.TrimSpace(filter.Category),
		ActiveOnly: filter.ProviderID == nil || !canManage(p, *filter.ProviderID),
	}
	if filter.Municipality != "" {
		m, ok := domain.CanonicalMunicipality(filter.Municipality)
		if !ok {
			return storage.Page[domain.Service]{}, serrors.With(serrors.ErrBadRequest,
				"%q is not a municipality of Catanduanes", filter.Municipality)
		}
		f.Municipality = m
	}

	result, err := s.storage.ListServices(ctx, f, q)
	if err != nil {
		return result, fmt.Errorf("could not list services: %w", err)
	}

	return result, nil
}

// Update changes an offering of p.
func (s *ServiceService) Update(ctx context.Context,
	p domain.Principal,
	id domain.ServiceID,
	in ServiceUpdate) (*domain.Service, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if _, err := s.managed(ctx, p, id); err != nil {
		return nil, err
	}

	updates := storage.ServiceUpdates{
		Title:       trimmed(in.Title),
		Description: in.Description,
		Category:    trimmed(in.Category),
		Rate:        in.Rate,
		RateUnit:    in.RateUnit,
	}
	if in.Municipality != nil {
		m, _ := domain.CanonicalMunicipality(*in.Municipality)
		updates.Municipality = &m
	}

	return s.update(ctx, id, updates)
}

// SetActive publishes or hides an offering of p.
func (s *ServiceService) SetActive(ctx context.Context,
	p domain.Principal,
	id domain.ServiceID,
	active bool) (*domain.Service, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}

	service, err := s.managed(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if service.Active == active {
		return service, nil
	}

	return s.update(ctx, id, storage.ServiceUpdates{Active: &active})
}

func (s *ServiceService) managed(ctx context.Context, p domain.Principal, id domain.ServiceID) (*domain.Service, error) {
	service, err := s.storage.ServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get service: %w", err)
	}
	if service == nil {
		return nil, serrors.With(serrors.ErrNotFound, "service not found")
	}
	if !canManage(p, service.ProviderID) {
		return nil, serrors.With(serrors.ErrForbidden, "only the provider can change this service")
	}

	return service, nil
}

func (s *ServiceService) update(ctx context.Context,
	id domain.ServiceID,
	updates storage.ServiceUpdates) (*domain.Service, error) {
	service, err := s.storage.UpdateService(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update service: %w", err)
	}
	if service == nil {
		return nil, serrors.With(serrors.ErrNotFound, "service not found")
	}

	return service, nil
}
