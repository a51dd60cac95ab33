package marketplace

import (
	"catconnect/internal/tasks"
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

// BusinessInput registers a business.
type BusinessInput struct {
	Name         string `json:"name"         validate:"required,max=160"`
	Category     string `json:"category"     validate:"required,max=80"`
	Description  string `json:"description"  validate:"max=4000"`
	PermitNumber string `json:"permitNumber" validate:"required,max=64"`
	Address      string `json:"address"      validate:"required,max=255"`
	Municipality string `json:"municipality" validate:"required,municipality"`
	Phone        string `json:"phone"        validate:"omitempty,max=32"`
	Email        string `json:"email"        validate:"omitempty,email,max=254"`
	Website      string `json:"website"      validate:"omitempty,url,max=255"`
}

// BusinessUpdate lists the business fields an owner may change.
type BusinessUpdate struct {
	Name         *string `json:"name"         validate:"omitempty,min=1,max=160"`
	Category     *string `json:"category"     validate:"omitempty,min=1,max=80"`
	Description  *string `json:"description"  validate:"omitempty,max=4000"`
	Address      *string `json:"address"      validate:"omitempty,min=1,max=255"`
	Municipality *string `json:"municipality" validate:"omitempty,municipality"`
	Phone        *string `json:"phone"        validate:"omitempty,max=32"`
	Email        *string `json:"email"        validate:"omitempty,email,max=254"`
	Website      *string `json:"website"      validate:"omitempty,url,max=255"`
}

// BusinessFilter narrows a business listing.
type BusinessFilter struct {
	Municipality string
	Category     string
	OwnerID      *domain.UserID
	// Status is honoured for admins and owners listing their own businesses;
	// everybody else only sees approved businesses.
	Status domain.BusinessStatus
}

// Moderation is an admin decision on a pending business.
type Moderation struct {
	Status domain.BusinessStatus `json:"status" validate:"required,oneof=approved rejected"`
	Reason string                `json:"reason" validate:"required_if=Status rejected,max=500"`
}

// BusinessService manages business listings and their moderation.
type BusinessService struct {
	*base
}

// Register creates a pending business owned by p, queues its geocoding and
// tells the admins there is something to review.
func (s *BusinessService) Register(ctx context.Context, p domain.Principal, in BusinessInput) (*domain.Business, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if p.Role != domain.RoleBusinessOwner && !p.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only business owners can register a business")
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	business := domain.Business{
		OwnerID:      p.UserID,
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		Description:  in.Description,
		PermitNumber: strings.ToUpper(strings.TrimSpace(in.PermitNumber)),
		Address:      strings.TrimSpace(in.Address),
		Website:      in.Website,
		Status:       domain.BusinessStatusPending,
	}
	business.Municipality, _ = domain.CanonicalMunicipality(in.Municipality)

	var err error
	if in.Phone != "" {
		if business.Phone, err = NormalizePhone(in.Phone); err != nil {
			return nil, err
		}
	}
	if in.Email != "" {
		if business.Email, err = NormalizeEmail(in.Email); err != nil {
			return nil, err
		}
	}

	existing, err := s.storage.BusinessByPermitNumber(ctx, business.PermitNumber)
	if err != nil {
		return nil, fmt.Errorf("could not get business by permit number: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "permit number is already registered")
	}

	created, err := s.storage.CreateBusiness(ctx, business)
	if err != nil {
		return nil, duplicate(fmt.Errorf("could not create business: %w", err), "permit number is already registered")
	}

	ctx = logger.WithFields(ctx, zap.Stringer("businessID", created.ID))
	logger.Info(ctx, "business registered", zap.Stringer("ownerID", p.UserID))

	s.dispatch(ctx, tasks.GeocodeBusinessArgs{BusinessID: created.ID})
	s.notifyAdmins(ctx, domain.Notification{
		Type:    domain.NotificationTypeBusinessPending,
		Title:   "Business awaiting review",
		Message: fmt.Sprintf("%s (%s) was registered and needs moderation.", created.Name, created.Municipality),
		Link:    "/admin/businesses/pending",
	})

	return created, nil
}

// Get returns a business with its rating summary. Businesses that are not
// approved are only visible to their owner and admins.
func (s *BusinessService) Get(ctx context.Context, p domain.Principal, id domain.BusinessID) (*domain.Business, error) {
	business, err := s.visible(ctx, p, id)
	if err != nil {
		return nil, err
	}

	summary, err := s.storage.RatingSummary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get rating summary: %w", err)
	}
	business.Rating = &summary

	return business, nil
}

// List returns a page of businesses, newest first.
func (s *BusinessService) List(ctx context.Context,
	p domain.Principal,
	filter BusinessFilter,
	page PageRequest) (storage.Page[domain.Business], error) {
	q, err := s.pageQuery(page)
	if err != nil {
		return storage.Page[domain.Business]{}, err
	}

	f := storage.BusinessFilter{
		Status:   domain.BusinessStatusApproved,
		Category: strings.TrimSpace(filter.Category),
		OwnerID:  filter.OwnerID,
	}
	if filter.Municipality != "" {
		m, ok := domain.CanonicalMunicipality(filter.Municipality)
		if !ok {
			return storage.Page[domain.Business]{}, serrors.With(serrors.ErrBadRequest,
				"%q is not a municipality of Catanduanes", filter.Municipality)
		}
		f.Municipality = m
	}
	if p.IsAdmin() || (filter.OwnerID != nil && *filter.OwnerID == p.UserID && !p.Anonymous()) {
		f.Status = filter.Status
	}

	result, err := s.storage.ListBusinesses(ctx, f, q)
	if err != nil {
		return result, fmt.Errorf("could not list businesses: %w", err)
	}

	return result, nil
}

// Update changes a business. A new address is geocoded again.
func (s *BusinessService) Update(ctx context.Context,
	p domain.Principal,
	id domain.BusinessID,
	in BusinessUpdate) (*domain.Business, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	current, err := s.managed(ctx, p, id)
	if err != nil {
		return nil, err
	}

	updates := storage.BusinessUpdates{
		Name:        trimmed(in.Name),
		Category:    trimmed(in.Category),
		Description: in.Description,
		Address:     trimmed(in.Address),
		Website:     in.Website,
	}
	if in.Municipality != nil {
		m, _ := domain.CanonicalMunicipality(*in.Municipality)
		updates.Municipality = &m
	}
	if in.Phone != nil {
		phone := ""
		if *in.Phone != "" {
			if phone, err = NormalizePhone(*in.Phone); err != nil {
				return nil, err
			}
		}
		updates.Phone = &phone
	}
	if in.Email != nil {
		email := ""
		if *in.Email != "" {
			if email, err = NormalizeEmail(*in.Email); err != nil {
				return nil, err
			}
		}
		updates.Email = &email
	}

	business, err := s.storage.UpdateBusiness(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update business: %w", err)
	}
	if business == nil {
		return nil, serrors.With(serrors.ErrNotFound, "business not found")
	}

	if business.Address != current.Address || business.Municipality != current.Municipality {
		s.dispatch(ctx, tasks.GeocodeBusinessArgs{BusinessID: business.ID})
	}

	return business, nil
}

// Delete soft deletes a business and closes its job postings.
func (s *BusinessService) Delete(ctx context.Context, p domain.Principal, id domain.BusinessID) error {
	if err := requireSignedIn(p); err != nil {
		return err
	}
	if _, err := s.managed(ctx, p, id); err != nil {
		return err
	}

	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteBusiness(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete business: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "business not found")
		}

		closed, err := tx.DeactivateBusinessJobs(ctx, id)
		if err != nil {
			return fmt.Errorf("could not close business jobs: %w", err)
		}
		logger.Info(ctx, "business deleted",
			zap.Stringer("businessID", id), zap.Int64("closedJobs", closed), zap.Stringer("by", p.UserID))

		return nil
	})

	return err
}

// ListPending returns businesses waiting for moderation. Admins only.
func (s *BusinessService) ListPending(ctx context.Context,
	p domain.Principal,
	page PageRequest) (storage.Page[domain.Business], error) {
	if !p.IsAdmin() {
		return storage.Page[domain.Business]{}, serrors.With(serrors.ErrForbidden, "admin only")
	}

	return s.List(ctx, p, BusinessFilter{Status: domain.BusinessStatusPending}, page)
}

// Moderate approves or rejects a business and tells its owner. Rejecting a
// business closes its job postings.
func (s *BusinessService) Moderate(ctx context.Context,
	p domain.Principal,
	id domain.BusinessID,
	in Moderation) (*domain.Business, error) {
	if !p.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "admin only")
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(in.Reason)
	var business *domain.Business
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		business, err = tx.UpdateBusiness(ctx, id, storage.BusinessUpdates{
			Status:           &in.Status,
			ModerationReason: &reason,
		})
		if err != nil {
			return fmt.Errorf("could not update business: %w", err)
		}
		if business == nil {
			return serrors.With(serrors.ErrNotFound, "business not found")
		}

		if in.Status == domain.BusinessStatusRejected {
			if _, err := tx.DeactivateBusinessJobs(ctx, id); err != nil {
				return fmt.Errorf("could not close business jobs: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "business moderated",
		zap.Stringer("businessID", id), zap.String("status", string(in.Status)), zap.Stringer("by", p.UserID))

	title := fmt.Sprintf("%s was approved", business.Name)
	message := "Your business is now listed on Catanduanes Connect and can post jobs."
	if in.Status == domain.BusinessStatusRejected {
		title = fmt.Sprintf("%s was not approved", business.Name)
		message = "Reason: " + reason
	}
	link := "/businesses/" + business.ID.String()

	s.notify(ctx, domain.Notification{
		UserID:  business.OwnerID,
		Type:    domain.NotificationTypeBusinessModerated,
		Title:   title,
		Message: message,
		Link:    link,
	})

	owner, err := s.storage.UserByID(ctx, business.OwnerID)
	if err != nil || owner == nil {
		logger.Warn(ctx, "could not load business owner to email", zap.Error(err))

		return business, nil
	}
	s.email(ctx, owner.Email, title, fmt.Sprintf("Hi %s,\n\n%s\n\n%s\n", owner.Name, message, s.link(link)))

	return business, nil
}

// visible loads a business p may see.
func (s *BusinessService) visible(ctx context.Context, p domain.Principal, id domain.BusinessID) (*domain.Business, error) {
	business, err := s.storage.BusinessByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil || (business.Status != domain.BusinessStatusApproved && !canManage(p, business.OwnerID)) {
		return nil, serrors.With(serrors.ErrNotFound, "business not found")
	}

	return business, nil
}

// managed loads a business p may change.
func (s *BusinessService) managed(ctx context.Context, p domain.Principal, id domain.BusinessID) (*domain.Business, error) {
	business, err := s.visible(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if !canManage(p, business.OwnerID) {
		return nil, serrors.With(serrors.ErrForbidden, "only the owner can change this business")
	}

	return business, nil
}

// canManage reports whether p owns a resource of owner or is an admin.
func canManage(p domain.Principal, owner domain.UserID) bool {
	return p.IsAdmin() || (!p.Anonymous() && p.UserID == owner)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)

	return &t
}
