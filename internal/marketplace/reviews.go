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

// ReviewInput rates a business.
type ReviewInput struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// ReviewService manages business reviews.
type ReviewService struct {
	*base
}

// Create records the review of p for an approved business and notifies its
// owner. Owners cannot review their own business and a user holds at most one
// review per business.
func (s *ReviewService) Create(ctx context.Context,
	p domain.Principal,
	businessID domain.BusinessID,
	in ReviewInput) (*domain.Review, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	business, err := s.approvedBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID == p.UserID {
		return nil, serrors.With(serrors.ErrForbidden, "you cannot review your own business")
	}

	existing, err := s.storage.UserReviewForBusiness(ctx, p.UserID, businessID)
	if err != nil {
		return nil, fmt.Errorf("could not get review: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "you already reviewed this business")
	}

	review, err := s.storage.CreateReview(ctx, domain.Review{
		BusinessID: businessID,
		UserID:     p.UserID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return nil, duplicate(fmt.Errorf("could not create review: %w", err), "you already reviewed this business")
	}

	logger.Info(ctx, "review created", zap.Stringer("reviewID", review.ID), zap.Stringer("businessID", businessID))

	s.notify(ctx, domain.Notification{
		UserID:  business.OwnerID,
		Type:    domain.NotificationTypeReview,
		Title:   "New review",
		Message: fmt.Sprintf("%s received a %d star review.", business.Name, review.Rating),
		Link:    "/businesses/" + business.ID.String(),
	})

	return review, nil
}

// List returns a page of the reviews of an approved business, newest first.
func (s *ReviewService) List(ctx context.Context,
	businessID domain.BusinessID,
	page PageRequest) (storage.Page[domain.Review], error) {
	q, err := s.pageQuery(page)
	if err != nil {
		return storage.Page[domain.Review]{}, err
	}
	if _, err := s.approvedBusiness(ctx, businessID); err != nil {
		return storage.Page[domain.Review]{}, err
	}

	result, err := s.storage.ListReviews(ctx, businessID, q)
	if err != nil {
		return result, fmt.Errorf("could not list reviews: %w", err)
	}

	return result, nil
}

// Delete removes a review. Authors and admins only.
func (s *ReviewService) Delete(ctx context.Context, p domain.Principal, id domain.ReviewID) error {
	if err := requireSignedIn(p); err != nil {
		return err
	}

	review, err := s.storage.ReviewByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get review: %w", err)
	}
	if review == nil {
		return serrors.With(serrors.ErrNotFound, "review not found")
	}
	if !canManage(p, review.UserID) {
		return serrors.With(serrors.ErrForbidden, "only the author can delete this review")
	}

	deleted, err := s.storage.DeleteReview(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete review: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "review not found")
	}

	logger.Info(ctx, "review deleted", zap.Stringer("reviewID", id), zap.Stringer("by", p.UserID))

	return nil
}

// Summary aggregates the live reviews of an approved business.
func (s *ReviewService) Summary(ctx context.Context, businessID domain.BusinessID) (domain.RatingSummary, error) {
	if _, err := s.approvedBusiness(ctx, businessID); err != nil {
		return domain.RatingSummary{}, err
	}

	summary, err := s.storage.RatingSummary(ctx, businessID)
	if err != nil {
		return summary, fmt.Errorf("could not get rating summary: %w", err)
	}

	return summary, nil
}

func (s *ReviewService) approvedBusiness(ctx context.Context, id domain.BusinessID) (*domain.Business, error) {
	business, err := s.storage.BusinessByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil || business.Status != domain.BusinessStatusApproved {
		return nil, serrors.With(serrors.ErrNotFound, "business not found")
	}

	return business, nil
}
