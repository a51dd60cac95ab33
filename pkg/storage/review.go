package storage

import (
	"catconnect/pkg/domain"
	"context"
)

type ReviewStorage interface {
	// CreateReview inserts a review. A second live review by the same user for
	// the same business yields ErrDuplicate.
	CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error)
	// UserReviewForBusiness returns the live review of userID for businessID, if any.
	UserReviewForBusiness(ctx context.Context, userID domain.UserID, businessID domain.BusinessID) (*domain.Review, error)
	// DeleteReview soft deletes the review and returns it, or nil when not found.
	DeleteReview(ctx context.Context, id domain.ReviewID) (*domain.Review, error)
	ListReviews(ctx context.Context, businessID domain.BusinessID, page PageQuery) (Page[domain.Review], error)
	// RatingSummary aggregates the live reviews of a business.
	RatingSummary(ctx context.Context, businessID domain.BusinessID) (domain.RatingSummary, error)
}
