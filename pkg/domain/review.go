package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewID uniquely identifies a review.
type ReviewID uuid.UUID

// String returns the canonical uuid representation.
func (id ReviewID) String() string { return uuid.UUID(id).String() }

func (id ReviewID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ReviewID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left by a user for a business. A user holds at most one
// live review per business.
type Review struct {
	ID         ReviewID   `json:"id"`
	BusinessID BusinessID `json:"businessId"`
	UserID     UserID     `json:"userId"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	DeletedAt time.Time `json:"-"`
}

// RatingSummary aggregates the live reviews of a business.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
