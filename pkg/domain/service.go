package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceID uniquely identifies a service offering.
type ServiceID uuid.UUID

// String returns the canonical uuid representation.
func (id ServiceID) String() string { return uuid.UUID(id).String() }

func (id ServiceID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ServiceID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Service is an offering published by a service provider (plumbing, tutoring, ...).
type Service struct {
	ID           ServiceID `json:"id"`
	ProviderID   UserID    `json:"providerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Rate         int       `json:"rate,omitempty"`
	RateUnit     string    `json:"rateUnit,omitempty"`
	Municipality string    `json:"municipality"`
	Active       bool      `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
