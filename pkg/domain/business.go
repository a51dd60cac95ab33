package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessID uniquely identifies a registered business.
type BusinessID uuid.UUID

// String returns the canonical uuid representation.
func (id BusinessID) String() string { return uuid.UUID(id).String() }

func (id BusinessID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *BusinessID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// BusinessStatus is the moderation state of a business.
type BusinessStatus string

const (
	// BusinessStatusPending is set on registration until an admin reviews the permit.
	BusinessStatusPending BusinessStatus = "pending"
	// BusinessStatusApproved businesses are publicly listed and may post jobs.
	BusinessStatusApproved BusinessStatus = "approved"
	// BusinessStatusRejected businesses stay visible only to their owner and admins.
	BusinessStatusRejected BusinessStatus = "rejected"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Business is a local establishment registered by an owner.
type Business struct {
	ID           BusinessID `json:"id"`
	OwnerID      UserID     `json:"ownerId"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	PermitNumber string     `json:"permitNumber"`
	Address      string     `json:"address"`
	Municipality string     `json:"municipality"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	Website      string     `json:"website,omitempty"`

	// Location is filled asynchronously by the geocoding task; nil until then.
	Location *Coordinates `json:"location,omitempty"`

	Status           BusinessStatus `json:"status"`
	ModerationReason string         `json:"moderationReason,omitempty"`

	// Rating is computed from live reviews when the business is fetched by id.
	Rating *RatingSummary `json:"rating,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
