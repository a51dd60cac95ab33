package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a job posting.
type JobID uuid.UUID

// String returns the canonical uuid representation.
func (id JobID) String() string { return uuid.UUID(id).String() }

func (id JobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *JobID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// JobType describes the engagement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeTemporary  JobType = "temporary"
	JobTypeInternship JobType = "internship"
)

// Job is a vacancy posted on behalf of an approved business.
type Job struct {
	ID           JobID      `json:"id"`
	BusinessID   BusinessID `json:"businessId"`
	PostedBy     UserID     `json:"postedBy"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Type         JobType    `json:"type"`
	SalaryMin    int        `json:"salaryMin,omitempty"`
	SalaryMax    int        `json:"salaryMax,omitempty"`
	Municipality string     `json:"municipality"`
	Active       bool       `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
