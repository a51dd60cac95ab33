package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationID uniquely identifies a job application.
type ApplicationID uuid.UUID

// String returns the canonical uuid representation.
func (id ApplicationID) String() string { return uuid.UUID(id).String() }

func (id ApplicationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ApplicationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// Open reports whether the application can still change state.
func (s ApplicationStatus) Open() bool {
	return s == ApplicationStatusPending || s == ApplicationStatusReviewed
}

// JobApplication links an applicant to a job posting.
type JobApplication struct {
	ID          ApplicationID     `json:"id"`
	JobID       JobID             `json:"jobId"`
	ApplicantID UserID            `json:"applicantId"`
	CoverLetter string            `json:"coverLetter"`
	ResumeText  string            `json:"resumeText,omitempty"`
	Status      ApplicationStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
