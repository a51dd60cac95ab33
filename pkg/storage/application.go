package storage

import (
	"catconnect/pkg/domain"
	"context"
)

type ApplicationStorage interface {
	// CreateApplication inserts an application. Applying twice to the same job
	// yields ErrDuplicate.
	CreateApplication(ctx context.Context, application domain.JobApplication) (*domain.JobApplication, error)
	ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.JobApplication, error)
	ApplicationByJobAndApplicant(ctx context.Context, jobID domain.JobID, applicantID domain.UserID) (*domain.JobApplication, error)
	// UpdateApplicationStatus sets the status only when the current status is
	// one of from. It returns nil when the application does not exist or is in
	// another status.
	UpdateApplicationStatus(ctx context.Context,
		id domain.ApplicationID,
		status domain.ApplicationStatus,
		from ...domain.ApplicationStatus) (*domain.JobApplication, error)
	JobApplications(ctx context.Context, jobID domain.JobID, page PageQuery) (Page[domain.JobApplication], error)
	ApplicantApplications(ctx context.Context, applicantID domain.UserID, page PageQuery) (Page[domain.JobApplication], error)
}
