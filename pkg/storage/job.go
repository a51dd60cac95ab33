package storage

import (
	"catconnect/pkg/domain"
	"context"
)

// JobUpdates lists the job posting fields to change; nil fields are left untouched.
type JobUpdates struct {
	Title        *string
	Description  *string
	Requirements *string
	Type         *domain.JobType
	SalaryMin    *int
	SalaryMax    *int
	Municipality *string
	Active       *bool
}

// JobFilter narrows a job listing. Zero values do not filter.
type JobFilter struct {
	BusinessID   *domain.BusinessID
	Municipality string
	Type         domain.JobType
	ActiveOnly   bool
}

// JobStorage persists job postings. Soft deleted postings are invisible to
// every method.
type JobStorage interface {
	CreateJob(ctx context.Context, job domain.Job) (*domain.Job, error)
	JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error)
	UpdateJob(ctx context.Context, id domain.JobID, updates JobUpdates) (*domain.Job, error)
	// DeactivateBusinessJobs closes every active posting of a business and
	// returns how many were closed.
	DeactivateBusinessJobs(ctx context.Context, businessID domain.BusinessID) (int64, error)
	ListJobs(ctx context.Context, filter JobFilter, page PageQuery) (Page[domain.Job], error)
}
