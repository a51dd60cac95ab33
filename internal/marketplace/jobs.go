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

// JobInput posts a job on behalf of a business.
type JobInput struct {
	BusinessID   domain.BusinessID `json:"businessId"   validate:"required"`
	Title        string            `json:"title"        validate:"required,max=160"`
	Description  string            `json:"description"  validate:"required,max=8000"`
	Requirements string            `json:"requirements" validate:"max=4000"`
	Type         domain.JobType    `json:"type"         validate:"required,oneof=full_time part_time contract temporary internship"` //nolint: lll
	SalaryMin    int               `json:"salaryMin"    validate:"gte=0"`
	SalaryMax    int               `json:"salaryMax"    validate:"gte=0"`
	// Municipality defaults to the one of the business.
	Municipality string `json:"municipality" validate:"omitempty,municipality"`
}

// JobUpdate lists the posting fields an owner may change.
type JobUpdate struct {
	Title        *string         `json:"title"        validate:"omitempty,min=1,max=160"`
	Description  *string         `json:"description"  validate:"omitempty,min=1,max=8000"`
	Requirements *string         `json:"requirements" validate:"omitempty,max=4000"`
	Type         *domain.JobType `json:"type"         validate:"omitempty,oneof=full_time part_time contract temporary internship"` //nolint: lll
	SalaryMin    *int            `json:"salaryMin"    validate:"omitempty,gte=0"`
	SalaryMax    *int            `json:"salaryMax"    validate:"omitempty,gte=0"`
	Municipality *string         `json:"municipality" validate:"omitempty,municipality"`
}

// JobFilter narrows a job listing.
type JobFilter struct {
	BusinessID   *domain.BusinessID
	Municipality string
	Type         domain.JobType
}

// ApplicationInput is a job application.
type ApplicationInput struct {
	CoverLetter string `json:"coverLetter" validate:"required,max=8000"`
	ResumeText  string `json:"resumeText"  validate:"max=20000"`
}

// ApplicationStatusUpdate is a decision of the employer on an application.
type ApplicationStatusUpdate struct {
	Status domain.ApplicationStatus `json:"status" validate:"required,oneof=reviewed accepted rejected"`
}

// JobService manages job postings and applications.
type JobService struct {
	*base
}

// Post publishes a job for an approved business owned by p.
func (s *JobService) Post(ctx context.Context, p domain.Principal, in JobInput) (*domain.Job, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if in.SalaryMax > 0 && in.SalaryMax < in.SalaryMin {
		return nil, serrors.With(serrors.ErrBadRequest, "salaryMax must not be less than salaryMin")
	}

	business, err := s.storage.BusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil {
		return nil, serrors.With(serrors.ErrNotFound, "business not found")
	}
	if !canManage(p, business.OwnerID) {
		return nil, serrors.With(serrors.ErrForbidden, "only the business owner can post jobs")
	}
	if business.Status != domain.BusinessStatusApproved {
		return nil, serrors.With(serrors.ErrForbidden, "business must be approved before posting jobs")
	}

	municipality := business.Municipality
	if in.Municipality != "" {
		municipality, _ = domain.CanonicalMunicipality(in.Municipality)
	}

	job, err := s.storage.CreateJob(ctx, domain.Job{
		BusinessID:   business.ID,
		PostedBy:     p.UserID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Requirements: in.Requirements,
		Type:         in.Type,
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
		Municipality: municipality,
		Active:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create job: %w", err)
	}

	logger.Info(ctx, "job posted", zap.Stringer("jobID", job.ID), zap.Stringer("businessID", business.ID))

	return job, nil
}

// Get returns a job. Closed postings are only visible to the business owner
// and admins.
func (s *JobService) Get(ctx context.Context, p domain.Principal, id domain.JobID) (*domain.Job, error) {
	job, business, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.Active && !canManage(p, business.OwnerID) {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

// List returns a page of postings, newest first. Only active postings are
// listed unless p manages the filtered business.
func (s *JobService) List(ctx context.Context,
	p domain.Principal,
	filter JobFilter,
	page PageRequest) (storage.Page[domain.Job], error) {
	q, err := s.pageQuery(page)
	if err != nil {
		return storage.Page[domain.Job]{}, err
	}

	f := storage.JobFilter{BusinessID: filter.BusinessID, Type: filter.Type, ActiveOnly: true}
	if filter.Municipality != "" {
		m, ok := domain.CanonicalMunicipality(filter.Municipality)
		if !ok {
			return storage.Page[domain.Job]{}, serrors.With(serrors.ErrBadRequest,
				"%q is not a municipality of Catanduanes", filter.Municipality)
		}
		f.Municipality = m
	}
	if filter.BusinessID != nil && !p.Anonymous() {
		business, err := s.storage.BusinessByID(ctx, *filter.BusinessID)
		if err != nil {
			return storage.Page[domain.Job]{}, fmt.Errorf("could not get business: %w", err)
		}
		if business != nil && canManage(p, business.OwnerID) {
			f.ActiveOnly = false
		}
	}

	result, err := s.storage.ListJobs(ctx, f, q)
	if err != nil {
		return result, fmt.Errorf("could not list jobs: %w", err)
	}

	return result, nil
}

// Update changes a posting of a business managed by p.
func (s *JobService) Update(ctx context.Context, p domain.Principal, id domain.JobID, in JobUpdate) (*domain.Job, error) {
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

	minSalary, maxSalary := current.SalaryMin, current.SalaryMax
	if in.SalaryMin != nil {
		minSalary = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		maxSalary = *in.SalaryMax
	}
	if maxSalary > 0 && maxSalary < minSalary {
		return nil, serrors.With(serrors.ErrBadRequest, "salaryMax must not be less than salaryMin")
	}

	updates := storage.JobUpdates{
		Title:        trimmed(in.Title),
		Description:  in.Description,
		Requirements: in.Requirements,
		Type:         in.Type,
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
	}
	if in.Municipality != nil {
		m, _ := domain.CanonicalMunicipality(*in.Municipality)
		updates.Municipality = &m
	}

	return s.update(ctx, id, updates)
}

// SetActive opens or closes a posting. Reopening requires the business to
// still be approved.
func (s *JobService) SetActive(ctx context.Context, p domain.Principal, id domain.JobID, active bool) (*domain.Job, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}

	job, business, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(p, business.OwnerID) {
		return nil, serrors.With(serrors.ErrForbidden, "only the business owner can change this job")
	}
	if active && business.Status != domain.BusinessStatusApproved {
		return nil, serrors.With(serrors.ErrForbidden, "business must be approved before reopening jobs")
	}
	if job.Active == active {
		return job, nil
	}

	return s.update(ctx, id, storage.JobUpdates{Active: &active})
}

// Apply submits an application of p to an open posting and notifies the
// business owner. Applying twice is a conflict.
func (s *JobService) Apply(ctx context.Context,
	p domain.Principal,
	jobID domain.JobID,
	in ApplicationInput) (*domain.JobApplication, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	job, business, err := s.load(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Active {
		return nil, serrors.With(serrors.ErrConflict, "job is no longer accepting applications")
	}
	if business.OwnerID == p.UserID {
		return nil, serrors.With(serrors.ErrForbidden, "you cannot apply to your own job")
	}

	existing, err := s.storage.ApplicationByJobAndApplicant(ctx, jobID, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "you already applied to this job")
	}

	application, err := s.storage.CreateApplication(ctx, domain.JobApplication{
		JobID:       jobID,
		ApplicantID: p.UserID,
		CoverLetter: in.CoverLetter,
		ResumeText:  in.ResumeText,
		Status:      domain.ApplicationStatusPending,
	})
	if err != nil {
		return nil, duplicate(fmt.Errorf("could not create application: %w", err), "you already applied to this job")
	}

	logger.Info(ctx, "job application submitted",
		zap.Stringer("applicationID", application.ID), zap.Stringer("jobID", jobID))

	s.notify(ctx, domain.Notification{
		UserID:  business.OwnerID,
		Type:    domain.NotificationTypeApplication,
		Title:   "New application",
		Message: fmt.Sprintf("Someone applied to %s.", job.Title),
		Link:    "/jobs/" + job.ID.String() + "/applications",
	})

	return application, nil
}

// Applications lists the applications to a posting managed by p.
func (s *JobService) Applications(ctx context.Context,
	p domain.Principal,
	jobID domain.JobID,
	page PageRequest) (storage.Page[domain.JobApplication], error) {
	if err := requireSignedIn(p); err != nil {
		return storage.Page[domain.JobApplication]{}, err
	}
	q, err := s.pageQuery(page)
	if err != nil {
		return storage.Page[domain.JobApplication]{}, err
	}
	if _, err := s.managed(ctx, p, jobID); err != nil {
		return storage.Page[domain.JobApplication]{}, err
	}

	result, err := s.storage.JobApplications(ctx, jobID, q)
	if err != nil {
		return result, fmt.Errorf("could not list applications: %w", err)
	}

	return result, nil
}

// MyApplications lists the applications submitted by p.
func (s *JobService) MyApplications(ctx context.Context,
	p domain.Principal,
	page PageRequest) (storage.Page[domain.JobApplication], error) {
	if err := requireSignedIn(p); err != nil {
		return storage.Page[domain.JobApplication]{}, err
	}
	q, err := s.pageQuery(page)
	if err != nil {
		return storage.Page[domain.JobApplication]{}, err
	}

	result, err := s.storage.ApplicantApplications(ctx, p.UserID, q)
	if err != nil {
		return result, fmt.Errorf("could not list applications: %w", err)
	}

	return result, nil
}

// UpdateApplicationStatus records the employer decision and tells the
// applicant. Withdrawn applications are final.
func (s *JobService) UpdateApplicationStatus(ctx context.Context,
	p domain.Principal,
	id domain.ApplicationID,
	in ApplicationStatusUpdate) (*domain.JobApplication, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	application, err := s.storage.ApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if application == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application not found")
	}
	job, err := s.managed(ctx, p, application.JobID)
	if err != nil {
		return nil, err
	}
	if application.Status == domain.ApplicationStatusWithdrawn {
		return nil, serrors.With(serrors.ErrConflict, "application was withdrawn")
	}
	if application.Status == in.Status {
		return application, nil
	}

	updated, err := s.storage.UpdateApplicationStatus(ctx, id, in.Status,
		domain.ApplicationStatusPending,
		domain.ApplicationStatusReviewed,
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected)
	if err != nil {
		return nil, fmt.Errorf("could not update application: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "application was withdrawn")
	}

	title := fmt.Sprintf("Your application to %s was %s", job.Title, in.Status)
	s.notify(ctx, domain.Notification{
		UserID:  updated.ApplicantID,
		Type:    domain.NotificationTypeApplicationStatus,
		Title:   title,
		Message: fmt.Sprintf("The employer marked your application as %s.", in.Status),
		Link:    "/me/applications",
	})

	applicant, err := s.storage.UserByID(ctx, updated.ApplicantID)
	if err != nil || applicant == nil {
		logger.Warn(ctx, "could not load applicant to email", zap.Error(err))

		return updated, nil
	}
	s.email(ctx, applicant.Email, title, fmt.Sprintf("Hi %s,\n\n%s.\n\n%s\n",
		applicant.Name, title, s.link("/me/applications")))

	return updated, nil
}

// Withdraw cancels an application of p while it is still open.
func (s *JobService) Withdraw(ctx context.Context,
	p domain.Principal,
	id domain.ApplicationID) (*domain.JobApplication, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}

	application, err := s.storage.ApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if application == nil || application.ApplicantID != p.UserID {
		return nil, serrors.With(serrors.ErrNotFound, "application not found")
	}
	if !application.Status.Open() {
		return nil, serrors.With(serrors.ErrConflict, "application is already %s", application.Status)
	}

	updated, err := s.storage.UpdateApplicationStatus(ctx, id, domain.ApplicationStatusWithdrawn,
		domain.ApplicationStatusPending, domain.ApplicationStatusReviewed)
	if err != nil {
		return nil, fmt.Errorf("could not withdraw application: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "application can no longer be withdrawn")
	}

	return updated, nil
}

// load returns a job together with its business.
func (s *JobService) load(ctx context.Context, id domain.JobID) (*domain.Job, *domain.Business, error) {
	job, err := s.storage.JobByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	business, err := s.storage.BusinessByID(ctx, job.BusinessID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, business, nil
}

func (s *JobService) managed(ctx context.Context, p domain.Principal, id domain.JobID) (*domain.Job, error) {
	job, business, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(p, business.OwnerID) {
		return nil, serrors.With(serrors.ErrForbidden, "only the business owner can manage this job")
	}

	return job, nil
}

func (s *JobService) update(ctx context.Context, id domain.JobID, updates storage.JobUpdates) (*domain.Job, error) {
	job, err := s.storage.UpdateJob(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}
