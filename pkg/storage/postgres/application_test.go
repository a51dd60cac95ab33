package postgres_test

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_JobsAndApplications(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createUser(t, pg, "owner@example.com", domain.RoleBusinessOwner)
	seeker := createUser(t, pg, "seeker@example.com", domain.RoleJobSeeker)
	b := createBusiness(t, pg, owner.ID, "J-1", domain.BusinessStatusApproved)

	job, err := pg.CreateJob(ctx, domain.Job{
		BusinessID: b.ID, PostedBy: owner.ID, Title: "Baker", Description: "Early shift",
		Type: domain.JobTypeFullTime, SalaryMin: 12000, Municipality: "Bato", Active: true,
	})
	require.NoError(t, err)
	require.Equal(t, 12000, job.SalaryMin)
	require.Zero(t, job.SalaryMax)

	closed, err := pg.CreateJob(ctx, domain.Job{
		BusinessID: b.ID, PostedBy: owner.ID, Title: "Cashier", Description: "x",
		Type: domain.JobTypePartTime, Municipality: "Bato", Active: false,
	})
	require.NoError(t, err)

	active, err := pg.ListJobs(ctx, storage.JobFilter{ActiveOnly: true}, storage.PageQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, active.Items, 1)
	require.Equal(t, job.ID, active.Items[0].ID)

	all, err := pg.ListJobs(ctx, storage.JobFilter{BusinessID: &b.ID}, storage.PageQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all.Items, 2)

	title := "Senior Baker"
	updated, err := pg.UpdateJob(ctx, job.ID, storage.JobUpdates{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.True(t, updated.Active)

	app, err := pg.CreateApplication(ctx, domain.JobApplication{
		JobID: job.ID, ApplicantID: seeker.ID, CoverLetter: "Hire me", Status: domain.ApplicationStatusPending,
	})
	require.NoError(t, err)

	_, err = pg.CreateApplication(ctx, domain.JobApplication{
		JobID: job.ID, ApplicantID: seeker.ID, Status: domain.ApplicationStatusPending,
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	got, err := pg.ApplicationByJobAndApplicant(ctx, job.ID, seeker.ID)
	require.NoError(t, err)
	require.Equal(t, app.ID, got.ID)

	withdrawn, err := pg.UpdateApplicationStatus(ctx, app.ID, domain.ApplicationStatusWithdrawn,
		domain.ApplicationStatusPending, domain.ApplicationStatusReviewed)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusWithdrawn, withdrawn.Status)

	again, err := pg.UpdateApplicationStatus(ctx, app.ID, domain.ApplicationStatusAccepted,
		domain.ApplicationStatusPending, domain.ApplicationStatusReviewed)
	require.NoError(t, err)
	require.Nil(t, again, "withdrawn applications are final")

	byJob, err := pg.JobApplications(ctx, job.ID, storage.PageQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, byJob.Items, 1)

	mine, err := pg.ApplicantApplications(ctx, seeker.ID, storage.PageQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)

	n, err := pg.DeactivateBusinessJobs(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	got2, err := pg.JobByID(ctx, closed.ID)
	require.NoError(t, err)
	require.False(t, got2.Active)
}
