package postgres

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const applicationsTable = "applications"

func (p *PgSQL) CreateApplication(ctx context.Context,
	application domain.JobApplication) (*domain.JobApplication, error) {
	var row PgApplication
	row.FromDomain(application)

	var result PgApplication
	if _, err := p.Builder.Insert(applicationsTable).
		Rows(row).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapWriteError(err, "could not store application into pg")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.JobApplication, error) {
	return p.applicationWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) ApplicationByJobAndApplicant(ctx context.Context,
	jobID domain.JobID,
	applicantID domain.UserID) (*domain.JobApplication, error) {
	return p.applicationWhere(ctx,
		goqu.I("job_id").Eq(uuid.UUID(jobID)),
		goqu.I("applicant_id").Eq(uuid.UUID(applicantID)))
}

func (p *PgSQL) applicationWhere(ctx context.Context, w ...goqu.Expression) (*domain.JobApplication, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).Where(w...).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateApplicationStatus is a compare-and-set on the status column so two
// concurrent transitions cannot both succeed.
func (p *PgSQL) UpdateApplicationStatus(ctx context.Context,
	id domain.ApplicationID,
	status domain.ApplicationStatus,
	from ...domain.ApplicationStatus) (*domain.JobApplication, error) {
	w := []goqu.Expression{goqu.I("id").Eq(uuid.UUID(id))}
	if len(from) > 0 {
		allowed := make([]string, len(from))
		for i, s := range from {
			allowed[i] = string(s)
		}
		w = append(w, goqu.I("status").In(allowed))
	}

	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(w...).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) JobApplications(ctx context.Context,
	jobID domain.JobID,
	page storage.PageQuery) (storage.Page[domain.JobApplication], error) {
	return p.listApplications(ctx, goqu.I("job_id").Eq(uuid.UUID(jobID)), page)
}

func (p *PgSQL) ApplicantApplications(ctx context.Context,
	applicantID domain.UserID,
	page storage.PageQuery) (storage.Page[domain.JobApplication], error) {
	return p.listApplications(ctx, goqu.I("applicant_id").Eq(uuid.UUID(applicantID)), page)
}

func (p *PgSQL) listApplications(ctx context.Context,
	w goqu.Expression,
	page storage.PageQuery) (storage.Page[domain.JobApplication], error) {
	result, err := fetchPage(ctx,
		p.Builder.From(applicationsTable).Where(w),
		page,
		func(r *PgApplication) storage.Cursor { return storage.Cursor{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgApplication).ToDomain)
	if err != nil {
		return result, fmt.Errorf("could not list applications from pg: %w", err)
	}

	return result, nil
}
