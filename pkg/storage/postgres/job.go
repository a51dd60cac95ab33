package postgres

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const jobsTable = "jobs"

func (p *PgSQL) CreateJob(ctx context.Context, job domain.Job) (*domain.Job, error) {
	var row PgJob
	row.FromDomain(job)

	var result PgJob
	if _, err := p.Builder.Insert(jobsTable).
		Rows(row).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapWriteError(err, "could not store job into pg")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.From(jobsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateJob(ctx context.Context, id domain.JobID, updates storage.JobUpdates) (*domain.Job, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "description", updates.Description)
	setIf(rec, "requirements", updates.Requirements)
	setIf(rec, "salary_min", updates.SalaryMin)
	setIf(rec, "salary_max", updates.SalaryMax)
	setIf(rec, "municipality", updates.Municipality)
	setIf(rec, "is_active", updates.Active)
	if updates.Type != nil {
		rec["job_type"] = string(*updates.Type)
	}

	var row PgJob
	found, err := p.Builder.Update(jobsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeactivateBusinessJobs(ctx context.Context, businessID domain.BusinessID) (int64, error) {
	res, err := p.Builder.Update(jobsTable).
		Set(goqu.Record{
			"is_active":  false,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("business_id").Eq(uuid.UUID(businessID)),
			goqu.I("is_active").IsTrue(),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not deactivate business jobs in pg: %w", err)
	}

	return res.RowsAffected()
}

func (p *PgSQL) ListJobs(ctx context.Context,
	filter storage.JobFilter,
	page storage.PageQuery) (storage.Page[domain.Job], error) {
	w := []goqu.Expression{goqu.I("deleted_at").IsNull()}
	if filter.BusinessID != nil {
		w = append(w, goqu.I("business_id").Eq(uuid.UUID(*filter.BusinessID)))
	}
	if filter.Municipality != "" {
		w = append(w, goqu.I("municipality").Eq(filter.Municipality))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("job_type").Eq(string(filter.Type)))
	}
	if filter.ActiveOnly {
		w = append(w, goqu.I("is_active").IsTrue())
	}

	result, err := fetchPage(ctx,
		p.Builder.From(jobsTable).Where(w...),
		page,
		func(r *PgJob) storage.Cursor { return storage.Cursor{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgJob).ToDomain)
	if err != nil {
		return result, fmt.Errorf("could not list jobs from pg: %w", err)
	}

	return result, nil
}
