package postgres

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const servicesTable = "services"

func (p *PgSQL) CreateService(ctx context.Context, service domain.Service) (*domain.Service, error) {
	var row PgService
	row.FromDomain(service)

	var result PgService
	if _, err := p.Builder.Insert(servicesTable).
		Rows(row).
		Returning(&PgService{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapWriteError(err, "could not store service into pg")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ServiceByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error) {
	var row PgService
	found, err := p.Builder.From(servicesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch service by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateService(ctx context.Context,
	id domain.ServiceID,
	updates storage.ServiceUpdates) (*domain.Service, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "description", updates.Description)
	setIf(rec, "category", updates.Category)
	setIf(rec, "rate", updates.Rate)
	setIf(rec, "rate_unit", updates.RateUnit)
	setIf(rec, "municipality", updates.Municipality)
	setIf(rec, "is_active", updates.Active)

	var row PgService
	found, err := p.Builder.Update(servicesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgService{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update service in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListServices(ctx context.Context,
	filter storage.ServiceFilter,
	page storage.PageQuery) (storage.Page[domain.Service], error) {
	w := []goqu.Expression{goqu.I("deleted_at").IsNull()}
	if filter.ProviderID != nil {
		w = append(w, goqu.I("provider_id").Eq(uuid.UUID(*filter.ProviderID)))
	}
	if filter.Category != "" {
		w = append(w, goqu.I("category").ILike(filter.Category))
	}
	if filter.Municipality != "" {
		w = append(w, goqu.I("municipality").Eq(filter.Municipality))
	}
	if filter.ActiveOnly {
		w = append(w, goqu.I("is_active").IsTrue())
	}

	result, err := fetchPage(ctx,
		p.Builder.From(servicesTable).Where(w...),
		page,
		func(r *PgService) storage.Cursor { return storage.Cursor{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgService).ToDomain)
	if err != nil {
		return result, fmt.Errorf("could not list services from pg: %w", err)
	}

	return result, nil
}
