package postgres

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const businessesTable = "businesses"

func (p *PgSQL) CreateBusiness(ctx context.Context, business domain.Business) (*domain.Business, error) {
	var row PgBusiness
	row.FromDomain(business)

	var result PgBusiness
	if _, err := p.Builder.Insert(businessesTable).
		Rows(row).
		Returning(&PgBusiness{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapWriteError(err, "could not store business into pg")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) BusinessByID(ctx context.Context, id domain.BusinessID) (*domain.Business, error) {
	return p.businessWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) BusinessByPermitNumber(ctx context.Context, permitNumber string) (*domain.Business, error) {
	return p.businessWhere(ctx, goqu.I("permit_number").Eq(permitNumber))
}

func (p *PgSQL) businessWhere(ctx context.Context, w goqu.Expression) (*domain.Business, error) {
	var row PgBusiness
	found, err := p.Builder.From(businessesTable).
		Where(w, goqu.I("deleted_at").IsNull()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch business from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateBusiness(ctx context.Context,
	id domain.BusinessID,
	updates storage.BusinessUpdates) (*domain.Business, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "name", updates.Name)
	setIf(rec, "category", updates.Category)
	setIf(rec, "description", updates.Description)
	setIf(rec, "address", updates.Address)
	setIf(rec, "municipality", updates.Municipality)
	setIf(rec, "phone", updates.Phone)
	setIf(rec, "email", updates.Email)
	setIf(rec, "website", updates.Website)
	setIf(rec, "moderation_reason", updates.ModerationReason)
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.Location != nil {
		rec["latitude"] = updates.Location.Latitude
		rec["longitude"] = updates.Location.Longitude
	}

	var row PgBusiness
	found, err := p.Builder.Update(businessesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgBusiness{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, mapWriteError(err, "could not update business in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteBusiness(ctx context.Context, id domain.BusinessID) (*domain.Business, error) {
	var row PgBusiness
	found, err := p.Builder.Update(businessesTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgBusiness{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete business in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListBusinesses(ctx context.Context,
	filter storage.BusinessFilter,
	page storage.PageQuery) (storage.Page[domain.Business], error) {
	w := []goqu.Expression{goqu.I("deleted_at").IsNull()}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Municipality != "" {
		w = append(w, goqu.I("municipality").Eq(filter.Municipality))
	}
	if filter.Category != "" {
		w = append(w, goqu.I("category").ILike(filter.Category))
	}
	if filter.OwnerID != nil {
		w = append(w, goqu.I("owner_id").Eq(uuid.UUID(*filter.OwnerID)))
	}

	result, err := fetchPage(ctx,
		p.Builder.From(businessesTable).Where(w...),
		page,
		func(r *PgBusiness) storage.Cursor { return storage.Cursor{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgBusiness).ToDomain)
	if err != nil {
		return result, fmt.Errorf("could not list businesses from pg: %w", err)
	}

	return result, nil
}
