package postgres

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const reviewsTable = "reviews"

func (p *PgSQL) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var row PgReview
	row.FromDomain(review)

	var result PgReview
	if _, err := p.Builder.Insert(reviewsTable).
		Rows(row).
		Returning(&PgReview{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, mapWriteError(err, "could not store review into pg")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	return p.reviewWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserReviewForBusiness(ctx context.Context,
	userID domain.UserID,
	businessID domain.BusinessID) (*domain.Review, error) {
	return p.reviewWhere(ctx,
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("business_id").Eq(uuid.UUID(businessID)))
}

func (p *PgSQL) reviewWhere(ctx context.Context, w ...goqu.Expression) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(append(w, goqu.I("deleted_at").IsNull())...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteReview(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.Update(reviewsTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgReview{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete review in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListReviews(ctx context.Context,
	businessID domain.BusinessID,
	page storage.PageQuery) (storage.Page[domain.Review], error) {
	result, err := fetchPage(ctx,
		p.Builder.From(reviewsTable).Where(
			goqu.I("business_id").Eq(uuid.UUID(businessID)),
			goqu.I("deleted_at").IsNull(),
		),
		page,
		func(r *PgReview) storage.Cursor { return storage.Cursor{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgReview).ToDomain)
	if err != nil {
		return result, fmt.Errorf("could not list reviews from pg: %w", err)
	}

	return result, nil
}

func (p *PgSQL) RatingSummary(ctx context.Context, businessID domain.BusinessID) (domain.RatingSummary, error) {
	var row struct {
		Average float64 `db:"average"`
		Count   int64   `db:"count"`
	}
	if _, err := p.Builder.From(reviewsTable).
		Select(
			goqu.L("COALESCE(AVG(rating), 0)::float8").As("average"),
			goqu.COUNT("*").As("count"),
		).
		Where(
			goqu.I("business_id").Eq(uuid.UUID(businessID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("could not compute rating summary in pg: %w", err)
	}

	return domain.RatingSummary{Average: row.Average, Count: row.Count}, nil
}
