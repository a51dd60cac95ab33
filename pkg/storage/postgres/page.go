package postgres

import (
	"catconnect/pkg/storage"
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const defaultPageLimit = 20

// fetchPage runs ds ordered by created_at DESC, id DESC, fetching one extra
// row to find out whether a next page exists.
func fetchPage[P any, D any](ctx context.Context,
	ds *goqu.SelectDataset,
	page storage.PageQuery,
	cursor func(*P) storage.Cursor,
	toDomain func(*P) *D) (storage.Page[D], error) {
	limit := page.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	if !page.Cursor.IsZero() {
		ds = ds.Where(afterCursor(page.Cursor))
	}

	var rows []P
	if err := ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[D]{}, err
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		c := cursor(&rows[len(rows)-1])
		nextCursor = &c
	}

	items := make([]D, 0, len(rows))
	for i := range rows {
		items = append(items, *toDomain(&rows[i]))
	}

	return storage.Page[D]{Items: items, NextCursor: nextCursor}, nil
}

// afterCursor matches rows following c in created_at DESC, id DESC order.
// Rows sharing the creation time of c are told apart by id.
func afterCursor(c storage.Cursor) exp.Expression {
	createdAt := goqu.I("created_at")
	if c.ID == uuid.Nil {
		return createdAt.Lt(c.CreatedAt)
	}

	return goqu.Or(
		createdAt.Lt(c.CreatedAt),
		goqu.And(createdAt.Eq(c.CreatedAt), goqu.I("id").Lt(c.ID)),
	)
}

// setIf adds value under column when it is not nil.
func setIf[T any](rec goqu.Record, column string, value *T) {
	if value != nil {
		rec[column] = *value
	}
}
