package postgres

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const notificationsTable = "notifications"

func (p *PgSQL) StoreNotifications(ctx context.Context,
	notifications ...domain.Notification) ([]domain.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	rows := make([]PgNotification, len(notifications))
	for i := range notifications {
		rows[i].FromDomain(notifications[i])
	}

	var result []PgNotification
	if err := p.Builder.Insert(notificationsTable).
		Rows(rows).
		Returning(&PgNotification{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store notifications into pg: %w", err)
	}

	out := make([]domain.Notification, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UserNotifications(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	page storage.PageQuery) (storage.Page[domain.Notification], error) {
	w := []goqu.Expression{goqu.I("user_id").Eq(uuid.UUID(userID))}
	if unreadOnly {
		w = append(w, goqu.I("is_read").IsFalse())
	}

	result, err := fetchPage(ctx,
		p.Builder.From(notificationsTable).Where(w...),
		page,
		func(r *PgNotification) storage.Cursor { return storage.Cursor{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgNotification).ToDomain)
	if err != nil {
		return result, fmt.Errorf("could not list notifications from pg: %w", err)
	}

	return result, nil
}

func (p *PgSQL) UnreadNotificationCount(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(notificationsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("is_read").IsFalse(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count unread notifications in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) MarkNotificationsRead(ctx context.Context,
	userID domain.UserID,
	ids ...domain.NotificationID) (int64, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("is_read").IsFalse(),
	}
	if len(ids) > 0 {
		raw := make([]uuid.UUID, len(ids))
		for i, id := range ids {
			raw[i] = uuid.UUID(id)
		}
		w = append(w, goqu.I("id").In(raw))
	}

	res, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{"is_read": true}).
		Where(w...).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read in pg: %w", err)
	}

	return res.RowsAffected()
}
