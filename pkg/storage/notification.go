package storage

import (
	"catconnect/pkg/domain"
	"context"
)

type NotificationStorage interface {
	StoreNotifications(ctx context.Context, notifications ...domain.Notification) ([]domain.Notification, error)
	// UserNotifications lists notifications of a user, newest first.
	UserNotifications(ctx context.Context,
		userID domain.UserID,
		unreadOnly bool,
		page PageQuery) (Page[domain.Notification], error)
	UnreadNotificationCount(ctx context.Context, userID domain.UserID) (int64, error)
	// MarkNotificationsRead marks the given notifications of userID as read, or
	// all of them when ids is empty, and returns how many changed.
	MarkNotificationsRead(ctx context.Context, userID domain.UserID, ids ...domain.NotificationID) (int64, error)
}
