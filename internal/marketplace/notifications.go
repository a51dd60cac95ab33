package marketplace

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"context"
	"fmt"
)

// maxMarkRead bounds the ids accepted by a single MarkRead call.
const maxMarkRead = 100

// NotificationService exposes the in-app notifications of a user.
type NotificationService struct {
	*base
}

// List returns a page of the notifications of p, newest first.
func (s *NotificationService) List(ctx context.Context,
	p domain.Principal,
	unreadOnly bool,
	page PageRequest) (storage.Page[domain.Notification], error) {
	if err := requireSignedIn(p); err != nil {
		return storage.Page[domain.Notification]{}, err
	}
	q, err := s.pageQuery(page)
	if err != nil {
		return storage.Page[domain.Notification]{}, err
	}

	result, err := s.storage.UserNotifications(ctx, p.UserID, unreadOnly, q)
	if err != nil {
		return result, fmt.Errorf("could not list notifications: %w", err)
	}

	return result, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, p domain.Principal) (int64, error) {
	if err := requireSignedIn(p); err != nil {
		return 0, err
	}

	n, err := s.storage.UnreadNotificationCount(ctx, p.UserID)
	if err != nil {
		return 0, fmt.Errorf("could not count notifications: %w", err)
	}

	return n, nil
}

// MarkRead marks notifications of p as read. Ids of other users are ignored.
func (s *NotificationService) MarkRead(ctx context.Context, p domain.Principal, ids []domain.NotificationID) (int64, error) {
	if err := requireSignedIn(p); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "ids is required")
	}
	if len(ids) > maxMarkRead {
		return 0, serrors.With(serrors.ErrBadRequest, "at most %d ids can be marked at once", maxMarkRead)
	}

	return s.markRead(ctx, p.UserID, ids...)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, p domain.Principal) (int64, error) {
	if err := requireSignedIn(p); err != nil {
		return 0, err
	}

	return s.markRead(ctx, p.UserID)
}

func (s *NotificationService) markRead(ctx context.Context,
	userID domain.UserID,
	ids ...domain.NotificationID) (int64, error) {
	n, err := s.storage.MarkNotificationsRead(ctx, userID, ids...)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read: %w", err)
	}

	return n, nil
}
