package worker

import (
	"catconnect/internal/tasks"
	"catconnect/pkg/logger"
	"catconnect/pkg/storage"
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationWorker stores queued in-app notifications.
type NotificationWorker struct {
	river.WorkerDefaults[tasks.CreateNotificationArgs]

	storage storage.NotificationStorage
}

func NewNotificationWorker(s storage.NotificationStorage) *NotificationWorker {
	return &NotificationWorker{storage: s}
}

func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[tasks.CreateNotificationArgs]) error {
	n := job.Args.Notification
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("userID", n.UserID),
		zap.String("type", string(n.Type)))

	if _, err := w.storage.StoreNotifications(ctx, n); err != nil {
		return fmt.Errorf("could not store notification: %w", err)
	}

	logger.Debug(ctx, "notification stored")

	return nil
}
