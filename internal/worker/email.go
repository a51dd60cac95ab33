package worker

import (
	"catconnect/internal/tasks"
	"catconnect/pkg/logger"
	"catconnect/pkg/mailer"
	"catconnect/pkg/serrors"
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EmailWorker delivers queued emails. Transient SMTP failures are retried by
// River; permanent ones cancel the job.
type EmailWorker struct {
	river.WorkerDefaults[tasks.SendEmailArgs]

	mailer mailer.Mailer
}

func NewEmailWorker(m mailer.Mailer) *EmailWorker {
	return &EmailWorker{mailer: m}
}

func (w *EmailWorker) Work(ctx context.Context, job *river.Job[tasks.SendEmailArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("subject", job.Args.Email.Subject))

	if err := w.mailer.Send(ctx, job.Args.Email); err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "email rejected permanently", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in sending email", zap.Error(err), zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not send email: %w", err)
	}

	logger.Info(ctx, "email sent")

	return nil
}
