// Package worker runs background tasks, either from the River queue or
// in-process when the queue could not take them.
package worker

import (
	"catconnect/internal/tasks"
	"catconnect/pkg/geocoder"
	"catconnect/pkg/logger"
	"catconnect/pkg/mailer"
	"catconnect/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
)

var _ tasks.Runner = (*Local)(nil)

// Deps are the collaborators of the task workers.
type Deps struct {
	Mailer   mailer.Mailer
	Storage  storage.AllStorage
	Geocoder geocoder.Client
}

// Options configure the River client.
type Options struct {
	// Workers is the concurrency of the default queue.
	Workers int
	// StopTimeout bounds the graceful stop of running jobs.
	StopTimeout time.Duration
}

// Set is the worker of every task kind.
type Set struct {
	Email        *EmailWorker
	Notification *NotificationWorker
	Geocode      *GeocodeWorker
}

func NewSet(deps Deps) *Set {
	return &Set{
		Email:        NewEmailWorker(deps.Mailer),
		Notification: NewNotificationWorker(deps.Storage),
		Geocode:      NewGeocodeWorker(deps.Storage, deps.Geocoder),
	}
}

// Register adds every worker of the set to workers.
func (s *Set) Register(workers *river.Workers) {
	river.AddWorker(workers, s.Email)
	river.AddWorker(workers, s.Notification)
	river.AddWorker(workers, s.Geocode)
}

// Local runs tasks in-process through the same workers River uses. A job
// cancel or snooze from a worker is reported as an error since there is no
// queue to act on it.
type Local struct {
	set *Set
}

func NewLocal(set *Set) *Local {
	return &Local{set: set}
}

func (l *Local) Run(ctx context.Context, args river.JobArgs) error {
	switch a := args.(type) {
	case tasks.SendEmailArgs:
		return l.set.Email.Work(ctx, localJob(a))
	case tasks.CreateNotificationArgs:
		return l.set.Notification.Work(ctx, localJob(a))
	case tasks.GeocodeBusinessArgs:
		return l.set.Geocode.Work(ctx, localJob(a))
	default:
		return fmt.Errorf("no local runner for task kind %q", args.Kind())
	}
}

func localJob[T river.JobArgs](args T) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{Kind: args.Kind(), Attempt: 1, MaxAttempts: 1, AttemptedAt: ptr(time.Now())},
		Args:   args,
	}
}

func ptr[T any](v T) *T { return &v }

// Queue is the River client processing queued tasks. It satisfies
// suture.Service.
type Queue struct {
	client      *river.Client[pgx.Tx]
	stopTimeout time.Duration
}

// NewQueue builds the River client without starting it.
func NewQueue(ctx context.Context, dbPool *pgxpool.Pool, set *Set, opts Options) (*Queue, error) {
	if opts.Workers <= 0 {
		opts.Workers = 10
	}
	if opts.StopTimeout <= 0 {
		opts.StopTimeout = 15 * time.Second
	}

	workers := river.NewWorkers()
	set.Register(workers)

	client, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.Workers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return &Queue{client: client, stopTimeout: opts.StopTimeout}, nil
}

// Client exposes the underlying River client.
func (q *Queue) Client() *river.Client[pgx.Tx] { return q.client }

// Serve starts the client and stops it gracefully once ctx is done.
func (q *Queue) Serve(ctx context.Context) error {
	if err := q.client.Start(ctx); err != nil {
		return fmt.Errorf("could not start river queue client: %w", err)
	}
	logger.Info(ctx, "river queue started")

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), q.stopTimeout)
	defer cancel()
	if err := q.client.Stop(stopCtx); err != nil {
		return fmt.Errorf("could not stop river queue client: %w", err)
	}
	logger.Info(ctx, "river queue stopped")

	return nil
}

func (q *Queue) String() string { return "river-queue" }
