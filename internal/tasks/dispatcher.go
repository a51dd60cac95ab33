// Package tasks dispatches best-effort background work. Tasks go to the River
// queue first; when enqueueing fails they run in a local goroutine instead.
package tasks

import (
	"catconnect/pkg/logger"
	"catconnect/pkg/metrics"
	"catconnect/pkg/storage"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "catconnect/internal/tasks"

// Route tells where a dispatched task went.
type Route string

const (
	RouteQueue    Route = "queue"
	RouteFallback Route = "fallback"
	// RouteLocal is taken by Unqueued tasks, which skip the queue.
	RouteLocal   Route = "local"
	RouteDropped Route = "dropped"
)

// Unqueued is implemented by args that may have to stay out of the queue
// tables, typically because they carry a secret.
type Unqueued interface {
	InProcessOnly() bool
}

// Runner executes a task in-process.
//
//go:generate mockgen -package mocktasks -source=dispatcher.go -destination=mock/mocktasks.go *
type Runner interface {
	Run(ctx context.Context, args river.JobArgs) error
}

// Options configure dispatching.
type Options struct {
	// MaxAttempts overrides River's default retry budget when positive.
	MaxAttempts int
	// FallbackTimeout bounds a task running in-process. Defaults to 30s.
	FallbackTimeout time.Duration
}

// Deps are the collaborators of a Dispatcher. Runner, Metrics and the
// providers are optional.
type Deps struct {
	Queue          storage.TaskStorage
	Runner         Runner
	Metrics        *metrics.Tasks
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// Dispatcher is safe for concurrent use.
type Dispatcher struct {
	queue   storage.TaskStorage
	runner  Runner
	opts    Options
	metrics *metrics.Tasks

	tracer     trace.Tracer
	dispatched metric.Int64Counter
	duration   metric.Float64Histogram

	wg sync.WaitGroup
}

func NewDispatcher(deps Deps, opts Options) (*Dispatcher, error) {
	if opts.FallbackTimeout <= 0 {
		opts.FallbackTimeout = 30 * time.Second
	}
	mp := deps.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	dispatched, err := meter.Int64Counter("tasks.dispatch",
		metric.WithDescription("Dispatched tasks by kind and route."))
	if err != nil {
		return nil, fmt.Errorf("could not create dispatch counter: %w", err)
	}
	duration, err := meter.Float64Histogram("tasks.fallback.duration",
		metric.WithDescription("Duration of tasks executed in-process."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create fallback histogram: %w", err)
	}

	return &Dispatcher{
		queue:      deps.Queue,
		runner:     deps.Runner,
		opts:       opts,
		metrics:    deps.Metrics,
		tracer:     tp.Tracer(instrumentationName),
		dispatched: dispatched,
		duration:   duration,
	}, nil
}

// Dispatch enqueues args and never fails: when the queue rejects the task it
// runs through the local Runner in the background, detached from ctx's
// cancellation, and when there is no Runner the task is dropped. Unqueued
// tasks asking for it always run locally. Tasks on different routes are not
// ordered relative to each other.
func (d *Dispatcher) Dispatch(ctx context.Context, args river.JobArgs) Route {
	ctx, span := d.tracer.Start(ctx, "tasks.Dispatch", trace.WithAttributes(attribute.String("task.kind", args.Kind())))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.String("taskKind", args.Kind()))

	route := d.dispatch(ctx, args)
	span.SetAttributes(attribute.String("task.route", string(route)))
	if route == RouteDropped {
		span.SetStatus(codes.Error, "task dropped")
	}

	d.dispatched.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", args.Kind()),
		attribute.String("route", string(route))))
	if d.metrics != nil {
		d.metrics.Dispatched.WithLabelValues(args.Kind(), string(route)).Inc()
	}

	return route
}

func (d *Dispatcher) dispatch(ctx context.Context, args river.JobArgs) Route {
	if u, ok := args.(Unqueued); ok && u.InProcessOnly() {
		if d.runner == nil {
			logger.Error(ctx, "no local runner for in-process only task, dropping it")

			return RouteDropped
		}
		d.runFallback(ctx, args)

		return RouteLocal
	}

	var opts *river.InsertOpts
	if d.opts.MaxAttempts > 0 {
		opts = &river.InsertOpts{MaxAttempts: d.opts.MaxAttempts}
	}

	added, err := d.queue.AddJob(ctx, args, opts)
	if err == nil {
		if !added {
			logger.Debug(ctx, "task already queued")
		}

		return RouteQueue
	}

	if d.runner == nil {
		logger.Error(ctx, "could not enqueue task, dropping it", zap.Error(err))

		return RouteDropped
	}

	logger.Warn(ctx, "could not enqueue task, running it in-process", zap.Error(err))
	d.runFallback(ctx, args)

	return RouteFallback
}

func (d *Dispatcher) runFallback(ctx context.Context, args river.JobArgs) {
	// keep logger fields and trace, drop the request's cancellation
	ctx = context.WithoutCancel(ctx)
	parent := trace.SpanContextFromContext(ctx)

	d.wg.Add(1)
	if d.metrics != nil {
		d.metrics.Fallback.Inc()
	}

	go func() {
		defer d.wg.Done()
		if d.metrics != nil {
			defer d.metrics.Fallback.Dec()
		}

		ctx, cancel := context.WithTimeout(ctx, d.opts.FallbackTimeout)
		defer cancel()
		ctx, span := d.tracer.Start(ctx, "tasks.Fallback", trace.WithLinks(trace.Link{SpanContext: parent}))
		defer span.End()

		start := time.Now()
		err := d.runner.Run(ctx, args)
		d.duration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(attribute.String("kind", args.Kind())))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "task failed")
			logger.Error(ctx, "in-process task failed", zap.Error(err))

			return
		}

		logger.Debug(ctx, "in-process task finished")
	}()
}

// Wait blocks until every in-process task has finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("in-process tasks still running: %w", ctx.Err())
	}
}
