package tasks_test

import (
	"catconnect/internal/tasks"
	mocktasks "catconnect/internal/tasks/mock"
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/metrics"
	mockstorage "catconnect/pkg/storage/mock"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	queue   *mockstorage.MockAllStorage
	runner  *mocktasks.MockRunner
	metrics *metrics.Tasks
	reader  *sdkmetric.ManualReader
}

func newDispatcher(t *testing.T, withRunner bool) (*tasks.Dispatcher, fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m, err := metrics.NewTasks(prometheus.NewRegistry())
	require.NoError(t, err)
	reader := sdkmetric.NewManualReader()

	f := fixture{
		queue:   mockstorage.NewMockAllStorage(ctrl),
		metrics: m,
		reader:  reader,
	}
	deps := tasks.Deps{
		Queue:         f.queue,
		Metrics:       m,
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	}
	if withRunner {
		f.runner = mocktasks.NewMockRunner(ctrl)
		deps.Runner = f.runner
	}

	d, err := tasks.NewDispatcher(deps, tasks.Options{MaxAttempts: 3, FallbackTimeout: time.Second})
	require.NoError(t, err)

	return d, f
}

func dispatchCount(t *testing.T, reader *sdkmetric.ManualReader) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "tasks.dispatch" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	return total
}

func TestDispatch_Queue(t *testing.T) {
	d, f := newDispatcher(t, true)
	args := tasks.SendEmailArgs{Email: domain.Email{To: "juan@example.com", Subject: "hi", Text: "hello"}}

	f.queue.EXPECT().AddJob(gomock.Any(), args, &river.InsertOpts{MaxAttempts: 3}).Return(true, nil)

	require.Equal(t, tasks.RouteQueue, d.Dispatch(context.Background(), args))
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Dispatched.WithLabelValues("send_email", "queue")))
	require.EqualValues(t, 1, dispatchCount(t, f.reader))
}

func TestDispatch_QueueDuplicate(t *testing.T) {
	d, f := newDispatcher(t, true)
	args := tasks.GeocodeBusinessArgs{BusinessID: domain.NewID[domain.BusinessID]()}

	f.queue.EXPECT().AddJob(gomock.Any(), args, gomock.Any()).Return(false, nil)

	require.Equal(t, tasks.RouteQueue, d.Dispatch(context.Background(), args))
}

func TestDispatch_FallbackDetachedFromRequest(t *testing.T) {
	d, f := newDispatcher(t, true)
	args := tasks.CreateNotificationArgs{Notification: domain.Notification{Title: "Welcome"}}

	type observed struct {
		hasDeadline bool
		err         error
	}
	ran := make(chan observed, 1)
	f.queue.EXPECT().AddJob(gomock.Any(), args, gomock.Any()).Return(false, errors.New("queue down"))
	f.runner.EXPECT().Run(gomock.Any(), args).DoAndReturn(func(ctx context.Context, _ river.JobArgs) error {
		_, hasDeadline := ctx.Deadline()
		ran <- observed{hasDeadline: hasDeadline, err: ctx.Err()}

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.Equal(t, tasks.RouteFallback, d.Dispatch(ctx, args))
	cancel()

	require.NoError(t, d.Wait(context.Background()))
	got := <-ran
	require.True(t, got.hasDeadline, "fallback must be bounded")
	require.NoError(t, got.err, "request cancellation must not reach the fallback")
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Dispatched.WithLabelValues("create_notification", "fallback")))
	require.Zero(t, testutil.ToFloat64(f.metrics.Fallback))
}

func TestDispatch_FallbackErrorIsSwallowed(t *testing.T) {
	d, f := newDispatcher(t, true)
	args := tasks.SendEmailArgs{}

	f.queue.EXPECT().AddJob(gomock.Any(), args, gomock.Any()).Return(false, errors.New("queue down"))
	f.runner.EXPECT().Run(gomock.Any(), args).Return(errors.New("smtp down"))

	require.Equal(t, tasks.RouteFallback, d.Dispatch(context.Background(), args))
	require.NoError(t, d.Wait(context.Background()))
}

func TestDispatch_DroppedWithoutRunner(t *testing.T) {
	d, f := newDispatcher(t, false)
	args := tasks.SendEmailArgs{}

	f.queue.EXPECT().AddJob(gomock.Any(), args, gomock.Any()).Return(false, errors.New("queue down"))

	require.Equal(t, tasks.RouteDropped, d.Dispatch(context.Background(), args))
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Dispatched.WithLabelValues("send_email", "dropped")))
}

func TestDispatch_SecretEmailSkipsQueue(t *testing.T) {
	d, f := newDispatcher(t, true)
	args := tasks.SendEmailArgs{Secret: true, Email: domain.Email{To: "juan@example.com", Text: "code 123456"}}

	// no AddJob expectation: the queue must not see the task
	f.runner.EXPECT().Run(gomock.Any(), args).Return(nil)

	require.Equal(t, tasks.RouteLocal, d.Dispatch(context.Background(), args))
	require.NoError(t, d.Wait(context.Background()))
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Dispatched.WithLabelValues("send_email", "local")))
}

func TestDispatch_SecretEmailDroppedWithoutRunner(t *testing.T) {
	d, _ := newDispatcher(t, false)

	require.Equal(t, tasks.RouteDropped, d.Dispatch(context.Background(), tasks.SendEmailArgs{Secret: true}))
}

func TestSendEmailArgs_SecretNotSerialized(t *testing.T) {
	b, err := json.Marshal(tasks.SendEmailArgs{Secret: true, Email: domain.Email{To: "juan@example.com"}})
	require.NoError(t, err)
	require.NotContains(t, string(b), "ecret")
}

func TestWait_Timeout(t *testing.T) {
	d, f := newDispatcher(t, true)
	args := tasks.SendEmailArgs{}

	release := make(chan struct{})
	f.queue.EXPECT().AddJob(gomock.Any(), args, gomock.Any()).Return(false, errors.New("queue down"))
	f.runner.EXPECT().Run(gomock.Any(), args).DoAndReturn(func(context.Context, river.JobArgs) error {
		<-release

		return nil
	})

	d.Dispatch(context.Background(), args)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, d.Wait(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, d.Wait(context.Background()))
}

func TestGeocodeBusinessArgs_InsertOpts(t *testing.T) {
	opts := tasks.GeocodeBusinessArgs{}.InsertOpts()
	require.True(t, opts.UniqueOpts.ByArgs)
	require.NotEmpty(t, opts.UniqueOpts.ByState)
}
