package worker_test

import (
	"catconnect/internal/tasks"
	"catconnect/internal/worker"
	"catconnect/pkg/domain"
	mockgeocoder "catconnect/pkg/geocoder/mock"
	"catconnect/pkg/logger"
	mockmailer "catconnect/pkg/mailer/mock"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	mockstorage "catconnect/pkg/storage/mock"
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob[T river.JobArgs](id int64, args T) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{ID: id, Kind: args.Kind(), Attempt: 1},
		Args:   args,
	}
}

type mocks struct {
	mailer   *mockmailer.MockMailer
	storage  *mockstorage.MockAllStorage
	geocoder *mockgeocoder.MockClient
}

func newSet(t *testing.T) (*worker.Set, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		mailer:   mockmailer.NewMockMailer(ctrl),
		storage:  mockstorage.NewMockAllStorage(ctrl),
		geocoder: mockgeocoder.NewMockClient(ctrl),
	}

	return worker.NewSet(worker.Deps{Mailer: m.mailer, Storage: m.storage, Geocoder: m.geocoder}), m
}

func TestEmailWorker_Work(t *testing.T) {
	email := domain.Email{To: "ana@example.com", Subject: "Welcome", Text: "Hello"}

	t.Run("sent", func(t *testing.T) {
		set, m := newSet(t)
		m.mailer.EXPECT().Send(gomock.Any(), email).Return(nil)

		require.NoError(t, set.Email.Work(context.Background(), makeJob(1, tasks.SendEmailArgs{Email: email})))
	})

	t.Run("transient failure retries", func(t *testing.T) {
		set, m := newSet(t)
		m.mailer.EXPECT().Send(gomock.Any(), email).Return(errors.New("connection refused"))

		err := set.Email.Work(context.Background(), makeJob(2, tasks.SendEmailArgs{Email: email}))
		require.Error(t, err)
		var cancelErr *river.JobCancelError
		require.False(t, errors.As(err, &cancelErr))
	})

	t.Run("permanent failure cancels", func(t *testing.T) {
		set, m := newSet(t)
		m.mailer.EXPECT().Send(gomock.Any(), email).Return(serrors.With(serrors.ErrBadRequest, "mailbox unavailable"))

		err := set.Email.Work(context.Background(), makeJob(3, tasks.SendEmailArgs{Email: email}))
		var cancelErr *river.JobCancelError
		require.ErrorAs(t, err, &cancelErr)
	})
}

func TestNotificationWorker_Work(t *testing.T) {
	set, m := newSet(t)
	n := domain.Notification{UserID: domain.NewID[domain.UserID](), Type: domain.NotificationTypeWelcome, Title: "Welcome"}

	m.storage.EXPECT().StoreNotifications(gomock.Any(), n).Return([]domain.Notification{n}, nil)
	require.NoError(t, set.Notification.Work(context.Background(), makeJob(1, tasks.CreateNotificationArgs{Notification: n})))

	m.storage.EXPECT().StoreNotifications(gomock.Any(), n).Return(nil, errors.New("db down"))
	require.Error(t, set.Notification.Work(context.Background(), makeJob(2, tasks.CreateNotificationArgs{Notification: n})))
}

func TestGeocodeWorker_Work(t *testing.T) {
	business := &domain.Business{
		ID:           domain.NewID[domain.BusinessID](),
		Address:      "San Jose St",
		Municipality: "Virac",
	}
	args := tasks.GeocodeBusinessArgs{BusinessID: business.ID}
	point := domain.Coordinates{Latitude: 13.58, Longitude: 124.23}

	t.Run("stores first match", func(t *testing.T) {
		set, m := newSet(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)
		m.geocoder.EXPECT().Search(gomock.Any(), "San Jose St, Virac, Catanduanes, Philippines", 1).
			Return([]domain.Place{{DisplayName: "San Jose St", Point: point}}, nil)
		m.storage.EXPECT().UpdateBusiness(gomock.Any(), business.ID, storage.BusinessUpdates{Location: &point}).
			Return(business, nil)

		require.NoError(t, set.Geocode.Work(context.Background(), makeJob(1, args)))
	})

	t.Run("falls back to municipality", func(t *testing.T) {
		set, m := newSet(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)
		gomock.InOrder(
			m.geocoder.EXPECT().Search(gomock.Any(), "San Jose St, Virac, Catanduanes, Philippines", 1).Return(nil, nil),
			m.geocoder.EXPECT().Search(gomock.Any(), "Virac, Catanduanes, Philippines", 1).
				Return([]domain.Place{{DisplayName: "Virac", Point: point}}, nil),
		)
		m.storage.EXPECT().UpdateBusiness(gomock.Any(), business.ID, gomock.Any()).Return(business, nil)

		require.NoError(t, set.Geocode.Work(context.Background(), makeJob(2, args)))
	})

	t.Run("no match completes", func(t *testing.T) {
		set, m := newSet(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)
		m.geocoder.EXPECT().Search(gomock.Any(), gomock.Any(), 1).Return(nil, nil).Times(2)

		require.NoError(t, set.Geocode.Work(context.Background(), makeJob(3, args)))
	})

	t.Run("missing business cancels", func(t *testing.T) {
		set, m := newSet(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(nil, nil)

		err := set.Geocode.Work(context.Background(), makeJob(4, args))
		var cancelErr *river.JobCancelError
		require.ErrorAs(t, err, &cancelErr)
	})

	t.Run("rate limited snoozes", func(t *testing.T) {
		set, m := newSet(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)
		m.geocoder.EXPECT().Search(gomock.Any(), gomock.Any(), 1).
			Return(nil, serrors.With(serrors.ErrRateLimited, "slow down"))

		err := set.Geocode.Work(context.Background(), makeJob(5, args))
		var snoozeErr *river.JobSnoozeError
		require.ErrorAs(t, err, &snoozeErr)
		require.Equal(t, worker.GeocodeSnooze, snoozeErr.Duration)
	})

	t.Run("provider failure retries", func(t *testing.T) {
		set, m := newSet(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)
		m.geocoder.EXPECT().Search(gomock.Any(), gomock.Any(), 1).
			Return(nil, serrors.With(serrors.ErrUnavailable, "breaker open"))

		err := set.Geocode.Work(context.Background(), makeJob(6, args))
		require.ErrorIs(t, err, serrors.ErrUnavailable)
	})
}

func TestLocal_Run(t *testing.T) {
	set, m := newSet(t)
	local := worker.NewLocal(set)

	email := domain.Email{To: "ana@example.com", Subject: "Hi"}
	m.mailer.EXPECT().Send(gomock.Any(), email).Return(nil)
	require.NoError(t, local.Run(context.Background(), tasks.SendEmailArgs{Email: email}))

	n := domain.Notification{Title: "Hi"}
	m.storage.EXPECT().StoreNotifications(gomock.Any(), n).Return([]domain.Notification{n}, nil)
	require.NoError(t, local.Run(context.Background(), tasks.CreateNotificationArgs{Notification: n}))

	id := domain.NewID[domain.BusinessID]()
	m.storage.EXPECT().BusinessByID(gomock.Any(), id).Return(nil, nil)
	require.Error(t, local.Run(context.Background(), tasks.GeocodeBusinessArgs{BusinessID: id}))
}

type unknownArgs struct{}

func (unknownArgs) Kind() string { return "unknown" }

func TestLocal_Run_unknownKind(t *testing.T) {
	set, _ := newSet(t)

	require.Error(t, worker.NewLocal(set).Run(context.Background(), unknownArgs{}))
}
