package marketplace_test

import (
	"catconnect/internal/marketplace"
	mockmarketplace "catconnect/internal/marketplace/mock"
	"catconnect/internal/tasks"
	"catconnect/pkg/domain"
	mockkv "catconnect/pkg/kv/mock"
	"catconnect/pkg/logger"
	"catconnect/pkg/storage"
	mockstorage "catconnect/pkg/storage/mock"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) //nolint: gochecknoglobals

type mocks struct {
	storage *mockstorage.MockStorage
	tasks   *mockmarketplace.MockTaskDispatcher
	otp     *mockkv.MockOTPStore
}

func newMarketplace(t *testing.T) (*marketplace.Marketplace, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		storage: mockstorage.NewMockStorage(ctrl),
		tasks:   mockmarketplace.NewMockTaskDispatcher(ctrl),
		otp:     mockkv.NewMockOTPStore(ctrl),
	}

	mp := marketplace.New(marketplace.Deps{Storage: m.storage, Tasks: m.tasks, OTP: m.otp}, marketplace.Options{
		BcryptCost:        bcrypt.MinCost,
		OTPTTL:            10 * time.Minute,
		OTPMaxAttempts:    3,
		OTPResendCooldown: time.Minute,
		DefaultPageSize:   20,
		PublicURL:         "https://catconnect.test/",
	})
	marketplace.SetClock(mp, func() time.Time { return now })

	return mp, m
}

// inTx runs WithTx callbacks against the same mock.
func (m mocks) inTx() {
	m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error { return cb(m.storage) })
}

// captureTasks records every dispatched task.
func (m mocks) captureTasks() *[]river.JobArgs {
	var dispatched []river.JobArgs
	m.tasks.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args river.JobArgs) tasks.Route {
			dispatched = append(dispatched, args)

			return tasks.RouteQueue
		}).AnyTimes()

	return &dispatched
}

func kinds(args []river.JobArgs) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, a.Kind())
	}

	return out
}

func principal(role domain.Role) domain.Principal {
	return domain.Principal{UserID: domain.UserID(uuid.New()), Role: role}
}

func approvedBusiness(owner domain.UserID) *domain.Business {
	return &domain.Business{
		ID:           domain.BusinessID(uuid.New()),
		OwnerID:      owner,
		Name:         "Bato Bakery",
		Municipality: "Bato",
		Address:      "Rizal St.",
		Status:       domain.BusinessStatusApproved,
	}
}

func TestPageRequest(t *testing.T) {
	mp, m := newMarketplace(t)
	p := principal(domain.RoleJobSeeker)

	t.Run("default limit and cursor", func(t *testing.T) {
		cursor := now.Add(-time.Hour)
		m.storage.EXPECT().UserNotifications(gomock.Any(), p.UserID, false,
			storage.PageQuery{Cursor: storage.Cursor{CreatedAt: cursor}, Limit: 20}).Return(storage.Page[domain.Notification]{}, nil)

		_, err := mp.Notifications.List(context.Background(), p, false,
			marketplace.PageRequest{Cursor: cursor.Format(time.RFC3339Nano)})
		require.NoError(t, err)
	})

	t.Run("limit too large", func(t *testing.T) {
		_, err := mp.Notifications.List(context.Background(), p, false, marketplace.PageRequest{Limit: 101})
		require.ErrorContains(t, err, "limit must be at most 100")
	})

	t.Run("invalid cursor", func(t *testing.T) {
		_, err := mp.Notifications.List(context.Background(), p, false, marketplace.PageRequest{Cursor: "yesterday"})
		require.ErrorContains(t, err, "invalid cursor")
	})
}
