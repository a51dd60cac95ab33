package marketplace_test

import (
	"catconnect/internal/marketplace"
	"catconnect/internal/tasks"
	"catconnect/pkg/domain"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBusinessService_Register(t *testing.T) {
	owner := principal(domain.RoleBusinessOwner)
	in := marketplace.BusinessInput{
		Name:         "Bato Bakery",
		Category:     "Food",
		PermitNumber: " bp-2026-001 ",
		Address:      "Rizal St.",
		Municipality: "bato",
	}

	t.Run("pending until moderated", func(t *testing.T) {
		mp, m := newMarketplace(t)
		dispatched := m.captureTasks()
		id := domain.BusinessID(uuid.New())
		admins := []domain.User{{ID: domain.UserID(uuid.New())}, {ID: domain.UserID(uuid.New())}}

		m.storage.EXPECT().BusinessByPermitNumber(gomock.Any(), "BP-2026-001").Return(nil, nil)
		m.storage.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b domain.Business) (*domain.Business, error) {
				require.Equal(t, domain.BusinessStatusPending, b.Status)
				require.Equal(t, owner.UserID, b.OwnerID)
				require.Equal(t, "Bato", b.Municipality)
				b.ID = id

				return &b, nil
			})
		m.storage.EXPECT().ActiveUsersByRole(gomock.Any(), domain.RoleAdmin).Return(admins, nil)

		business, err := mp.Businesses.Register(context.Background(), owner, in)
		require.NoError(t, err)
		require.Equal(t, id, business.ID)
		require.Equal(t, []string{"geocode_business", "create_notification", "create_notification"}, kinds(*dispatched))
		require.Equal(t, tasks.GeocodeBusinessArgs{BusinessID: id}, (*dispatched)[0])
		require.Equal(t, admins[1].ID, (*dispatched)[2].(tasks.CreateNotificationArgs).Notification.UserID)
	})

	t.Run("job seekers cannot register", func(t *testing.T) {
		mp, _ := newMarketplace(t)

		_, err := mp.Businesses.Register(context.Background(), principal(domain.RoleJobSeeker), in)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("municipality outside Catanduanes", func(t *testing.T) {
		mp, _ := newMarketplace(t)
		outside := in
		outside.Municipality = "Legazpi"

		_, err := mp.Businesses.Register(context.Background(), owner, outside)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.ErrorContains(t, err, "municipality must be a municipality of Catanduanes")
	})

	t.Run("permit number taken", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.storage.EXPECT().BusinessByPermitNumber(gomock.Any(), "BP-2026-001").Return(&domain.Business{}, nil)

		_, err := mp.Businesses.Register(context.Background(), owner, in)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestBusinessService_Get(t *testing.T) {
	owner := principal(domain.RoleBusinessOwner)
	pending := approvedBusiness(owner.UserID)
	pending.Status = domain.BusinessStatusPending

	t.Run("pending is hidden from the public", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), pending.ID).Return(pending, nil)

		_, err := mp.Businesses.Get(context.Background(), principal(domain.RoleJobSeeker), pending.ID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("owner sees pending with rating", func(t *testing.T) {
		mp, m := newMarketplace(t)
		b := *pending
		m.storage.EXPECT().BusinessByID(gomock.Any(), pending.ID).Return(&b, nil)
		m.storage.EXPECT().RatingSummary(gomock.Any(), pending.ID).Return(domain.RatingSummary{Average: 4.5, Count: 2}, nil)

		got, err := mp.Businesses.Get(context.Background(), owner, pending.ID)
		require.NoError(t, err)
		require.Equal(t, &domain.RatingSummary{Average: 4.5, Count: 2}, got.Rating)
	})
}

func TestBusinessService_List(t *testing.T) {
	owner := principal(domain.RoleBusinessOwner)

	t.Run("public only sees approved", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.storage.EXPECT().ListBusinesses(gomock.Any(), storage.BusinessFilter{
			Status:       domain.BusinessStatusApproved,
			Municipality: "San Andres",
		}, storage.PageQuery{Limit: 20}).Return(storage.Page[domain.Business]{}, nil)

		_, err := mp.Businesses.List(context.Background(), domain.Principal{}, marketplace.BusinessFilter{
			Municipality: "san andres",
			Status:       domain.BusinessStatusRejected,
		}, marketplace.PageRequest{})
		require.NoError(t, err)
	})

	t.Run("owner lists every status of their businesses", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.storage.EXPECT().ListBusinesses(gomock.Any(), storage.BusinessFilter{OwnerID: &owner.UserID},
			storage.PageQuery{Limit: 5}).Return(storage.Page[domain.Business]{}, nil)

		_, err := mp.Businesses.List(context.Background(), owner, marketplace.BusinessFilter{OwnerID: &owner.UserID},
			marketplace.PageRequest{Limit: 5})
		require.NoError(t, err)
	})

	t.Run("unknown municipality", func(t *testing.T) {
		mp, _ := newMarketplace(t)

		_, err := mp.Businesses.List(context.Background(), owner, marketplace.BusinessFilter{Municipality: "Naga"},
			marketplace.PageRequest{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestBusinessService_Update(t *testing.T) {
	owner := principal(domain.RoleBusinessOwner)
	business := approvedBusiness(owner.UserID)

	t.Run("new address is geocoded", func(t *testing.T) {
		mp, m := newMarketplace(t)
		dispatched := m.captureTasks()
		address := "Santos St."
		updated := *business
		updated.Address = address

		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)
		m.storage.EXPECT().UpdateBusiness(gomock.Any(), business.ID, storage.BusinessUpdates{Address: &address}).
			Return(&updated, nil)

		_, err := mp.Businesses.Update(context.Background(), owner, business.ID, marketplace.BusinessUpdate{Address: &address})
		require.NoError(t, err)
		require.Equal(t, []string{"geocode_business"}, kinds(*dispatched))
	})

	t.Run("someone else", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)

		name := "Mine now"
		_, err := mp.Businesses.Update(context.Background(), principal(domain.RoleBusinessOwner), business.ID,
			marketplace.BusinessUpdate{Name: &name})
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestBusinessService_Delete(t *testing.T) {
	owner := principal(domain.RoleBusinessOwner)
	business := approvedBusiness(owner.UserID)

	mp, m := newMarketplace(t)
	m.inTx()
	m.storage.EXPECT().BusinessByID(gomock.Any(), business.ID).Return(business, nil)
	m.storage.EXPECT().DeleteBusiness(gomock.Any(), business.ID).Return(business, nil)
	m.storage.EXPECT().DeactivateBusinessJobs(gomock.Any(), business.ID).Return(int64(3), nil)

	require.NoError(t, mp.Businesses.Delete(context.Background(), owner, business.ID))
}

func TestBusinessService_Moderate(t *testing.T) {
	admin := principal(domain.RoleAdmin)
	owner := &domain.User{ID: domain.UserID(uuid.New()), Name: "Ben", Email: "ben@example.com"}
	business := approvedBusiness(owner.ID)
	business.Status = domain.BusinessStatusPending

	t.Run("reject closes jobs and tells the owner", func(t *testing.T) {
		mp, m := newMarketplace(t)
		dispatched := m.captureTasks()
		m.inTx()

		status, reason := domain.BusinessStatusRejected, "permit expired"
		rejected := *business
		rejected.Status = status
		m.storage.EXPECT().UpdateBusiness(gomock.Any(), business.ID, storage.BusinessUpdates{
			Status:           &status,
			ModerationReason: &reason,
		}).Return(&rejected, nil)
		m.storage.EXPECT().DeactivateBusinessJobs(gomock.Any(), business.ID).Return(int64(0), nil)
		m.storage.EXPECT().UserByID(gomock.Any(), owner.ID).Return(owner, nil)

		got, err := mp.Businesses.Moderate(context.Background(), admin, business.ID,
			marketplace.Moderation{Status: status, Reason: " permit expired "})
		require.NoError(t, err)
		require.Equal(t, status, got.Status)
		require.Equal(t, []string{"create_notification", "send_email"}, kinds(*dispatched))

		n := (*dispatched)[0].(tasks.CreateNotificationArgs).Notification
		require.Equal(t, owner.ID, n.UserID)
		require.Equal(t, "Reason: permit expired", n.Message)
		require.Equal(t, "ben@example.com", (*dispatched)[1].(tasks.SendEmailArgs).Email.To)
	})

	t.Run("rejection needs a reason", func(t *testing.T) {
		mp, _ := newMarketplace(t)

		_, err := mp.Businesses.Moderate(context.Background(), admin, business.ID,
			marketplace.Moderation{Status: domain.BusinessStatusRejected})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("admin only", func(t *testing.T) {
		mp, _ := newMarketplace(t)

		_, err := mp.Businesses.Moderate(context.Background(), principal(domain.RoleBusinessOwner), business.ID,
			marketplace.Moderation{Status: domain.BusinessStatusApproved})
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("unknown business", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.inTx()
		m.storage.EXPECT().UpdateBusiness(gomock.Any(), business.ID, gomock.Any()).Return(nil, nil)

		_, err := mp.Businesses.Moderate(context.Background(), admin, business.ID,
			marketplace.Moderation{Status: domain.BusinessStatusApproved})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
