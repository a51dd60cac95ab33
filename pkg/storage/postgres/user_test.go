package postgres_test

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/storage"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	u := createUser(t, pg, "maria@example.com", domain.RoleJobSeeker)
	require.NotEqual(t, uuid.Nil, uuid.UUID(u.ID))
	require.False(t, u.CreatedAt.IsZero())
	require.True(t, u.Active)
	require.False(t, u.EmailVerified)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := pg.CreateUser(ctx, domain.User{
			Email: "maria@example.com", PasswordHash: "x", Name: "Other", Role: domain.RoleJobSeeker,
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("lookup", func(t *testing.T) {
		got, err := pg.UserByEmail(ctx, "maria@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)

		got, err = pg.UserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "Virac", got.Municipality)

		got, err = pg.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("update", func(t *testing.T) {
		verified := true
		phone := "+639171234567"
		got, err := pg.UpdateUser(ctx, u.ID, storage.UserUpdates{EmailVerified: &verified, Phone: &phone})
		require.NoError(t, err)
		require.True(t, got.EmailVerified)
		require.Equal(t, phone, got.Phone)
		require.Equal(t, "Juan Dela Cruz", got.Name)
		require.False(t, got.UpdatedAt.IsZero())

		got, err = pg.UpdateUser(ctx, domain.UserID(uuid.New()), storage.UserUpdates{EmailVerified: &verified})
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("active users by role", func(t *testing.T) {
		admin := createUser(t, pg, "admin1@example.com", domain.RoleAdmin)
		inactive := createUser(t, pg, "admin2@example.com", domain.RoleAdmin)
		active := false
		_, err := pg.UpdateUser(ctx, inactive.ID, storage.UserUpdates{Active: &active})
		require.NoError(t, err)

		admins, err := pg.ActiveUsersByRole(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		require.Equal(t, admin.ID, admins[0].ID)
	})
}
