package storage_test

import (
	"catconnect/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	c := storage.Cursor{
		CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 123456000, time.UTC),
		ID:        uuid.MustParse("0b6d2f0e-3a51-4c1b-9c43-6a4f1f3f2b10"),
	}
	require.Equal(t, "2026-03-01T08:00:00.123456Z_0b6d2f0e-3a51-4c1b-9c43-6a4f1f3f2b10", c.String())

	got, err := storage.ParseCursor(c.String())
	require.NoError(t, err)
	require.True(t, c.CreatedAt.Equal(got.CreatedAt))
	require.Equal(t, c.ID, got.ID)
}

func TestParseCursor(t *testing.T) {
	got, err := storage.ParseCursor("2026-03-01T08:00:00Z")
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, got.ID, "a bare timestamp only compares creation times")
	require.Equal(t, "2026-03-01T08:00:00Z", got.String())

	for _, bad := range []string{"yesterday", "2026-03-01T08:00:00Z_not-a-uuid", "_0b6d2f0e-3a51-4c1b-9c43-6a4f1f3f2b10"} {
		_, err := storage.ParseCursor(bad)
		require.Error(t, err, bad)
	}

	require.True(t, storage.Cursor{}.IsZero())
}
