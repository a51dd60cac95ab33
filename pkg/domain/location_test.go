package domain_test

import (
	"catconnect/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalMunicipality(t *testing.T) {
	got, ok := domain.CanonicalMunicipality("  san andres ")
	require.True(t, ok)
	require.Equal(t, "San Andres", got)

	_, ok = domain.CanonicalMunicipality("Legazpi")
	require.False(t, ok)
}

func TestApplicationStatus_Open(t *testing.T) {
	require.True(t, domain.ApplicationStatusPending.Open())
	require.True(t, domain.ApplicationStatusReviewed.Open())
	require.False(t, domain.ApplicationStatusAccepted.Open())
	require.False(t, domain.ApplicationStatusWithdrawn.Open())
}

func TestPrincipal(t *testing.T) {
	require.True(t, domain.Principal{}.Anonymous())
	require.True(t, domain.Principal{Role: domain.RoleAdmin}.IsAdmin())
	require.False(t, domain.Role("root").Valid())
}
