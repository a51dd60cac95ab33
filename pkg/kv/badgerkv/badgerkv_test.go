package badgerkv_test

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/kv"
	"catconnect/pkg/kv/badgerkv"
	"catconnect/pkg/logger"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func openStore(t *testing.T, dir string) *badgerkv.Store {
	t.Helper()
	s, err := badgerkv.Open(context.Background(), badgerkv.Options{Dir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_Verification(t *testing.T) {
	s := openStore(t, "")
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	got, err := s.Verification(ctx, userID, domain.ContactMethodEmail)
	require.NoError(t, err)
	require.Nil(t, got)

	v := domain.Verification{
		UserID:     userID,
		Method:     domain.ContactMethodEmail,
		Target:     "maria@example.com",
		CodeHash:   "hash",
		Attempts:   1,
		ExpiresAt:  time.Now().Add(time.Minute).UTC(),
		LastSentAt: time.Now().UTC(),
	}
	require.NoError(t, s.SaveVerification(ctx, v, time.Minute))

	got, err = s.Verification(ctx, userID, domain.ContactMethodEmail)
	require.NoError(t, err)
	require.Equal(t, v.Target, got.Target)
	require.Equal(t, 1, got.Attempts)
	require.True(t, v.ExpiresAt.Equal(got.ExpiresAt))

	other, err := s.Verification(ctx, userID, domain.ContactMethodPhone)
	require.NoError(t, err)
	require.Nil(t, other, "challenges are scoped per method")

	require.NoError(t, s.DeleteVerification(ctx, userID, domain.ContactMethodEmail))
	got, err = s.Verification(ctx, userID, domain.ContactMethodEmail)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_ConsumeAttempt(t *testing.T) {
	s := openStore(t, "")
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	got, err := s.ConsumeAttempt(ctx, userID, domain.ContactMethodEmail, 2)
	require.NoError(t, err)
	require.Nil(t, got, "nothing pending")

	require.NoError(t, s.SaveVerification(ctx, domain.Verification{
		UserID:   userID,
		Method:   domain.ContactMethodEmail,
		CodeHash: "hash",
	}, time.Hour))

	for want := 1; want <= 2; want++ {
		got, err = s.ConsumeAttempt(ctx, userID, domain.ContactMethodEmail, 2)
		require.NoError(t, err)
		require.Equal(t, want, got.Attempts)
		require.Equal(t, "hash", got.CodeHash)
	}

	_, err = s.ConsumeAttempt(ctx, userID, domain.ContactMethodEmail, 2)
	require.ErrorIs(t, err, kv.ErrAttemptsExhausted)

	left, err := s.Verification(ctx, userID, domain.ContactMethodEmail)
	require.NoError(t, err)
	require.Nil(t, left, "an exhausted challenge is deleted")
}

func TestStore_ConsumeAttemptConcurrent(t *testing.T) {
	s := openStore(t, "")
	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	require.NoError(t, s.SaveVerification(ctx, domain.Verification{UserID: userID, Method: domain.ContactMethodEmail},
		time.Hour))

	const maxAttempts, callers = 5, 40
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		reserved []int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.ConsumeAttempt(ctx, userID, domain.ContactMethodEmail, maxAttempts)
			if err != nil || v == nil {
				return
			}
			mu.Lock()
			reserved = append(reserved, v.Attempts)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, len(reserved), maxAttempts)
	seen := map[int]bool{}
	for _, a := range reserved {
		require.False(t, seen[a], "attempt %d handed out twice", a)
		seen[a] = true
	}
}

func TestStore_ConsumeAttemptKeepsExpiry(t *testing.T) {
	s := openStore(t, "")
	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	require.NoError(t, s.SaveVerification(ctx, domain.Verification{UserID: userID, Method: domain.ContactMethodEmail},
		time.Second))

	_, err := s.ConsumeAttempt(ctx, userID, domain.ContactMethodEmail, 3)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := s.Verification(ctx, userID, domain.ContactMethodEmail)

		return err == nil && got == nil
	}, 5*time.Second, 100*time.Millisecond)
}

func TestStore_TTL(t *testing.T) {
	s := openStore(t, "")
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	require.NoError(t, s.SaveVerification(ctx, domain.Verification{UserID: userID, Method: domain.ContactMethodEmail},
		time.Second))

	require.Eventually(t, func() bool {
		got, err := s.Verification(ctx, userID, domain.ContactMethodEmail)

		return err == nil && got == nil
	}, 5*time.Second, 100*time.Millisecond)
}

func TestStore_ChatHistory(t *testing.T) {
	s := openStore(t, t.TempDir())
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	history, err := s.ChatHistory(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, history)

	msgs := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "Where can I find a plumber in Virac?"},
		{Role: domain.ChatRoleAssistant, Content: "Check the services listing."},
	}
	require.NoError(t, s.SaveChatHistory(ctx, userID, msgs, time.Hour))

	history, err = s.ChatHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, domain.ChatRoleAssistant, history[1].Role)

	require.NoError(t, s.DeleteChatHistory(ctx, userID))
	history, err = s.ChatHistory(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestStore_Serve(t *testing.T) {
	s := openStore(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
