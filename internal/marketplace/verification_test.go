package marketplace_test

import (
	"catconnect/internal/marketplace"
	mockmarketplace "catconnect/internal/marketplace/mock"
	"catconnect/internal/tasks"
	"catconnect/pkg/domain"
	"catconnect/pkg/kv"
	"catconnect/pkg/kv/badgerkv"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	mockstorage "catconnect/pkg/storage/mock"
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestVerificationService_RequestOTP(t *testing.T) {
	p := principal(domain.RoleJobSeeker)
	user := &domain.User{ID: p.UserID, Email: "ana@example.com", Phone: "+639171234567"}

	t.Run("emails a code", func(t *testing.T) {
		mp, m := newMarketplace(t)
		dispatched := m.captureTasks()

		m.storage.EXPECT().UserByID(gomock.Any(), p.UserID).Return(user, nil)
		m.otp.EXPECT().Verification(gomock.Any(), p.UserID, domain.ContactMethodEmail).Return(nil, nil)

		var saved domain.Verification
		m.otp.EXPECT().SaveVerification(gomock.Any(), gomock.Any(), 10*time.Minute).DoAndReturn(
			func(_ context.Context, v domain.Verification, _ time.Duration) error {
				saved = v

				return nil
			})

		challenge, err := mp.Verifications.RequestOTP(context.Background(), p, domain.ContactMethodEmail)
		require.NoError(t, err)
		require.Equal(t, "a***@example.com", challenge.Target)
		require.Equal(t, now.Add(10*time.Minute), challenge.ExpiresAt)
		require.Equal(t, now.Add(time.Minute), challenge.ResendAfter)

		require.Equal(t, []string{"send_email"}, kinds(*dispatched))
		sent := (*dispatched)[0].(tasks.SendEmailArgs)
		require.True(t, sent.InProcessOnly(), "passcodes stay out of the queue")
		email := sent.Email
		code := regexp.MustCompile(`\b\d{6}\b`).FindString(email.Text)
		require.NotEmpty(t, code)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.CodeHash), []byte(code)))
		require.Equal(t, now, saved.LastSentAt)
		require.Zero(t, saved.Attempts)
	})

	t.Run("cooldown", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.storage.EXPECT().UserByID(gomock.Any(), p.UserID).Return(user, nil)
		m.otp.EXPECT().Verification(gomock.Any(), p.UserID, domain.ContactMethodEmail).Return(
			&domain.Verification{LastSentAt: now.Add(-20 * time.Second)}, nil)

		_, err := mp.Verifications.RequestOTP(context.Background(), p, domain.ContactMethodEmail)
		require.ErrorIs(t, err, serrors.ErrRateLimited)
		require.ErrorContains(t, err, "wait 40s")
	})

	t.Run("already verified", func(t *testing.T) {
		mp, m := newMarketplace(t)
		verified := *user
		verified.EmailVerified = true
		m.storage.EXPECT().UserByID(gomock.Any(), p.UserID).Return(&verified, nil)

		_, err := mp.Verifications.RequestOTP(context.Background(), p, domain.ContactMethodEmail)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("phone delivery unavailable", func(t *testing.T) {
		mp, m := newMarketplace(t)
		m.storage.EXPECT().UserByID(gomock.Any(), p.UserID).Return(user, nil)

		_, err := mp.Verifications.RequestOTP(context.Background(), p, domain.ContactMethodPhone)
		require.ErrorIs(t, err, serrors.ErrUnavailable)
	})
}

func TestVerificationService_ConfirmOTP(t *testing.T) {
	p := principal(domain.RoleJobSeeker)
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	pending := func(attempts int) *domain.Verification {
		return &domain.Verification{
			UserID:     p.UserID,
			Method:     domain.ContactMethodEmail,
			Target:     "ana@example.com",
			CodeHash:   string(hash),
			Attempts:   attempts,
			ExpiresAt:  now.Add(5 * time.Minute),
			LastSentAt: now.Add(-5 * time.Minute),
		}
	}

	consume := func(m mocks) *gomock.Call {
		return m.otp.EXPECT().ConsumeAttempt(gomock.Any(), p.UserID, domain.ContactMethodEmail, 3)
	}

	t.Run("correct code", func(t *testing.T) {
		mp, m := newMarketplace(t)
		dispatched := m.captureTasks()

		verified := true
		consume(m).Return(pending(1), nil)
		m.otp.EXPECT().DeleteVerification(gomock.Any(), p.UserID, domain.ContactMethodEmail).Return(nil)
		m.storage.EXPECT().UpdateUser(gomock.Any(), p.UserID, storage.UserUpdates{EmailVerified: &verified}).
			Return(&domain.User{ID: p.UserID, EmailVerified: true}, nil)

		user, err := mp.Verifications.ConfirmOTP(context.Background(), p, domain.ContactMethodEmail, " 123456 ")
		require.NoError(t, err)
		require.True(t, user.EmailVerified)
		require.Equal(t, []string{"create_notification"}, kinds(*dispatched))
	})

	t.Run("wrong code uses an attempt", func(t *testing.T) {
		mp, m := newMarketplace(t)
		consume(m).Return(pending(1), nil)

		_, err := mp.Verifications.ConfirmOTP(context.Background(), p, domain.ContactMethodEmail, "000000")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.ErrorContains(t, err, "2 attempts left")
	})

	t.Run("last wrong attempt discards the challenge", func(t *testing.T) {
		mp, m := newMarketplace(t)
		consume(m).Return(pending(3), nil)
		m.otp.EXPECT().DeleteVerification(gomock.Any(), p.UserID, domain.ContactMethodEmail).Return(nil)

		_, err := mp.Verifications.ConfirmOTP(context.Background(), p, domain.ContactMethodEmail, "000000")
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})

	t.Run("budget already exhausted", func(t *testing.T) {
		mp, m := newMarketplace(t)
		consume(m).Return(nil, kv.ErrAttemptsExhausted)

		_, err := mp.Verifications.ConfirmOTP(context.Background(), p, domain.ContactMethodEmail, "123456")
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})

	t.Run("nothing pending", func(t *testing.T) {
		mp, m := newMarketplace(t)
		consume(m).Return(nil, nil)

		_, err := mp.Verifications.ConfirmOTP(context.Background(), p, domain.ContactMethodEmail, "123456")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		mp, m := newMarketplace(t)
		v := pending(1)
		v.ExpiresAt = now.Add(-time.Second)
		consume(m).Return(v, nil)

		_, err := mp.Verifications.ConfirmOTP(context.Background(), p, domain.ContactMethodEmail, "123456")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestVerificationService_ConfirmOTPConcurrentGuesses(t *testing.T) {
	ctx := context.Background()
	store, err := badgerkv.Open(ctx, badgerkv.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctrl := gomock.NewController(t)
	mp := marketplace.New(marketplace.Deps{
		Storage: mockstorage.NewMockStorage(ctrl),
		Tasks:   mockmarketplace.NewMockTaskDispatcher(ctrl),
		OTP:     store,
	}, marketplace.Options{BcryptCost: bcrypt.MinCost, OTPTTL: 10 * time.Minute, OTPMaxAttempts: 3})
	marketplace.SetClock(mp, func() time.Time { return now })

	p := principal(domain.RoleJobSeeker)
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.SaveVerification(ctx, domain.Verification{
		UserID:    p.UserID,
		Method:    domain.ContactMethodEmail,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(10 * time.Minute),
	}, 10*time.Minute))

	const guesses = 50
	errs := make(chan error, guesses)
	var wg sync.WaitGroup
	for range guesses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mp.Verifications.ConfirmOTP(ctx, p, domain.ContactMethodEmail, "000000")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var evaluated int
	for err := range errs {
		require.Error(t, err)
		if errors.Is(err, serrors.ErrBadRequest) {
			evaluated++
		}
	}
	require.LessOrEqual(t, evaluated, 2, "wrong codes answered with attempts left")

	left, err := store.Verification(ctx, p.UserID, domain.ContactMethodEmail)
	require.NoError(t, err)
	require.Nil(t, left, "challenge is discarded once the budget is spent")
}
