package marketplace

import (
	"catconnect/internal/tasks"
	"catconnect/pkg/domain"
	"catconnect/pkg/kv"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"catconnect/pkg/storage"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const otpDigits = 6

// OTPChallenge describes a passcode that was just sent.
type OTPChallenge struct {
	Method      domain.ContactMethod `json:"method"`
	Target      string               `json:"target"`
	ExpiresAt   time.Time            `json:"expiresAt"`
	ResendAfter time.Time            `json:"resendAfter"`
}

// VerificationService verifies contact methods with one-time passcodes.
type VerificationService struct {
	*base
}

// RequestOTP sends a new passcode for method, replacing any pending one.
// Verified targets are rejected and requests within the resend cooldown are
// rate limited. Only email delivery is available.
func (s *VerificationService) RequestOTP(ctx context.Context,
	p domain.Principal,
	method domain.ContactMethod) (*OTPChallenge, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}

	user, err := s.user(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	switch method {
	case domain.ContactMethodEmail:
		if user.EmailVerified {
			return nil, serrors.With(serrors.ErrConflict, "email is already verified")
		}
	case domain.ContactMethodPhone:
		if user.Phone == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "no phone number on profile")
		}
		if user.PhoneVerified {
			return nil, serrors.With(serrors.ErrConflict, "phone is already verified")
		}

		return nil, serrors.With(serrors.ErrUnavailable, "phone verification is not available yet")
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown contact method %q", method)
	}

	now := s.now()
	pending, err := s.otp.Verification(ctx, user.ID, method)
	if err != nil {
		return nil, fmt.Errorf("could not get pending verification: %w", err)
	}
	if pending != nil && now.Sub(pending.LastSentAt) < s.opts.OTPResendCooldown {
		wait := pending.LastSentAt.Add(s.opts.OTPResendCooldown).Sub(now).Round(time.Second)

		return nil, serrors.With(serrors.ErrRateLimited, "wait %s before requesting another code", wait)
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash code: %w", err)
	}

	v := domain.Verification{
		UserID:     user.ID,
		Method:     method,
		Target:     user.Email,
		CodeHash:   string(hash),
		ExpiresAt:  now.Add(s.opts.OTPTTL),
		LastSentAt: now,
	}
	if err := s.otp.SaveVerification(ctx, v, s.opts.OTPTTL); err != nil {
		return nil, fmt.Errorf("could not save verification: %w", err)
	}

	// the plain code must not be persisted with the queued job
	s.dispatch(ctx, tasks.SendEmailArgs{Secret: true, Email: domain.Email{
		To:      v.Target,
		Subject: "Your Catanduanes Connect verification code",
		Text: fmt.Sprintf("Your verification code is %s. It expires in %s.\n\nIf you did not request it, ignore this email.\n",
			code, s.opts.OTPTTL),
	}})
	logger.Info(ctx, "verification code sent", zap.Stringer("userID", user.ID), zap.String("method", string(method)))

	return &OTPChallenge{
		Method:      method,
		Target:      maskEmail(v.Target),
		ExpiresAt:   v.ExpiresAt,
		ResendAfter: now.Add(s.opts.OTPResendCooldown),
	}, nil
}

// ConfirmOTP checks code against the pending challenge. Every confirmation
// uses one attempt; once the budget is exhausted the challenge is discarded.
func (s *VerificationService) ConfirmOTP(ctx context.Context,
	p domain.Principal,
	method domain.ContactMethod,
	code string) (*domain.User, error) {
	if err := requireSignedIn(p); err != nil {
		return nil, err
	}

	// the attempt is spent before the code is compared so concurrent guesses
	// cannot share one
	v, err := s.otp.ConsumeAttempt(ctx, p.UserID, method, s.opts.OTPMaxAttempts)
	if errors.Is(err, kv.ErrAttemptsExhausted) {
		return nil, serrors.With(serrors.ErrRateLimited, "too many attempts, request a new code")
	}
	if err != nil {
		return nil, fmt.Errorf("could not use verification attempt: %w", err)
	}
	if v == nil || v.Expired(s.now()) {
		return nil, serrors.With(serrors.ErrNotFound, "no pending verification, request a new code")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(v.CodeHash), []byte(strings.TrimSpace(code))); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, fmt.Errorf("could not compare code: %w", err)
		}
		if v.Attempts >= s.opts.OTPMaxAttempts {
			s.discard(ctx, v)

			return nil, serrors.With(serrors.ErrRateLimited, "too many attempts, request a new code")
		}

		return nil, serrors.With(serrors.ErrBadRequest, "invalid code, %d attempts left", s.opts.OTPMaxAttempts-v.Attempts)
	}

	s.discard(ctx, v)

	verified := true
	updates := storage.UserUpdates{EmailVerified: &verified}
	if method == domain.ContactMethodPhone {
		updates = storage.UserUpdates{PhoneVerified: &verified}
	}
	user, err := s.storage.UpdateUser(ctx, p.UserID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not mark user verified: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	s.notify(ctx, domain.Notification{
		UserID:  user.ID,
		Type:    domain.NotificationTypeVerification,
		Title:   "Verification complete",
		Message: fmt.Sprintf("Your %s has been verified.", method),
		Link:    "/me",
	})

	return user, nil
}

func (s *VerificationService) discard(ctx context.Context, v *domain.Verification) {
	if err := s.otp.DeleteVerification(ctx, v.UserID, v.Method); err != nil {
		logger.Warn(ctx, "could not delete verification", zap.Error(err))
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("could not generate code: %w", err)
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

// maskEmail keeps the first letter of the local part: j***@example.com.
func maskEmail(email string) string {
	local, domainPart, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	return local[:1] + "***@" + domainPart
}
