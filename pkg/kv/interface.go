// Package kv defines short lived key value stores: pending one-time passcode
// challenges and assistant chat histories. Entries expire on their own.
//
//go:generate mockgen -package mockkv -source=interface.go -destination=mock/mockkv.go *
package kv

import (
	"catconnect/pkg/domain"
	"context"
	"errors"
	"time"
)

// ErrAttemptsExhausted is returned by ConsumeAttempt when the challenge had no
// attempts left. The challenge is deleted.
var ErrAttemptsExhausted = errors.New("verification attempts exhausted")

// OTPStore keeps at most one pending challenge per user and contact method.
type OTPStore interface {
	// SaveVerification stores v, replacing any pending challenge for the same
	// user and method, and expires it after ttl.
	SaveVerification(ctx context.Context, v domain.Verification, ttl time.Duration) error
	// Verification returns the pending challenge, or nil when there is none.
	Verification(ctx context.Context, userID domain.UserID, method domain.ContactMethod) (*domain.Verification, error)
	// ConsumeAttempt atomically uses one of maxAttempts attempts on the pending
	// challenge and returns it with Attempts including this one. It returns nil
	// when there is no challenge and ErrAttemptsExhausted once the budget is spent.
	ConsumeAttempt(ctx context.Context,
		userID domain.UserID,
		method domain.ContactMethod,
		maxAttempts int) (*domain.Verification, error)
	DeleteVerification(ctx context.Context, userID domain.UserID, method domain.ContactMethod) error
}

// ChatStore keeps the assistant conversation of each user.
type ChatStore interface {
	// ChatHistory returns the stored conversation, oldest first; empty when none.
	ChatHistory(ctx context.Context, userID domain.UserID) ([]domain.ChatMessage, error)
	SaveChatHistory(ctx context.Context, userID domain.UserID, history []domain.ChatMessage, ttl time.Duration) error
	DeleteChatHistory(ctx context.Context, userID domain.UserID) error
}
