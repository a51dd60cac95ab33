package assistant

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
)

const maxChatMessageLength = 2000

const chatPrompt = "You are the help desk of Catanduanes Connect, a marketplace for jobs, local businesses " +
	"and services in the province of Catanduanes, Philippines. Answer briefly and stay on topic."

// chatLocks serializes the turns of a user, which would otherwise read the
// same history and overwrite each other's save. Users share a stripe.
type chatLocks [64]sync.Mutex

func (l *chatLocks) lock(id domain.UserID) func() {
	m := &l[int(id[len(id)-1])%len(l)]
	m.Lock()

	return m.Unlock
}

// Chat sends message to the language model together with the remembered
// conversation of p and returns the reply. The conversation is only extended
// when the model answered.
func (a *Assistant) Chat(ctx context.Context, p domain.Principal, message string) (*domain.ChatReply, error) {
	if p.Anonymous() {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "message is required")
	}
	if utf8.RuneCountInString(message) > maxChatMessageLength {
		return nil, serrors.With(serrors.ErrBadRequest, "message must be at most %d characters", maxChatMessageLength)
	}
	if a.llm == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "assistant is not available")
	}

	defer a.chatLocks.lock(p.UserID)()

	history, err := a.chats.ChatHistory(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get chat history: %w", err)
	}

	asked := a.message(domain.ChatRoleUser, message)
	conversation := make([]domain.ChatMessage, 0, len(history)+2)
	conversation = append(conversation, domain.ChatMessage{Role: domain.ChatRoleSystem, Content: chatPrompt})
	conversation = append(conversation, history...)
	conversation = append(conversation, asked)

	reply, err := a.llm.Complete(ctx, conversation)
	if err != nil {
		logger.Warn(ctx, "assistant reply failed", zap.Error(err))
		if errors.Is(err, serrors.ErrRateLimited) {
			return nil, serrors.Wrap(serrors.ErrRateLimited, err, "assistant is busy, try again shortly")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "assistant is not available right now")
	}

	history = trimHistory(append(history, asked, a.message(domain.ChatRoleAssistant, reply)), a.opts.ChatMaxTurns)
	if err := a.chats.SaveChatHistory(ctx, p.UserID, history, a.opts.ChatHistoryTTL); err != nil {
		logger.Warn(ctx, "could not save chat history", zap.Error(err))
	}

	return &domain.ChatReply{Reply: reply, History: history}, nil
}

// ResetChat forgets the conversation of p.
func (a *Assistant) ResetChat(ctx context.Context, p domain.Principal) error {
	if p.Anonymous() {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}

	defer a.chatLocks.lock(p.UserID)()
	if err := a.chats.DeleteChatHistory(ctx, p.UserID); err != nil {
		return fmt.Errorf("could not delete chat history: %w", err)
	}

	return nil
}

// trimHistory keeps the last maxTurns turns.
func trimHistory(history []domain.ChatMessage, maxTurns int) []domain.ChatMessage {
	if limit := maxTurns * 2; len(history) > limit {
		return history[len(history)-limit:]
	}

	return history
}
