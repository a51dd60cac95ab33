// Package llm defines access to a chat completion language model.
package llm

import (
	"catconnect/pkg/domain"
	"context"
)

// Client produces the next assistant message for a conversation.
//
// Implementations report provider outages as serrors.ErrUnavailable and
// throttling as serrors.ErrRateLimited.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Client interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
