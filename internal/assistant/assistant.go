// Package assistant implements the AI assisted features of the marketplace:
// a conversational helper, resume to job matching and location suggestions.
// Every feature keeps working in a reduced form when the language model or
// the geocoder is unavailable, except the chat which reports it.
package assistant

import (
	"catconnect/internal/config"
	"catconnect/pkg/domain"
	"catconnect/pkg/geocoder"
	"catconnect/pkg/kv"
	"catconnect/pkg/llm"
	"catconnect/pkg/storage"
	"time"
)

// Options configure the assistant.
type Options struct {
	// ChatHistoryTTL is how long an idle conversation is remembered.
	ChatHistoryTTL time.Duration
	// ChatMaxTurns bounds the remembered conversation; a turn is one user
	// message and its reply.
	ChatMaxTurns int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ChatHistoryTTL: cfg.Marketplace.ChatHistoryTTL,
		ChatMaxTurns:   cfg.Marketplace.ChatMaxTurns,
	}
}

// Deps are the collaborators of the assistant. LLM and Geocoder may be nil.
type Deps struct {
	LLM      llm.Client
	Geocoder geocoder.Client
	Chats    kv.ChatStore
	Jobs     storage.JobStorage
}

type Assistant struct {
	llm      llm.Client
	geocoder geocoder.Client
	chats    kv.ChatStore
	jobs     storage.JobStorage
	opts     Options
	now      func() time.Time

	chatLocks chatLocks
}

func New(deps Deps, opts Options) *Assistant {
	if opts.ChatHistoryTTL <= 0 {
		opts.ChatHistoryTTL = 2 * time.Hour
	}
	if opts.ChatMaxTurns <= 0 {
		opts.ChatMaxTurns = 20
	}

	return &Assistant{
		llm:      deps.LLM,
		geocoder: deps.Geocoder,
		chats:    deps.Chats,
		jobs:     deps.Jobs,
		opts:     opts,
		now:      time.Now,
	}
}

func (a *Assistant) message(role domain.ChatRole, content string) domain.ChatMessage {
	return domain.ChatMessage{Role: role, Content: content, CreatedAt: a.now().UTC()}
}
