// Package openai provides an llm.Client implementation for OpenAI compatible
// chat completion APIs.
package openai

import (
	"bytes"
	"catconnect/pkg/domain"
	"catconnect/pkg/llm"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

var _ llm.Client = (*Client)(nil)

// Options configures the completion requests.
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Client calls POST {BaseURL}/chat/completions. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
	cb         *gobreaker.CircuitBreaker[string]
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &Client{
		httpClient: httpClient,
		opts:       opts,
		cb: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name:        "llm",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrRateLimited)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn(context.Background(), "circuit breaker state changed",
					zap.String("breaker", name), zap.Stringer("from", from), zap.Stringer("to", to))
			},
		}),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Complete sends messages and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", serrors.With(serrors.ErrBadRequest, "no messages")
	}

	reply, err := c.cb.Execute(func() (string, error) {
		return c.complete(ctx, messages)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "assistant is temporarily unavailable")
	}

	return reply, err
}

func (c *Client) complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	// https://platform.openai.com/docs/api-reference/chat/create
	type completionReq struct {
		Model       string    `json:"model"`
		Messages    []message `json:"messages"`
		MaxTokens   int       `json:"max_tokens,omitempty"`
		Temperature float64   `json:"temperature"`
	}
	in := completionReq{
		Model:       c.opts.Model,
		Messages:    make([]message, 0, len(messages)),
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	}
	for _, m := range messages {
		in.Messages = append(in.Messages, message{Role: string(m.Role), Content: m.Content})
	}

	bodyBytes, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "assistant is temporarily unavailable")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", serrors.With(serrors.ErrRateLimited, "assistant is busy, try again later")
	case resp.StatusCode == http.StatusBadRequest:
		return "", serrors.With(serrors.ErrBadRequest, "assistant rejected the request: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		logger.Warn(ctx, "completion failed",
			zap.Int("status", resp.StatusCode), zap.String("body", strings.TrimSpace(string(b))))

		return "", serrors.With(serrors.ErrUnavailable, "assistant is temporarily unavailable")
	}

	var rs struct {
		Choices []struct {
			Message message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if len(rs.Choices) == 0 || strings.TrimSpace(rs.Choices[0].Message.Content) == "" {
		return "", serrors.With(serrors.ErrUnavailable, "assistant returned an empty reply")
	}

	return strings.TrimSpace(rs.Choices[0].Message.Content), nil
}
