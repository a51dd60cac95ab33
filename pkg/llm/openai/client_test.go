package openai_test

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/llm/openai"
	"catconnect/pkg/serrors"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *openai.Client {
	return openai.New(&http.Client{Transport: fn}, openai.Options{
		BaseURL:     "https://llm.example.org/v1/",
		APIKey:      "test-key",
		Model:       "test-model",
		MaxTokens:   128,
		Temperature: 0.2,
	})
}

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

var conversation = []domain.ChatMessage{ //nolint: gochecknoglobals
	{Role: domain.ChatRoleSystem, Content: "You help people in Catanduanes."},
	{Role: domain.ChatRoleUser, Content: "Where can I find a carpenter in Virac?"},
}

func TestClient_Complete_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Model       string  `json:"model"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float64 `json:"temperature"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "test-model", body.Model)
		require.Equal(t, 128, body.MaxTokens)
		require.InDelta(t, 0.2, body.Temperature, 1e-9)
		require.Len(t, body.Messages, 2)
		require.Equal(t, "system", body.Messages[0].Role)
		require.Equal(t, "user", body.Messages[1].Role)

		return response(http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"  Try the services page.  "}}]}`), nil
	})

	reply, err := c.Complete(context.Background(), conversation)
	require.NoError(t, err)
	require.Equal(t, "Try the services page.", reply)
}

func TestClient_Complete_noMessages(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})

	_, err := c.Complete(context.Background(), nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Complete_errors(t *testing.T) {
	tests := []struct {
		name string
		resp *http.Response
		err  error
		want error
	}{
		{name: "rate limited", resp: response(http.StatusTooManyRequests, "{}"), want: serrors.ErrRateLimited},
		{name: "bad request", resp: response(http.StatusBadRequest, `{"error":"context length"}`), want: serrors.ErrBadRequest},
		{name: "server error", resp: response(http.StatusInternalServerError, "oops"), want: serrors.ErrUnavailable},
		{name: "unauthorized", resp: response(http.StatusUnauthorized, "bad key"), want: serrors.ErrUnavailable},
		{name: "empty choices", resp: response(http.StatusOK, `{"choices":[]}`), want: serrors.ErrUnavailable},
		{name: "transport", err: errors.New("dial tcp: refused"), want: serrors.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return tt.resp, tt.err
			})

			_, err := c.Complete(context.Background(), conversation)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_Complete_breakerOpens(t *testing.T) {
	calls := 0
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		calls++

		return response(http.StatusServiceUnavailable, "down"), nil
	})

	for range 3 {
		_, err := c.Complete(context.Background(), conversation)
		require.ErrorIs(t, err, serrors.ErrUnavailable)
	}

	_, err := c.Complete(context.Background(), conversation)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, 3, calls, "open breaker must not reach the provider")
}
