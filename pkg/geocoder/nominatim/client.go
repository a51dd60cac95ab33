// Package nominatim provides a geocoder.Client implementation backed by an
// OpenStreetMap Nominatim server.
package nominatim

import (
	"catconnect/pkg/domain"
	"catconnect/pkg/geocoder"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultLimit = 5
	maxLimit     = 10
)

var _ geocoder.Client = (*Client)(nil)

// Options configures the Nominatim client.
type Options struct {
	// Name tells apart the circuit breakers of clients sharing a provider.
	// Defaults to "nominatim".
	Name      string
	BaseURL   string
	UserAgent string
	// RequestsPerSecond is enforced client side. Defaults to 1.
	RequestsPerSecond float64
	// ViewBox restricts results to "minLon,maxLat,maxLon,minLat". Empty searches everywhere.
	ViewBox string
}

// Client talks to the Nominatim search API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]domain.Place]
}

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1
	}
	if opts.Name == "" {
		opts.Name = "nominatim"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &Client{
		httpClient: httpClient,
		opts:       opts,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		cb: gobreaker.NewCircuitBreaker[[]domain.Place](gobreaker.Settings{
			Name:        opts.Name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// the provider answering "no" is not an outage, neither is a caller
			// giving up on the request
			IsSuccessful: func(err error) bool {
				return err == nil ||
					errors.Is(err, serrors.ErrBadRequest) ||
					errors.Is(err, serrors.ErrRateLimited) ||
					errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn(context.Background(), "circuit breaker state changed",
					zap.String("breaker", name), zap.Stringer("from", from), zap.Stringer("to", to))
			},
		}),
	}
}

// Search queries Nominatim for query. A 429 from the server is reported as
// serrors.ErrRateLimited, an open breaker as serrors.ErrUnavailable.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "query is required")
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "geocoder request not sent")
	}

	places, err := c.cb.Execute(func() ([]domain.Place, error) {
		return c.search(ctx, query, limit)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "geocoder unavailable")
	}

	return places, err
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	// https://nominatim.org/release-docs/latest/api/Search/
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", strconv.Itoa(limit))
	if c.opts.ViewBox != "" {
		params.Set("viewbox", c.opts.ViewBox)
		params.Set("bounded", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "geocoder rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, serrors.With(serrors.ErrBadRequest, "geocoder rejected query: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("search failed: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var rs []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	places := make([]domain.Place, 0, len(rs))
	for _, r := range rs {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			logger.Debug(ctx, "skipping place with invalid coordinates", zap.String("place", r.DisplayName))

			continue
		}
		places = append(places, domain.Place{
			DisplayName: r.DisplayName,
			Point:       domain.Coordinates{Latitude: lat, Longitude: lon},
		})
	}

	return places, nil
}
