// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the marketplace.
package api

import (
	"catconnect/internal/api/handler/v1handler"
	"catconnect/internal/config"
	"catconnect/pkg/authz"
	"catconnect/pkg/controller"
	"catconnect/pkg/logger"
	"catconnect/pkg/metrics"
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// RouteOptions tune the v1 router.
	RouteOptions v1handler.RouteOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins are the allowed browser origins. Empty allows any.
	CORSOrigins []string
	// EnableDebug mounts pprof and the River UI.
	EnableDebug bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		RouteOptions: v1handler.RouteOptions{
			AuthRequests: cfg.RateLimit.AuthRequests,
			AuthWindow:   cfg.RateLimit.AuthWindow,
		},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.CORS.AllowedOrigins,
		EnableDebug:       cfg.HTTP.EnableDebug,
	}
}

type Deps struct {
	v1handler.Deps

	Enforcer *authz.Enforcer
	// Accounts lets authorization reject deactivated users holding a valid token.
	Accounts v1handler.AccountLookup
	// Registerer receives the HTTP metrics. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Queue is shown in the River UI when debugging is enabled.
	Queue *river.Client[pgx.Tx]
}

// NewMeterProvider returns an OpenTelemetry meter provider exporting through
// the Prometheus registerer reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 document and Swagger UI
// - v1 API routes
// - pprof endpoints and the River UI when debugging is enabled
// Every route is wrapped with logging, CORS and metrics middlewares and a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	reg := deps.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	httpMetrics, err := metrics.NewHTTP(reg)
	if err != nil {
		return nil, fmt.Errorf("could not register http metrics: %w", err)
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger, controller.WithCORS(opts.CORSOrigins), controller.WithMetrics(httpMetrics))

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Catanduanes Connect",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions, deps.Enforcer, deps.Accounts)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	r.Mount("/v1", v1handler.New(deps.Deps).Routes(secHandler, opts.RouteOptions))

	if opts.EnableDebug {
		r.Mount("/debug", middleware.Profiler())

		if deps.Queue != nil {
			ui, err := riverui.NewHandler(&riverui.HandlerOpts{
				Endpoints: riverui.NewEndpoints(deps.Queue, nil),
				Logger:    logger.Slog(ctx),
				Prefix:    "/riverui",
			})
			if err != nil {
				return nil, fmt.Errorf("could not create river ui: %w", err)
			}
			if err := ui.Start(ctx); err != nil {
				return nil, fmt.Errorf("could not start river ui: %w", err)
			}
			r.Mount("/riverui", ui)
		}
	}

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
