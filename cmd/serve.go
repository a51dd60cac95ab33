package main

import (
	"catconnect/internal/api"
	"catconnect/internal/api/handler/v1handler"
	"catconnect/internal/assistant"
	"catconnect/internal/auth"
	"catconnect/internal/config"
	"catconnect/internal/marketplace"
	"catconnect/internal/tasks"
	"catconnect/internal/worker"
	"catconnect/pkg/authz"
	"catconnect/pkg/geocoder/nominatim"
	"catconnect/pkg/kv/badgerkv"
	"catconnect/pkg/llm"
	"catconnect/pkg/llm/openai"
	"catconnect/pkg/logger"
	"catconnect/pkg/mailer/smtpmailer"
	"catconnect/pkg/metrics"
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"
	"go.uber.org/zap"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serve(ctx, cfg)
		},
	}

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) {
	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	store, err := badgerkv.Open(ctx, badgerkv.Options{Dir: cfg.KV.Dir})
	if err != nil {
		logger.Fatal(ctx, "could not open kv store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close kv store", zap.Error(err))
		}
	}()

	// public suggestions must not starve business geocoding
	geocoder := newGeocoder(cfg, "nominatim-geocode", cfg.Geocoder.RequestsPerSecond)
	suggestGeocoder := newGeocoder(cfg, "nominatim-suggest", cfg.Geocoder.SuggestRequestsPerSecond)
	var languageModel llm.Client
	if cfg.LLM.APIKey != "" {
		languageModel = openai.New(&http.Client{Timeout: cfg.LLM.Timeout}, openai.Options{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		})
	} else {
		logger.Warn(ctx, "no language model configured, assistant chat is unavailable")
	}

	// background tasks
	workers := worker.NewSet(worker.Deps{
		Mailer: smtpmailer.New(smtpmailer.Options{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			FromName: cfg.Mail.FromName,
			StartTLS: cfg.Mail.StartTLS,
		}),
		Storage:  strg,
		Geocoder: geocoder,
	})
	queue, err := worker.NewQueue(ctx, strg.Pool, workers, worker.Options{Workers: cfg.Tasks.Workers})
	if err != nil {
		logger.Fatal(ctx, "could not create task queue", zap.Error(err))
	}

	taskMetrics, err := metrics.NewTasks(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not register task metrics", zap.Error(err))
	}
	meterProvider, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	dispatcher, err := tasks.NewDispatcher(tasks.Deps{
		Queue:         strg,
		Runner:        worker.NewLocal(workers),
		Metrics:       taskMetrics,
		MeterProvider: meterProvider,
	}, tasks.Options{
		MaxAttempts:     cfg.Tasks.MaxAttempts,
		FallbackTimeout: cfg.Tasks.FallbackTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create task dispatcher", zap.Error(err))
	}

	// api
	issuer, err := auth.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
	}
	enforcer, err := authz.New()
	if err != nil {
		logger.Fatal(ctx, "could not create authorization enforcer", zap.Error(err))
	}
	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			Marketplace: marketplace.New(marketplace.Deps{
				Storage: strg,
				Tasks:   dispatcher,
				OTP:     store,
			}, marketplace.NewOptions(cfg)),
			Assistant: assistant.New(assistant.Deps{
				LLM:      languageModel,
				Geocoder: suggestGeocoder,
				Chats:    store,
				Jobs:     strg,
			}, assistant.NewOptions(cfg)),
			Issuer: issuer,
		},
		Enforcer:   enforcer,
		Accounts:   strg,
		Registerer: prometheus.DefaultRegisterer,
		Queue:      queue.Client(),
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	supervisor := suture.New("catconnect", suture.Spec{
		EventHook: func(e suture.Event) {
			logger.Warn(ctx, "supervisor event", zap.String("event", e.String()))
		},
		Timeout: cfg.GracefulShutdownTimeout,
	})
	supervisor.Add(store)
	supervisor.Add(queue)
	supervisor.Add(api.NewService(server, cfg.GracefulShutdownTimeout))

	// blocks until interrupted
	if err := supervisor.Serve(ctx); err != nil && ctx.Err() == nil {
		logger.Error(ctx, "supervisor stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
	defer cancel()
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		logger.Warn(ctx, "abandoning in-process tasks", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
	}
}

func newGeocoder(cfg *config.Config, name string, rps float64) *nominatim.Client {
	return nominatim.New(&http.Client{Timeout: cfg.Geocoder.Timeout}, nominatim.Options{
		Name:              name,
		BaseURL:           cfg.Geocoder.BaseURL,
		UserAgent:         cfg.Geocoder.UserAgent,
		RequestsPerSecond: rps,
		ViewBox:           cfg.Geocoder.ViewBox,
	})
}
