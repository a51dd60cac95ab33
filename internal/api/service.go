package api

import (
	"catconnect/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Service runs an *http.Server until its context is done. It satisfies
// suture.Service.
type Service struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewService(server *http.Server, shutdownTimeout time.Duration) *Service {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}

	return &Service{server: server, shutdownTimeout: shutdownTimeout}
}

func (s *Service) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", s.server.Addr))
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("webserver failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info(ctx, "stopping webserver...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not stop webserver: %w", err)
	}

	return nil
}

func (s *Service) String() string { return "webserver" }
