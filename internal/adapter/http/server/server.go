package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/NssGourav/shuttle-tracker/config"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/handler"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/middleware"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/ws"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = time.Minute
	shutdownTimeout = 5 * time.Second
)

type API struct {
	server *http.Server
	l      logger.Logger
}

func New(cfg config.ServerConfig, h *handler.Handler, mw *middleware.Middleware, feed *ws.ShuttleFeed, l logger.Logger) *API {
	api := &API{l: l}

	api.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.routes(h, mw, feed),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return api
}

// Run starts the listener and reports a failed start on errCh.
func (a *API) Run(ctx context.Context, errCh chan<- error) {
	a.l.Info(ctx, "starting http server", "addr", a.server.Addr)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errCh <- fmt.Errorf("failed to start http server: %w", err)
	}
}

func (a *API) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.l.Info(ctx, "shutting down http server")

	return a.server.Shutdown(ctx)
}
