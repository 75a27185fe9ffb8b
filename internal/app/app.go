package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NssGourav/shuttle-tracker/config"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/handler"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/middleware"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/server"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/ws"
	postgresrepo "github.com/NssGourav/shuttle-tracker/internal/adapter/postgres"
	rabbitadapter "github.com/NssGourav/shuttle-tracker/internal/adapter/rabbit"
	"github.com/NssGourav/shuttle-tracker/internal/service/auth"
	"github.com/NssGourav/shuttle-tracker/internal/service/location"
	"github.com/NssGourav/shuttle-tracker/internal/service/shuttle"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	"github.com/NssGourav/shuttle-tracker/pkg/postgres"
	"github.com/NssGourav/shuttle-tracker/pkg/rabbit"
	"github.com/NssGourav/shuttle-tracker/pkg/trm"
	"github.com/NssGourav/shuttle-tracker/pkg/wshub"
)

const serviceName = "shuttle-tracker"

type App struct {
	cfg *config.Config
	l   logger.Logger

	db        *postgres.PostgreDB
	rabbitMQ  *rabbit.RabbitMQ
	hub       *wshub.Hub
	api       *server.API
	simulator *shuttle.Simulator

	simCancel context.CancelFunc
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	l := logger.InitLogger(serviceName, cfg.Log.Level)

	l.Info(ctx, "connecting to postgres", "host", cfg.Database.Host)
	db, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := postgresrepo.RunMigrations(cfg.Database.MigrationsPath, cfg.Database.GetDSN()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	locationRepo := postgresrepo.NewLocationRepo(db.Pool)
	userRepo := postgresrepo.NewUserRepo(db.Pool)
	shuttleRepo := postgresrepo.NewShuttleRepo(db.Pool)

	app := &App{cfg: cfg, l: l, db: db}

	var publisher location.Publisher = rabbitadapter.NoopProducer{}
	if cfg.RabbitMQ.Enabled {
		mq, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), l)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		producer, err := rabbitadapter.NewLocationProducer(mq)
		if err != nil {
			return nil, fmt.Errorf("failed to declare location exchange: %w", err)
		}
		app.rabbitMQ = mq
		publisher = producer
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.NewAuthService(userRepo, tokens, l)
	locationService := location.New(locationRepo, userRepo, publisher, trm.New(db.Pool), l)
	shuttleService := shuttle.New(shuttleRepo, l)

	app.hub = wshub.NewHub(l)
	feed := ws.NewShuttleFeed(app.hub, l)

	if cfg.Simulator.Enabled {
		app.simulator = shuttle.NewSimulator(shuttleRepo, feed, cfg.Simulator.Interval, l)
	}

	h := handler.New(authService, locationService, shuttleService, l)
	mw := middleware.New(authService, l)
	app.api = server.New(cfg.Server, h, mw, feed, l)

	return app, nil
}

// Run starts everything and blocks until a shutdown signal or a fatal
// server error.
func (a *App) Run() error {
	ctx := context.Background()
	errCh := make(chan error, 1)

	if a.simulator != nil {
		var simCtx context.Context
		simCtx, a.simCancel = context.WithCancel(ctx)
		go a.simulator.Run(simCtx)
	}

	go a.api.Run(ctx, errCh)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.stop(ctx)
		return err
	case sig := <-shutdownCh:
		a.l.Info(ctx, "received shutdown signal", "signal", sig.String())
		a.stop(ctx)
		return nil
	}
}

func (a *App) stop(ctx context.Context) {
	if a.simCancel != nil {
		a.simCancel()
	}

	if err := a.api.Stop(); err != nil {
		a.l.Error(ctx, "failed to stop http server gracefully", err)
	}

	a.hub.Close()

	if a.rabbitMQ != nil {
		if err := a.rabbitMQ.Close(); err != nil {
			a.l.Error(ctx, "failed to close rabbitmq connection", err)
		}
	}

	a.db.Pool.Close()

	a.l.Info(ctx, "application stopped")
}
