// Package app wires configuration, storage, the event bus, and the module
// services into one runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"github.com/dannynotsmart/Ranked-Bedwars/api"
	"github.com/dannynotsmart/Ranked-Bedwars/app/eventbus"
	guildservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/application"
	guildrouter "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/router"
	matchservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/application"
	matchrouter "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/router"
	queueservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/queue/application"
	queuerouter "github.com/dannynotsmart/Ranked-Bedwars/app/modules/queue/infrastructure/router"
	userservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/application"
	userrouter "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/router"
	"github.com/dannynotsmart/Ranked-Bedwars/config"
	"github.com/dannynotsmart/Ranked-Bedwars/db/bundb"
	"github.com/dannynotsmart/Ranked-Bedwars/internal/guildlock"
	"github.com/dannynotsmart/Ranked-Bedwars/internal/metrics"
)

// App holds the running application's top-level pieces.
type App struct {
	Cfg             *config.Config
	WatermillRouter *message.Router

	db         *bundb.DBService
	bus        eventbus.EventBus
	httpServer *http.Server
	logger     *slog.Logger
}

// NewApp initializes the application from the given config file.
func NewApp(ctx context.Context, configFile string, logger *slog.Logger) (*App, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := eventbus.New(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	tracer := otel.Tracer("ranked-bedwars")
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	locks := guildlock.NewArena()

	guildSvc := guildservice.NewGuildService(dbService.GuildDB, logger, tracer)
	userSvc := userservice.NewUserService(dbService.UserDB, logger, tracer)
	queueSvc := queueservice.NewQueueService(dbService.GuildDB, dbService.UserDB, dbService.MatchDB, locks, cfg.Matchmaking, logger, tracer, m)
	matchSvc := matchservice.NewMatchService(dbService.GuildDB, dbService.UserDB, dbService.MatchDB, cfg.Matchmaking, logger, tracer, m)

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}
	guildrouter.Configure(router, bus, guildSvc, logger, tracer)
	userrouter.Configure(router, bus, userSvc, logger, tracer)
	queuerouter.Configure(router, bus, queueSvc, logger, tracer)
	matchrouter.Configure(router, bus, matchSvc, logger, tracer)

	server := api.NewServer(userSvc, matchSvc, logger)
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: server.Routes(cfg.HTTP, registry),
	}

	return &App{
		Cfg:             cfg,
		WatermillRouter: router,
		db:              dbService,
		bus:             bus,
		httpServer:      httpServer,
		logger:          logger,
	}, nil
}

// Run serves the HTTP API and the event handlers until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", slog.String("address", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	go func() {
		if err := a.WatermillRouter.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

// Close shuts the application down in reverse dependency order.
func (a *App) Close(ctx context.Context) {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http server shutdown failed", slog.Any("error", err))
	}
	if err := a.WatermillRouter.Close(); err != nil {
		a.logger.Error("router close failed", slog.Any("error", err))
	}
	if err := a.bus.Close(); err != nil {
		a.logger.Error("event bus close failed", slog.Any("error", err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("database close failed", slog.Any("error", err))
	}
}
