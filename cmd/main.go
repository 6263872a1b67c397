package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crowdfund/db/migrations"
	"crowdfund/internal/adapter/events"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// main loads configuration, opens the configured store, wires the event
// publishers and use cases, then serves HTTP until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

// ledger is what the use cases and the HTTP surface need from a store.
type ledger struct {
	repo    port.CampaignRepository
	token   port.TokenLedger
	closeFn func()
}

func openLedger(ctx context.Context, cfg config.Config, logger *slog.Logger, tokenAddr, owner domain.Address) (ledger, error) {
	if cfg.Store.DriverName() == configs.StoreMemory {
		logger.Warn("using in-memory store; state is lost on exit")
		token := memory.NewToken(tokenAddr, owner)
		return ledger{repo: memory.NewStore(token), token: token, closeFn: func() {}}, nil
	}

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return ledger{}, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("schema migrated", slog.Uint64("from", uint64(from)), slog.Int("to", migrations.Version))
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return ledger{}, fmt.Errorf("database connection: %w", err)
	}
	token := postgres.NewTokenLedger(pool, tokenAddr, owner)
	if err = token.Init(ctx, domain.InitialTokenSupply); err != nil {
		pool.Close()
		return ledger{}, fmt.Errorf("init token: %w", err)
	}
	return ledger{repo: postgres.NewCampaignRepository(pool, token), token: token, closeFn: pool.Close}, nil
}

// publishers always logs and feeds websocket watchers; Kafka and Redis
// are added when configured. The returned func closes them.
func publishers(ctx context.Context, cfg config.Config, logger *slog.Logger, hub *events.Hub) (events.Multi, func(), error) {
	out := events.Multi{events.NewLogPublisher(logger), hub}
	var closers []func() error

	if cfg.Kafka.Enabled() {
		kp, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, kp)
		closers = append(closers, kp.Close)
		logger.Info("kafka events enabled", slog.String("topic", cfg.Kafka.Topic))
	}
	if cfg.Redis.Enabled() {
		client, err := events.Connect(ctx, cfg.Redis.Address)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, events.NewRedisPublisher(client, cfg.Redis.Channel))
		closers = append(closers, client.Close)
		logger.Info("redis events enabled", slog.String("channel", cfg.Redis.Channel))
	}

	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("close publisher", slog.Any("error", err))
			}
		}
	}
	return out, closeAll, nil
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings, err := cfg.Platform.Settings()
	if err != nil {
		return fmt.Errorf("platform settings: %w", err)
	}
	owner, err := cfg.Platform.Owner()
	if err != nil {
		return fmt.Errorf("token owner: %w", err)
	}

	store, err := openLedger(ctx, cfg, logger, settings.Token, owner)
	if err != nil {
		return err
	}
	defer store.closeFn()

	hub := events.NewHub(logger, cfg.HTTP.WSOrigins...)
	defer hub.Close()
	pubs, closePubs, err := publishers(ctx, cfg, logger, hub)
	if err != nil {
		return err
	}
	defer closePubs()

	opts := []usecase.Option{usecase.WithLogger(logger), usecase.WithEvents(pubs)}
	factory, err := usecase.NewFactoryUseCase(store.repo, settings, opts...)
	if err != nil {
		return err
	}
	campaigns, err := usecase.NewCampaignUseCase(store.repo, settings.FeeRecipient, opts...)
	if err != nil {
		return err
	}
	reports := usecase.NewReportUseCase(factory, campaigns, usecase.WithLogger(logger))

	if cfg.Store.Seed {
		if err = db.Seed(ctx, store.token, factory, campaigns, logger); err != nil {
			return err
		}
	}

	handlerOpts := []httpadapter.Option{httpadapter.WithWebsocket(hub)}
	if cfg.Dev() {
		logger.Warn("dev routes enabled: faucet and token issuer are public")
		handlerOpts = append(handlerOpts, httpadapter.WithDevRoutes())
	}
	handler := httpadapter.NewHandler(httpadapter.Services{
		Factory:   factory,
		Campaigns: campaigns,
		Reports:   reports,
		Token:     store.token,
	}, httpadapter.NewAuthenticator(cfg.Auth.SigningSecret(cfg.Dev()), cfg.Auth.Issuer), logger, handlerOpts...)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
