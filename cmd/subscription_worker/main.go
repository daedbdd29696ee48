package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/core/services"
	"github.com/kasku/kasku_backend/internal/platform/config"
	"github.com/kasku/kasku_backend/internal/repositories/database/pgsql"
	"github.com/kasku/kasku_backend/pkg/database"
)

// The subscription worker periodically pays every subscription whose next
// payment date has arrived. Each payment runs as its own unit of work, so a
// crash mid-batch never leaves a charged wallet without its ledger entry.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("Starting subscription worker")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	svc := services.NewServiceProvider(repos, logger)

	logger.Info("Subscription worker configured", slog.Duration("interval", cfg.WorkerInterval))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runLoop(ctx, logger, svc.SubscriptionSvc, cfg.WorkerInterval)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Subscription worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Subscription worker shutdown complete")
}

// runLoop processes due subscriptions once at startup and then on every tick
// until the context is cancelled.
func runLoop(ctx context.Context, logger *slog.Logger, subs portssvc.SubscriptionSvcFacade, interval time.Duration) error {
	process := func(now time.Time) {
		paid, err := subs.ProcessDue(ctx, now.UTC())
		if err != nil {
			logger.Error("Processing due subscriptions failed", slog.String("error", err.Error()))
			return
		}
		logger.Info("Processed due subscriptions", slog.Int("paid", paid))
	}

	process(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			process(now)
		}
	}
}
