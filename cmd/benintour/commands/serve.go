package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/kwabo/benintour/internal/api"
	"github.com/kwabo/benintour/internal/cache"
	"github.com/kwabo/benintour/internal/catalog"
	"github.com/kwabo/benintour/internal/config"
	"github.com/kwabo/benintour/internal/core"
	"github.com/kwabo/benintour/internal/storage"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the benintour HTTP API",
		Long:  "Serves the destination catalog, ranked offer search, and booking requests over HTTP. Requires DATABASE_URL and REDIS_URL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      slog.LevelInfo,
				TimeFormat: time.Kitchen,
			}))

			modeFlag, _ := cmd.Flags().GetString("mode")
			if err := runServer(log, modeFlag); err != nil {
				log.Error("server exited with error", "err", err)
				os.Exit(1)
			}
			return nil
		},
	}
}

func runServer(log *slog.Logger, modeFlag string) error {
	srvCfg, err := config.LoadServer()
	if err != nil {
		return err
	}

	ctx := context.Background()

	pool, err := storage.Connect(ctx, srvCfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if err := storage.RunMigrations(ctx, pool, srvCfg.MigrationsDir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied")

	redisClient, err := cache.Connect(ctx, srvCfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	repo := storage.NewRepository(pool)

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if err := repo.SeedLocations(ctx, cat.Locations()); err != nil {
		return fmt.Errorf("seeding locations: %w", err)
	}
	log.Info("catalog seeded", "locations", len(cat.Locations()))

	providerCfg := config.Load().WithMode(modeFlag)
	orch := core.NewOrchestrator(buildRouter(providerCfg))

	searchCache := cache.NewSearchCache(redisClient, srvCfg.CacheTTL)
	handlers := api.NewHandlers(repo, repo, searchCache, orch, log)
	router := api.NewRouter(handlers, pool, &redisPingerAdapter{client: redisClient}, log)

	srv := &http.Server{
		Addr:         ":" + srvCfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", srvCfg.Port, "mode", providerCfg.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// redisPingerAdapter adapts redis.Client's StatusCmd ping to a plain error.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
