package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/warband-api/internal/clients/catalog"
	"github.com/KirkDiggler/warband-api/internal/config"
	"github.com/KirkDiggler/warband-api/internal/engine/rulebook"
	apiv1alpha1 "github.com/KirkDiggler/warband-api/internal/handlers/api/v1alpha1"
	warbandorc "github.com/KirkDiggler/warband-api/internal/orchestrators/warband"
	"github.com/KirkDiggler/warband-api/internal/pkg/clock"
	"github.com/KirkDiggler/warband-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/warband-api/internal/redis"
	warbandrepo "github.com/KirkDiggler/warband-api/internal/repositories/warband"
)

var configPath string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the warband API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "config file path (optional; environment overrides apply)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	setupLogging(cfg.Logging)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	router := mux.NewRouter()
	handler.Register(router)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires the full dependency graph: redis, repository, catalog,
// rules engine, orchestrator, handler.
func buildHandler(cfg config.Config) (*apiv1alpha1.Handler, error) {
	client, err := redisclient.NewClient(cfg.Redis.Address, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := warbandrepo.NewRedis(&warbandrepo.RedisConfig{
		Client: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create warband repository: %w", err)
	}

	gearCatalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	rulesEngine, err := rulebook.New(&rulebook.Config{
		Catalog: gearCatalog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rules engine: %w", err)
	}

	orchestrator, err := warbandorc.New(&warbandorc.Config{
		WarbandRepo: repo,
		Engine:      rulesEngine,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	handler, err := apiv1alpha1.NewHandler(&apiv1alpha1.HandlerConfig{
		WarbandService: orchestrator,
		Catalog:        gearCatalog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	return handler, nil
}

func loadCatalog(cfg config.CatalogConfig) (catalog.Client, error) {
	if cfg.File != "" {
		slog.Info("loading catalog", "file", cfg.File)
		return catalog.LoadFile(cfg.File)
	}
	return catalog.NewDefault(), nil
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
