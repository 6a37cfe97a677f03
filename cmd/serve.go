package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-sync/api"
	"github.com/killallgit/podcast-sync/api/types"
	"github.com/killallgit/podcast-sync/internal/services/scheduler"
	"github.com/killallgit/podcast-sync/pkg/config"
)

var (
	serverHost  string
	serverPort  int
	noScheduler bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and sync scheduler",
	Long: `Start the Podcast Sync API server with the configured settings.

The server exposes on-demand podcast syncs, sweep status and stored episodes
over HTTP, and runs sweeps over every podcast on the ingest.schedule.

Example:
  podcast-sync serve
  podcast-sync serve --port 9090
  podcast-sync serve --host 0.0.0.0 --port 8080 --no-scheduler`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
	serveCmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "serve the API without scheduled sweeps")
}

func runServer(cmd *cobra.Command, args []string) error {
	log := appLogger(cmd)

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	host, port := serverHost, serverPort
	if host == "" {
		host = cfg.Server.Host
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	p := buildPipeline(cfg, db, log)

	// Sweeps started over HTTP or by the scheduler stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !noScheduler {
		sched, err := scheduler.New(p.orchestrator, cfg.Ingest.Schedule,
			scheduler.WithRunOnStart(cfg.Ingest.RunOnStart),
			scheduler.WithLogger(log.Named("scheduler")),
		)
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		if err := sched.Start(ctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	opts := []api.ServerOption{
		api.WithLogger(log.Named("http")),
		api.WithServerConfig(cfg.Server),
	}
	if cfg.Monitoring.Enabled {
		opts = append(opts, api.WithMetrics(cfg.Monitoring.MetricsPath))
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", host, port), opts...)
	server.SetDependencies(&types.Dependencies{
		DB:          db,
		Podcasts:    p.podcasts,
		Episodes:    p.episodes,
		SyncService: p.orchestrator,
		Logger:      log.Named("http"),
		BaseContext: ctx,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	log.Info("podcast sync server ready", zap.String("addr", server.Addr()))

	// Wait for interrupt signal or server error
	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			log.Error("server error", zap.Error(err))
			stop()
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("server gracefully stopped")
	return nil
}
