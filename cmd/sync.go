package cmd

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-sync/pkg/config"
)

// syncCmd runs one sweep, or one podcast, and exits
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync podcast feeds once",
	Long: `Fetch podcast feeds and reconcile their items with stored episodes.

Without --podcast-id every stored podcast is synced, in batches. A feed that
cannot be fetched or parsed is reported and the sweep moves on. The report is
printed as JSON.

Example:
  podcast-sync sync
  podcast-sync sync --podcast-id 42 --limit 50`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().Uint("podcast-id", 0, "sync only this podcast")
	syncCmd.Flags().Int("limit", 0, "maximum feed items per podcast (0 = ingest.item_limit)")
}

func runSync(cmd *cobra.Command, args []string) error {
	log := appLogger(cmd)
	podcastID, _ := cmd.Flags().GetUint("podcast-id")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if limit > 0 {
		cfg.Ingest.ItemLimit = limit
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

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if podcastID != 0 {
		report, err := p.orchestrator.SyncPodcastByID(ctx, podcastID, limit)
		if err != nil {
			return fmt.Errorf("failed to sync podcast %d: %w", podcastID, err)
		}
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.OK() {
			return fmt.Errorf("podcast %d: %w", podcastID, report.Err)
		}
		return nil
	}

	report, err := p.orchestrator.SyncAll(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	return enc.Encode(report)
}
