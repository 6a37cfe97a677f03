package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-sync/pkg/config"
	"github.com/killallgit/podcast-sync/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-sync",
	Short: "Podcast feed sync service",
	Long: `Podcast Sync - keeps stored podcast episodes in step with their RSS feeds

Each sync fetches a podcast's feed, matches every item against the episodes
already stored, creates the ones that are missing and repairs the ones that
are stale.

Features:
  • RSS 2.0 and iTunes feed ingestion
  • Episode matching by media URL, title, GUID and website URL
  • Secure media URL upgrades with reachability probes
  • Scheduled sweeps over every stored podcast
  • HTTP API for on-demand syncs and sweep status`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.L().Sync()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help never touch configuration
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging builds the global logger; flags win over logging.* settings
func setupLogging(cmd *cobra.Command, _ []string) error {
	opts := logger.Options{
		Level:  config.GetString("logging.level"),
		Format: config.GetString("logging.format"),
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || opts.Level == "" {
		opts.Level, _ = flags.GetString("log-level")
	}
	if jsonLogs, _ := flags.GetBool("json-logs"); jsonLogs {
		opts.Format = "json"
	} else if opts.Format == "" {
		opts.Format = "console"
	}

	if _, err := logger.Init(opts); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// appLogger returns the logger for a command, scoped by its name
func appLogger(cmd *cobra.Command) *zap.Logger {
	return logger.L().With(zap.String("command", cmd.Name()))
}
