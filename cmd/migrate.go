package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-sync/internal/database"
	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for Podcast Sync.

The schema is derived from the stored models with GORM auto migration:
tables, columns and indexes are created when missing, existing data is
never dropped.

Available subcommands:
  up      - Create or update tables and indexes
  status  - Show which tables exist`,
	RunE: runMigrateUp,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update tables and indexes",
	Long: `Apply the current schema to the configured database.

Missing tables, columns and indexes are created; running it twice is a no-op.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

For every stored model this shows its table and whether it exists.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func connect() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	log := appLogger(cmd)
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run mode - no changes will be made")
		return printStatus(cmd, db)
	}

	if err := db.Migrate(); err != nil {
		return err
	}

	log.Info("database migrated", zap.Int("models", len(models.All())))
	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	return printStatus(cmd, db)
}

func printStatus(cmd *cobra.Command, db *database.DB) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	migrator := db.DB.Migrator()
	pending := 0
	for _, model := range models.All() {
		stmt := db.DB.Model(model).Statement
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("failed to parse model: %w", err)
		}

		state := "applied"
		if !migrator.HasTable(model) {
			state = "pending"
			pending++
		}
		fmt.Fprintf(out, "  %-20s %s\n", stmt.Schema.Table, state)
	}

	fmt.Fprintf(out, "\n%d pending\n", pending)
	return nil
}
