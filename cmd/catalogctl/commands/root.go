package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/youbeemuhwan/commercial/pkg/config"
	"github.com/youbeemuhwan/commercial/pkg/database"
	"github.com/youbeemuhwan/commercial/pkg/logger"
)

var (
	// Global flags
	dbURL string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Operator tasks for the item catalog",
	Long: `catalogctl manages the catalog database.

Configuration is read from the environment (and .env) exactly as the API
server reads it; --db overrides DATABASE_URL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if dbURL != "" {
			cfg.DatabaseURL = dbURL
		}
		log = logger.New(cfg)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DATABASE_URL)")
}

// openDatabase connects to the configured database. Callers close it.
func openDatabase(ctx context.Context) (*database.Database, error) {
	d, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return d, nil
}
