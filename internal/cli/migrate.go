package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/secret-santa-backend/internal/app"
	"github.com/heartmarshall/secret-santa-backend/internal/config"
)

var migrateCommands = []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus}

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Long:      "Run goose migrations embedded in the binary. Defaults to up.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := postgres.MigrateUp
			if len(args) == 1 {
				command = args[0]
			}

			// --dsn lets migrations run without the full server config.
			if dsn != "" {
				logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})
				return runMigrate(cmd.Context(), dsn, command, logger)
			}

			cfg, logger, err := rootOpts.load()
			if err != nil {
				return err
			}
			return runMigrate(cmd.Context(), cfg.Database.DSN, command, logger)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_DSN"), "database DSN (skips config loading)")

	return cmd
}

func runMigrate(ctx context.Context, dsn, command string, logger *slog.Logger) error {
	db, err := postgres.OpenDB(ctx, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer db.Close()

	return postgres.Migrate(ctx, db, command, logger)
}
