// Package cli implements the santa command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/secret-santa-backend/internal/app"
	"github.com/heartmarshall/secret-santa-backend/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root santa command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "santa",
		Short:         "Secret Santa exchange backend",
		Long:          "Runs the Secret Santa HTTP API and its maintenance tasks: migrations and organizer accounts.",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config (overrides CONFIG_PATH)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewOwnerCommand(opts))

	return cmd
}

// load reads configuration, honouring --config, and builds the logger.
func (o *RootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
