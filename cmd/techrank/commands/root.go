package commands

import (
	"context"
	"fmt"
	"log/slog"

	"techrank/cmd/techrank/globals"
	"techrank/internal/pipeline"
	"techrank/lib/telemetry"

	"github.com/spf13/cobra"
)

var configPath *string
var verbose *bool
var dbPath *string
var tableName *string

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "techrank.json5", "The json5 config file, a sibling .local.json5 overrides it.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and http dumps.")
	dbPath = rootCmd.PersistentFlags().String("db", "", "Override the sqlite database file.")
	tableName = rootCmd.PersistentFlags().String("table", "", "Override the table the companies are loaded into.")
}

var rootCmd = &cobra.Command{
	Use:   "techrank",
	Short: "techrank extracts the largest tech companies by revenue, ranks them and loads them into csv and sqlite.",
	// errors are reported by main
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*verbose)

		cfg, err := pipeline.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		cfg = applyOverrides(cfg, overrides{
			Db:    *dbPath,
			Table: *tableName,
		})

		installed, err = telemetry.Setup(cmd.Context(), "techrank", cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("failed to setup telemetry: %w", err)
		}

		cmd.SetContext(globals.Set(cmd.Context(), &globals.Value{
			Config: cfg,
		}))
		return nil
	},
	RunE: runPipeline,
}

// installed is shut down after the command returns, failed runs included,
// since cobra skips post-run hooks when RunE errors.
var installed telemetry.Telemetry

func ExecuteContext(ctx context.Context) error {
	return execute(ctx, rootCmd)
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	shutdownErr := installed.Shutdown(context.Background())
	if shutdownErr != nil {
		slog.Warn("failed to shutdown telemetry", "err", shutdownErr)
	}
	return err
}
