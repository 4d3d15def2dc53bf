package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"techrank/cmd/techrank/globals"
	"techrank/internal/extract"
	"techrank/internal/fetch"
	"techrank/internal/pipeline"
	"techrank/lib/restyutil"

	"github.com/spf13/cobra"
)

// the root command runs the pipeline too, so both carry the run flags
func init() {
	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		cmd.Flags().String("layout", "", fmt.Sprintf(
			"The table layout to read (%s).",
			strings.Join(extract.LayoutNames(), ", "),
		))
		cmd.Flags().String("csv", "", "Override the csv output file.")
	}
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--layout <classed|tagged>] [--csv <path/to/out.csv>]",
	Short: "Fetches the page, ranks the companies, writes the csv and database and prints the reports.",
	Args:  cobra.NoArgs,
	RunE:  runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg := globals.Get(cmd.Context()).Config

	layout, _ := cmd.Flags().GetString("layout")
	csv, _ := cmd.Flags().GetString("csv")
	cfg = applyOverrides(cfg, overrides{Layout: layout, Csv: csv})

	opts := fetch.Options{
		UserAgent:        cfg.Source.UserAgent,
		Timeout:          cfg.Source.Timeout(),
		CloudflareBypass: cfg.Source.CloudflareBypass,
	}
	if *verbose && cfg.Source.DumpDir != "" {
		dump, err := restyutil.NewFilesystemOutput(filepath.Clean(cfg.Source.DumpDir))
		if err != nil {
			return fmt.Errorf("failed to prepare http dump dir: %w", err)
		}
		opts.Dump = dump
	}

	t1 := time.Now()
	_, err := pipeline.Pipeline{
		Config:  cfg,
		Fetcher: fetch.NewClient(opts),
		Out:     os.Stdout,
	}.Run(cmd.Context())
	if err != nil {
		return err
	}
	t2 := time.Now()

	slog.Info("pipeline finished", "seconds", t2.Sub(t1).Seconds())
	return nil
}
