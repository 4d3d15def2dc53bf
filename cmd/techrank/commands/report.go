package commands

import (
	"fmt"
	"os"

	"techrank/cmd/techrank/globals"
	"techrank/internal/report"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [--db <path/to/companies.db>] [--table <name>]",
	Short: "Prints the fixed reports against an already loaded database.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := globals.Get(cmd.Context()).Config

		db, err := cfg.Output.Database.OpenDB()
		if err != nil {
			return err
		}
		defer db.Close()

		_, err = report.Run(cmd.Context(), db, cfg.Output.Table, os.Stdout)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		return nil
	},
}
