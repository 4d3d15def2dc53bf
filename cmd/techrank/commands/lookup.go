package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"techrank/cmd/techrank/globals"
	"techrank/internal/report"
	"techrank/lib/tableutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var lookupLimit *int

func init() {
	lookupLimit = lookupCmd.Flags().IntP("limit", "n", 3, "The maximum amount of matches to show.")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <company name>",
	Short: "Finds the loaded companies whose names best match the given name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := globals.Get(cmd.Context()).Config

		db, err := cfg.Output.Database.OpenDB()
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := report.ReadAll(cmd.Context(), db, cfg.Output.Table)
		if err != nil {
			return fmt.Errorf("read companies: %w", err)
		}

		name := strings.Join(args, " ")
		matches := report.Lookup(records, name, *lookupLimit)
		if len(matches) == 0 {
			return fmt.Errorf("no company matches '%s'", name)
		}

		t := tableutil.NewTable(os.Stdout)
		t.AppendHeader(table.Row{"Similarity", "Company", "Revenue ($B)", "Profit Margin (%)", "Headquarters"})
		for _, m := range matches {
			t.AppendRow(table.Row{
				strconv.FormatFloat(m.Similarity, 'f', 3, 64),
				m.Record.Company,
				m.Record.RevenueB,
				m.Record.ProfitMargin,
				m.Record.Headquarters,
			})
		}
		t.Render()
		return nil
	},
}
