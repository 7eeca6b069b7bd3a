package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/sizer/config"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded calculations",
	Long: `Display recent position-size calculations from the journal,
newest first.

Examples:
  sizer history
  sizer history --config sizer.yaml --limit 50`,
	RunE: runHistory,
}

var (
	historyConfigPath string
	historyLimit      int
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum records to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if historyConfigPath != "" {
		loaded, err := config.LoadFromFile(historyConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cfg.Journal.Type == "none" {
		return fmt.Errorf("journaling is disabled in config")
	}

	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	records, err := j.List(historyLimit)
	if err != nil {
		return fmt.Errorf("list journal: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No calculations recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Time", "Asset", "Method", "Symbol", "Dir", "Size", "Risk $", "Est. Risk $", "Warnings"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.Time.Format(time.DateTime),
			r.Asset,
			r.Method,
			r.Symbol,
			r.Direction,
			r.PositionSize,
			r.RiskAmount.StringFixed(2),
			r.EstimatedRisk.StringFixed(2),
			r.Warnings,
		})
	}
	t.Render()
	return nil
}
