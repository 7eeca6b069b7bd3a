package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/sizer/config"
	"github.com/rustyeddy/sizer/form"
	"github.com/rustyeddy/sizer/journal"
	"github.com/rustyeddy/sizer/pkg/id"
	"github.com/rustyeddy/sizer/risk"
	"github.com/rustyeddy/sizer/trade"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Validate inputs and compute a position size",
	Long: `Run the full validation pass over the supplied fields and, when the
form is submittable, compute the position size for the chosen risk method.

Examples:
  sizer calc --asset EQUITY --method PERCENTAGE --account 10000 \
    --symbol AAPL --direction LONG --entry 150 --stop 147 --risk-pct 2

  sizer calc --asset FUTURE --method FIXED_AMOUNT --account 25000 \
    --symbol ES --direction LONG --entry 4500 --stop 4480 \
    --tick-size 0.25 --tick-value 12.50 --margin 12000 --fixed 400`,
	RunE: runCalc,
}

var (
	calcFlags     fieldFlags
	calcNoJournal bool
)

func init() {
	rootCmd.AddCommand(calcCmd)
	calcFlags.register(calcCmd)
	calcCmd.Flags().BoolVar(&calcNoJournal, "no-journal", false, "skip recording the calculation")
}

func runCalc(cmd *cobra.Command, args []string) error {
	asset, method, values, cfg, err := calcFlags.resolve()
	if err != nil {
		return err
	}

	state := form.Compute(values, asset, method)
	if !state.Submittable {
		printFormState(state)
		return errors.New("form is not submittable")
	}

	t, err := form.BuildTrade(values, asset, method)
	if err != nil {
		return fmt.Errorf("build trade: %w", err)
	}

	res, err := risk.Calculate(t)
	if err != nil {
		var ce *risk.CalcError
		if errors.As(err, &ce) {
			return fmt.Errorf("%s: %s", ce.Kind, ce.Message)
		}
		return err
	}

	unit := "shares"
	if asset != trade.Equity {
		unit = "contracts"
	}

	fmt.Printf("%s %s %s (%s)\n", t.Direction, t.Symbol, asset, method)
	fmt.Printf("  Risk Amount:    $%s\n", res.RiskAmount.StringFixed(2))
	fmt.Printf("  Risk Per Unit:  $%s\n", res.RiskPerUnit.StringFixed(2))
	fmt.Printf("  Position Size:  %d %s\n", res.PositionSize, unit)
	fmt.Printf("  Estimated Risk: $%s\n", res.EstimatedRisk.StringFixed(2))
	if res.PositionSize == 0 {
		fmt.Println("  Note: risk budget does not cover a single unit")
	}
	for _, w := range res.Warnings {
		fmt.Printf("  Warning: %s\n", w)
	}

	if calcNoJournal || cfg.Journal.Type == "none" {
		return nil
	}
	return record(cfg, t, res)
}

func record(cfg *config.Config, t trade.Trade, res risk.Result) error {
	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	err = j.Append(journal.Record{
		ID:            id.New(),
		Time:          time.Now().UTC(),
		Asset:         string(t.Asset),
		Method:        string(t.Method),
		Symbol:        t.Symbol,
		Direction:     string(t.Direction),
		PositionSize:  res.PositionSize,
		RiskAmount:    res.RiskAmount,
		EstimatedRisk: res.EstimatedRisk,
		Warnings:      strings.Join(res.Warnings, "; "),
	})
	if err != nil {
		return fmt.Errorf("record calculation: %w", err)
	}
	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	if cfg.Journal.Type == "sqlite" {
		return journal.NewSQLite(cfg.Journal.DBPath)
	}
	return journal.NewCSV(cfg.Journal.File)
}

func printFormState(state form.State) {
	if state.Summary != "" {
		fmt.Printf("Form error: %s\n", state.Summary)
	}
	for name, msg := range state.Messages() {
		fmt.Printf("  %s: %s\n", name, msg)
	}
	var missing []string
	for name, fs := range state.Fields {
		if fs.Required && !fs.Filled {
			missing = append(missing, string(name))
		}
	}
	if len(missing) > 0 {
		fmt.Printf("  missing required fields: %s\n", strings.Join(missing, ", "))
	}
	fmt.Printf("Form state: %s\n", state.Phase())
}
