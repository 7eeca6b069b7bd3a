package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/sizer/form"
	"github.com/rustyeddy/sizer/trade"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate form fields without calculating",
	Long: `Feed the supplied field values through the validation engine and
print each field's verdict plus the aggregate submittable flag. Useful for
inspecting what a UI's Calculate button would do with the same inputs.

Example:
  sizer check --asset OPTION --method FIXED_AMOUNT --account 5000 \
    --symbol SPY240621C450 --direction SHORT --premium 0.56 --stop 0.65 --fixed 50`,
	RunE: runCheck,
}

var checkFlags fieldFlags

func init() {
	rootCmd.AddCommand(checkCmd)
	checkFlags.register(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	asset, method, values, _, err := checkFlags.resolve()
	if err != nil {
		return err
	}

	state := form.Compute(values, asset, method)

	fmt.Printf("Asset: %s, Method: %s\n\n", asset, method)
	if state.Summary != "" {
		fmt.Printf("Form error: %s\n\n", state.Summary)
	}

	names := make([]string, 0, len(state.Fields))
	for name := range state.Fields {
		names = append(names, string(name))
	}
	sort.Strings(names)

	for _, name := range names {
		fs := state.Fields[trade.FieldName(name)]
		status := "ok"
		switch {
		case !fs.Valid:
			status = "invalid: " + fs.Message
		case fs.Required && !fs.Filled:
			status = "missing"
		case !fs.Filled:
			status = "empty (optional)"
		}
		req := " "
		if fs.Required {
			req = "*"
		}
		fmt.Printf("  %s %-26s %s\n", req, name, status)
	}

	fmt.Printf("\nForm state: %s (submittable=%v)\n", state.Phase(), state.Submittable)
	return nil
}
