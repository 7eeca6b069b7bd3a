package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sizer",
	Short: "A position-sizing calculator for daytraders",
	Long: `Sizer computes how many shares or contracts to trade so a bounded
dollar amount is at risk, for equities, options and futures.

It provides tools for:
  - Percentage, fixed-amount and level-based risk methods
  - Field and cross-field validation with a submittable verdict
  - Floor-rounded sizing that never overshoots the risk budget
  - Journaling computed sizes to CSV or SQLite

Complete documentation is available at https://github.com/rustyeddy/sizer`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
