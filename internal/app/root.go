package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for clgplot
	RootCmd = &cobra.Command{
		Use:   "clgplot",
		Short: "IRM acquisition analysis and CLG fit plotting",
		Long: `clgplot analyses isothermal remanent magnetization (IRM) acquisition
curves. It reads raw two-column measurement files and the decomposition
output of the IrmUnmix program, computes H'cr (the field producing half the
saturation remanence), and renders the cumulative log-Gaussian fit as a plot.

Input formats:
  • Data files: one measurement per line, applied field then magnetization,
    separated by whitespace or commas
  • Curve files: IrmUnmix result output (True SIRM header plus one record
    per fitted component)

Examples:
  # Full analysis: H'cr, component table, PNG plot
  clgplot plot -d sample.dat -c sample.irmunmix -o sample.png

  # Just the H'cr statistic
  clgplot hcr -d sample.dat

  # Inspect fitted components, or export them as CSV
  clgplot curves -c sample.irmunmix
  clgplot curves -c sample.irmunmix --csv

  # Review past results
  clgplot history

  # Re-plot automatically whenever the inputs change
  clgplot watch -d sample.dat -c sample.irmunmix`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("clgplot: IRM acquisition analysis and CLG fit plotting")
			fmt.Println()
			fmt.Println("Run 'clgplot plot -d DATA -c CURVES' to analyse a sample.")
			fmt.Println("Run 'clgplot --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: ~/.clgplot/clgplot.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(plotCmd)
	RootCmd.AddCommand(hcrCmd)
	RootCmd.AddCommand(curvesCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
