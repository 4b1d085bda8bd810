package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrolab/clgplot/internal/irm"
	"github.com/petrolab/clgplot/internal/output"
)

var (
	curvesFile string
	curvesCSV  bool

	curvesCmd = &cobra.Command{
		Use:   "curves",
		Short: "Inspect the fitted components of an IrmUnmix result",
		Long: `Parse an IrmUnmix result file and print the fitted CLG components:
relative and absolute contributions, peak position (as log10 field and in
mT), and dispersion.

With --csv the parameters are printed as a single CSV record suitable for
collecting fits from many samples into one spreadsheet.`,
		Example: `  clgplot curves -c sample.irmunmix

  # One CSV line per invocation, with header
  clgplot curves -c sample.irmunmix --csv`,
		RunE: runCurves,
	}
)

func init() {
	curvesCmd.Flags().StringVarP(&curvesFile, "curves", "c", "", "IrmUnmix result file")
	curvesCmd.Flags().BoolVar(&curvesCSV, "csv", false, "print fitted parameters as CSV")
	curvesCmd.MarkFlagRequired("curves")
}

func runCurves(cmd *cobra.Command, args []string) error {
	cs, err := irm.LoadCurveSet(curvesFile)
	if err != nil {
		return err
	}

	if curvesCSV {
		fmt.Println(cs.CSVHeader())
		fmt.Println(cs.CSVLine())
		return nil
	}

	fmt.Print(output.RenderComponentTable(cs))
	return nil
}
