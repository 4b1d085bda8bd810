package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrolab/clgplot/internal/irm"
	"github.com/petrolab/clgplot/internal/output"
)

var (
	hcrDataFile string

	hcrCmd = &cobra.Command{
		Use:   "hcr",
		Short: "Compute H'cr for an acquisition data file",
		Long: `Parse an IRM acquisition file and print H'cr: the applied field at
which magnetization first reaches half of the saturation magnetization,
linearly interpolated between the bracketing measurements.`,
		Example: `  clgplot hcr -d sample.dat`,
		RunE:    runHcr,
	}
)

func init() {
	hcrCmd.Flags().StringVarP(&hcrDataFile, "data", "d", "", "IRM acquisition data file")
	hcrCmd.MarkFlagRequired("data")
}

func runHcr(cmd *cobra.Command, args []string) error {
	series, err := irm.LoadDataSeries(hcrDataFile)
	if err != nil {
		return err
	}

	hcr, err := irm.Hcr(series)
	if err != nil {
		return err
	}

	fmt.Println(output.FormatHcr(hcr))
	return nil
}
