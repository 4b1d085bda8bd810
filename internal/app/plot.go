package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrolab/clgplot/internal/config"
	"github.com/petrolab/clgplot/internal/irm"
	"github.com/petrolab/clgplot/internal/output"
	"github.com/petrolab/clgplot/internal/plotting"
	"github.com/petrolab/clgplot/internal/store"
)

var (
	plotDataFile   string
	plotCurvesFile string
	plotOutFile    string
	plotNoHistory  bool

	plotCmd = &cobra.Command{
		Use:   "plot",
		Short: "Analyse a sample and render its CLG fit plot",
		Long: `Parse an IRM acquisition file and its IrmUnmix decomposition, compute
H'cr, render the CLG fit figure, and record the result in the history
database.

The figure shows the measured remanence gradient (open circles, against
log10 field, normalized by SIRM), the summed model curve, and each fitted
component.`,
		Example: `  # Analyse and write sample.png
  clgplot plot -d sample.dat -c sample.irmunmix

  # Choose the output file (extension selects the format)
  clgplot plot -d sample.dat -c sample.irmunmix -o fit.pdf

  # Skip the history record
  clgplot plot -d sample.dat -c sample.irmunmix --no-history`,
		RunE: runPlot,
	}
)

func init() {
	plotCmd.Flags().StringVarP(&plotDataFile, "data", "d", "", "IRM acquisition data file")
	plotCmd.Flags().StringVarP(&plotCurvesFile, "curves", "c", "", "IrmUnmix result file")
	plotCmd.Flags().StringVarP(&plotOutFile, "out", "o", "clgplot.png", "output figure file")
	plotCmd.Flags().BoolVar(&plotNoHistory, "no-history", false, "do not record the analysis")
	plotCmd.MarkFlagRequired("data")
	plotCmd.MarkFlagRequired("curves")
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	series, err := irm.LoadDataSeries(plotDataFile)
	if err != nil {
		return err
	}
	curves, err := irm.LoadCurveSet(plotCurvesFile)
	if err != nil {
		return err
	}

	hcr, err := irm.Hcr(series)
	if err != nil {
		return err
	}

	if err := plotting.Render(series, curves, plotOutFile, plotOptions(cfg)); err != nil {
		return err
	}

	fmt.Print(output.RenderComponentTable(curves))
	fmt.Println()
	fmt.Println(output.FormatHcr(hcr))
	fmt.Printf("Plot written to %s\n", plotOutFile)

	if plotNoHistory {
		return nil
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.RecordAnalysis(&store.Analysis{
		Sample:     series.Name,
		DataFile:   plotDataFile,
		CurvesFile: plotCurvesFile,
		SIRM:       curves.SIRM,
		Hcr:        hcr,
		Points:     len(series.Points),
		Components: len(curves.Components),
		PlotPath:   plotOutFile,
	})
}
