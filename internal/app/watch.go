package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/petrolab/clgplot/internal/config"
	"github.com/petrolab/clgplot/internal/irm"
	"github.com/petrolab/clgplot/internal/output"
	"github.com/petrolab/clgplot/internal/plotting"
	"github.com/petrolab/clgplot/internal/watcher"
)

var (
	watchDataFile   string
	watchCurvesFile string
	watchOutFile    string
	watchVerbose    bool

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-plot automatically when the input files change",
		Long: `Watch the input files and re-run the analysis whenever one of them is
written or replaced. The figure is rendered once at startup and refreshed
after every change; press Ctrl+C to stop.

The curves file is optional: without it the figure shows only the measured
remanence gradient, normalized by the series' own saturation.`,
		Example: `  # Re-plot on every save of either input
  clgplot watch -d sample.dat -c sample.irmunmix

  # Data only, custom output
  clgplot watch -d sample.dat -o live.png`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().StringVarP(&watchDataFile, "data", "d", "", "IRM acquisition data file")
	watchCmd.Flags().StringVarP(&watchCurvesFile, "curves", "c", "", "IrmUnmix result file")
	watchCmd.Flags().StringVarP(&watchOutFile, "out", "o", "clgplot.png", "output figure file")
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "log individual file events")
	watchCmd.MarkFlagRequired("data")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if watchVerbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	opts := plotOptions(cfg)
	rerun := func() error {
		series, err := irm.LoadDataSeries(watchDataFile)
		if err != nil {
			return err
		}
		var curves *irm.CurveSet
		if watchCurvesFile != "" {
			curves, err = irm.LoadCurveSet(watchCurvesFile)
			if err != nil {
				return err
			}
		}
		hcr, err := irm.Hcr(series)
		if err != nil {
			return err
		}
		if err := plotting.Render(series, curves, watchOutFile, opts); err != nil {
			return err
		}
		logger.Info().Str("plot", watchOutFile).Msg(output.FormatHcr(hcr))
		return nil
	}

	paths := []string{watchDataFile}
	if watchCurvesFile != "" {
		paths = append(paths, watchCurvesFile)
	}

	w, err := watcher.New(paths, rerun, logger)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	logger.Info().Strs("files", paths).Msg("watching for changes, Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("stopping")
	return w.Stop()
}
