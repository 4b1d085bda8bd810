package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrolab/clgplot/internal/config"
	"github.com/petrolab/clgplot/internal/output"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List recorded analyses",
		Long: `List past analyses from the history database, newest first. Every
successful 'clgplot plot' run is recorded unless --no-history was given.`,
		Example: `  clgplot history

  # Only the ten most recent
  clgplot history --limit 10`,
		RunE: runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of analyses to list (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	analyses, err := db.ListAnalyses(historyLimit)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderHistoryTable(analyses))
	return nil
}
