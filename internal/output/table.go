// Package output provides terminal output utilities for clgplot: table
// rendering for fitted CLG components and recorded analyses, with ANSI color
// gated on TTY detection.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/petrolab/clgplot/internal/irm"
	"github.com/petrolab/clgplot/internal/store"
)

// ANSI color codes for component-contribution display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// RenderComponentTable renders the fitted CLG components of a curve set.
func RenderComponentTable(cs *irm.CurveSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sample: %s\n", cs.Name))
	sb.WriteString(fmt.Sprintf("SIRM:   %.4g\n\n", cs.SIRM))

	sb.WriteString(fmt.Sprintf("%-12s %-8s %-10s %-12s %-8s %-10s\n",
		"Component", "Rel", "Mean(log)", "B_half(mT)", "DP", "Abs"))
	sb.WriteString(strings.Repeat("-", 64) + "\n")

	for i, c := range cs.Components {
		rel := fmt.Sprintf("%-8.3f", c.RelContribution)
		if IsColorEnabled() {
			rel = contributionColor(c.RelContribution) + rel + colorReset
		}
		sb.WriteString(fmt.Sprintf("%-12d %s %-10.3f %-12.1f %-8.3f %-10.3g\n",
			i+1, rel, c.LogMean, c.BHalf(), c.Dispersion, c.AbsContribution))
	}

	return sb.String()
}

// contributionColor picks a color by how much of the total remanence a
// component carries.
func contributionColor(rel float64) string {
	switch {
	case rel >= 0.5:
		return colorGreen
	case rel >= 0.2:
		return colorYellow
	default:
		return colorGray
	}
}

// RenderHistoryTable renders recorded analyses, newest first.
func RenderHistoryTable(analyses []*store.Analysis) string {
	if len(analyses) == 0 {
		return "No recorded analyses.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-17s %-24s %-10s %-10s %-6s %-5s\n",
		"ID", "Date", "Sample", "SIRM", "H'cr(mT)", "Pts", "Cmp"))
	sb.WriteString(strings.Repeat("-", 82) + "\n")

	for _, a := range analyses {
		sb.WriteString(fmt.Sprintf("%-5d %-17s %-24s %-10.4g %-10.4g %-6d %-5d\n",
			a.ID,
			a.CreatedAt.Format("2006-01-02 15:04"),
			truncate(a.Sample, 24),
			a.SIRM,
			a.Hcr,
			a.Points,
			a.Components,
		))
	}

	return sb.String()
}

// FormatHcr formats an H'cr value for one-line command output.
func FormatHcr(hcr float64) string {
	return fmt.Sprintf("H'cr = %.4g mT", hcr)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
