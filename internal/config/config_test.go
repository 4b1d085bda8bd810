package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(cfg.DBPath, "clgplot.db"))
	require.Equal(t, 6.0, cfg.Plot.WidthInches)
	require.Equal(t, 4.0, cfg.Plot.HeightInches)
	require.Equal(t, 0.5, cfg.Plot.ModelXMin)
	require.Equal(t, 3.0, cfg.Plot.ModelXMax)
	require.Equal(t, 0.02, cfg.Plot.ModelXStep)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLGPLOT_DB", "/tmp/other.db")
	t.Setenv("CLGPLOT_PLOT_WIDTH", "8.5")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "/tmp/other.db", cfg.DBPath)
	require.Equal(t, 8.5, cfg.Plot.WidthInches)
}
