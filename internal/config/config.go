// Package config provides runtime settings for clgplot.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath string
	Plot   PlotConfig
}

// PlotConfig holds figure geometry and model-curve sampling settings.
type PlotConfig struct {
	WidthInches  float64
	HeightInches float64
	ModelXMin    float64
	ModelXMax    float64
	ModelXStep   float64
}

// Load reads configuration from environment variables, falling back to
// defaults. The model sampling defaults match the 0.5–3.0 log10(mT) window
// conventional for IRM acquisition plots.
func Load() (*Config, error) {
	viper.SetDefault("CLGPLOT_DB", defaultDBPath())
	viper.SetDefault("CLGPLOT_PLOT_WIDTH", 6.0)
	viper.SetDefault("CLGPLOT_PLOT_HEIGHT", 4.0)
	viper.SetDefault("CLGPLOT_MODEL_XMIN", 0.5)
	viper.SetDefault("CLGPLOT_MODEL_XMAX", 3.0)
	viper.SetDefault("CLGPLOT_MODEL_XSTEP", 0.02)

	viper.AutomaticEnv()

	cfg := &Config{
		DBPath: viper.GetString("CLGPLOT_DB"),
		Plot: PlotConfig{
			WidthInches:  viper.GetFloat64("CLGPLOT_PLOT_WIDTH"),
			HeightInches: viper.GetFloat64("CLGPLOT_PLOT_HEIGHT"),
			ModelXMin:    viper.GetFloat64("CLGPLOT_MODEL_XMIN"),
			ModelXMax:    viper.GetFloat64("CLGPLOT_MODEL_XMAX"),
			ModelXStep:   viper.GetFloat64("CLGPLOT_MODEL_XSTEP"),
		},
	}
	return cfg, nil
}

// defaultDBPath returns ~/.clgplot/clgplot.db, falling back to the working
// directory when the home directory cannot be determined.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "clgplot.db"
	}
	return filepath.Join(home, ".clgplot", "clgplot.db")
}
