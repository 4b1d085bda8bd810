package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/petrolab/clgplot/internal/config"
	"github.com/petrolab/clgplot/internal/plotting"
	"github.com/petrolab/clgplot/internal/store"
)

// getDBPath returns the history database path, using the flag value or the
// configured default, and makes sure its directory exists.
func getDBPath(cfg *config.Config) (string, error) {
	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return path, nil
}

// openStore opens the history database and creates the schema if needed.
func openStore(cfg *config.Config) (*store.Store, error) {
	path, err := getDBPath(cfg)
	if err != nil {
		return nil, err
	}

	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.CreateSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	return db, nil
}

// plotOptions maps configuration onto figure options.
func plotOptions(cfg *config.Config) plotting.Options {
	opts := plotting.DefaultOptions()
	opts.Width = vg.Length(cfg.Plot.WidthInches) * vg.Inch
	opts.Height = vg.Length(cfg.Plot.HeightInches) * vg.Inch
	opts.XMin = cfg.Plot.ModelXMin
	opts.XMax = cfg.Plot.ModelXMax
	opts.XStep = cfg.Plot.ModelXStep
	return opts
}
