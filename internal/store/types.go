package store

import "time"

// Analysis is one completed parse/compute/plot run.
type Analysis struct {
	ID         int64
	CreatedAt  time.Time
	Sample     string
	DataFile   string
	CurvesFile string
	SIRM       float64
	Hcr        float64
	Points     int
	Components int
	PlotPath   string
}
