// Package plotting renders CLG fit figures. It is the only package that
// talks to the plotting library; callers hand it finished value objects and
// never see plot state.
package plotting

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/petrolab/clgplot/internal/irm"
)

// Options control figure geometry and model-curve sampling.
type Options struct {
	Width  vg.Length
	Height vg.Length
	// Model curves are sampled over [XMin, XMax] in log10 field at XStep
	// intervals.
	XMin  float64
	XMax  float64
	XStep float64
}

// DefaultOptions returns the figure geometry and sampling range used when no
// configuration overrides them.
func DefaultOptions() Options {
	return Options{
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
		XMin:   0.5,
		XMax:   3.0,
		XStep:  0.02,
	}
}

// Render writes the CLG fit figure for the given series and curve set to
// path. Either argument may be nil for a scatter-only or model-only figure,
// but not both. The output format follows the path extension (gonum/plot
// supports png, pdf, svg and others).
func Render(series *irm.DataSeries, curves *irm.CurveSet, path string, opts Options) error {
	if series == nil && curves == nil {
		return fmt.Errorf("nothing to plot: no data series and no curve set")
	}

	p := plot.New()
	p.X.Label.Text = "log10(Applied field (mT))"
	p.Y.Label.Text = "Gradient of normalized magnetization"

	switch {
	case series != nil:
		p.Title.Text = series.Name
	case curves != nil:
		p.Title.Text = curves.Name
	}

	if series != nil {
		pts, err := gradientPoints(series, curves)
		if err != nil {
			return err
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("failed to build measurement scatter: %w", err)
		}
		// Open circles, matching the conventional presentation of
		// measured remanence gradients.
		scatter.GlyphStyle.Shape = draw.RingGlyph{}
		scatter.GlyphStyle.Color = color.Black
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}

	if curves != nil {
		sum := sampleCurve(opts, func(x float64) float64 { return curves.Evaluate(x, true) })
		total, err := plotter.NewLine(sum)
		if err != nil {
			return fmt.Errorf("failed to build model curve: %w", err)
		}
		total.LineStyle.Width = vg.Points(1)
		total.LineStyle.Color = color.Black
		p.Add(total)

		for i, c := range curves.Components {
			xys := sampleCurve(opts, c.Evaluate)
			line, err := plotter.NewLine(xys)
			if err != nil {
				return fmt.Errorf("failed to build component curve %d: %w", i+1, err)
			}
			line.LineStyle.Width = vg.Points(0.5)
			line.LineStyle.Color = color.Black
			p.Add(line)
		}
	}

	// Floor the y axis after the plotters have set the data range.
	p.Y.Min = 0

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// gradientPoints converts a measured series into scatter points: the
// gradient of magnetization with respect to log10 field, normalized by the
// curve set's SIRM when available and the series' own saturation otherwise.
// Leading non-positive fields (the zero-field origin) have no logarithm and
// are dropped.
func gradientPoints(series *irm.DataSeries, curves *irm.CurveSet) (plotter.XYs, error) {
	norm := series.SaturationMagnetization()
	if curves != nil {
		norm = curves.SIRM
	}
	if norm == 0 {
		return nil, fmt.Errorf("series %s: cannot normalize by zero saturation", series.Name)
	}

	start := 0
	for start < len(series.Points) && series.Points[start].Field <= 0 {
		start++
	}
	pts := series.Points[start:]
	if len(pts) < 2 {
		return nil, fmt.Errorf("series %s has too few positive-field points to plot", series.Name)
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = math.Log10(p.Field)
		ys[i] = p.Magnetization
	}
	grads := irm.Gradient(xs, ys)

	xys := make(plotter.XYs, len(pts))
	for i := range pts {
		xys[i].X = xs[i]
		xys[i].Y = grads[i] / norm
	}
	return xys, nil
}

func sampleCurve(opts Options, f func(float64) float64) plotter.XYs {
	var xys plotter.XYs
	for x := opts.XMin; x <= opts.XMax; x += opts.XStep {
		xys = append(xys, plotter.XY{X: x, Y: f(x)})
	}
	return xys
}
