package irm

import "fmt"

// Hcr returns H'cr for the series: the applied field at which magnetization
// first reaches half of the series' saturation magnetization.
func Hcr(s *DataSeries) (float64, error) {
	return HalfSaturationField(s.Points, s.SaturationMagnetization())
}

// HalfSaturationField returns the applied field at which magnetization first
// reaches saturation/2, scanning the points in sequence order. The first
// point at or above the half level is the upper bracket; an exact hit (or a
// hit at the very first point) returns that point's field directly,
// otherwise the field is linearly interpolated against the preceding point.
// Interpolation is linear in (field, magnetization) space.
//
// Callers with an external saturation estimate, such as the SIRM reported by
// IrmUnmix, may pass it in place of the observed maximum. If no point
// reaches the half level the result is a ComputationError.
func HalfSaturationField(points []Point, saturation float64) (float64, error) {
	half := saturation / 2
	for i, p := range points {
		if p.Magnetization < half {
			continue
		}
		if i == 0 || p.Magnetization == half {
			return p.Field, nil
		}
		prev := points[i-1]
		frac := (half - prev.Magnetization) / (p.Magnetization - prev.Magnetization)
		return prev.Field + frac*(p.Field-prev.Field), nil
	}
	return 0, &ComputationError{
		Reason: fmt.Sprintf("magnetization never reaches half-saturation (%g)", half)}
}

// Gradient returns the gradient of ys with respect to xs at every point. At
// interior points it averages the one-sided slopes on either side; at the
// ends only the single available slope is used. Both slices must have the
// same length; with fewer than two points the gradient is zero everywhere.
func Gradient(xs, ys []float64) []float64 {
	grads := make([]float64, len(xs))
	if len(xs) < 2 {
		return grads
	}
	for i := range xs {
		switch {
		case i == 0:
			grads[i] = slope(xs[0], ys[0], xs[1], ys[1])
		case i == len(xs)-1:
			grads[i] = slope(xs[i-1], ys[i-1], xs[i], ys[i])
		default:
			before := slope(xs[i-1], ys[i-1], xs[i], ys[i])
			after := slope(xs[i], ys[i], xs[i+1], ys[i+1])
			grads[i] = (before + after) / 2
		}
	}
	return grads
}

func slope(x0, y0, x1, y1 float64) float64 {
	return (y1 - y0) / (x1 - x0)
}
