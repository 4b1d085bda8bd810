package irm

import (
	"errors"
	"math"
	"testing"
)

func seriesFrom(fields, mags []float64) *DataSeries {
	s := &DataSeries{Name: "test"}
	for i := range fields {
		s.Points = append(s.Points, Point{Field: fields[i], Magnetization: mags[i]})
	}
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-10
}

func TestHcr(t *testing.T) {
	tests := []struct {
		name   string
		fields []float64
		mags   []float64
		want   float64
	}{
		// Half of a zero maximum is reached at the first point.
		{"all zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		// Half-saturation of 9 is hit exactly at field 5.
		{"exact hit", []float64{1, 2, 5, 16, 19, 99}, []float64{1, 1, 9, 11, 18, 14}, 5},
		{"interpolated", []float64{0, 2, 3, 8}, []float64{1, 2, 4, 6}, 2.5},
		{"interpolated from zero", []float64{0, 2, 3, 8}, []float64{0, 1, 5, 8}, 2.75},
		{"midpoint", []float64{0, 10}, []float64{0, 20}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hcr(seriesFrom(tt.fields, tt.mags))
			if err != nil {
				t.Fatalf("Hcr failed: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("expected H'cr %g, got %g", tt.want, got)
			}
		})
	}
}

func TestHcr_Idempotent(t *testing.T) {
	s := seriesFrom([]float64{0, 2, 3, 8}, []float64{0, 1, 5, 8})

	first, err := Hcr(s)
	if err != nil {
		t.Fatalf("Hcr failed: %v", err)
	}
	second, err := Hcr(s)
	if err != nil {
		t.Fatalf("Hcr failed on second call: %v", err)
	}
	if first != second {
		t.Errorf("H'cr not deterministic: %g vs %g", first, second)
	}
}

func TestHalfSaturationField_ExternalSaturation(t *testing.T) {
	// The half level of 10 is reached exactly at the second point, so no
	// interpolation happens.
	points := []Point{{Field: 10, Magnetization: 0}, {Field: 20, Magnetization: 10}}

	got, err := HalfSaturationField(points, 20)
	if err != nil {
		t.Fatalf("HalfSaturationField failed: %v", err)
	}
	if got != 20 {
		t.Errorf("expected H'cr 20, got %g", got)
	}
}

func TestHalfSaturationField_InsufficientRange(t *testing.T) {
	points := []Point{{Field: 10, Magnetization: 1}, {Field: 20, Magnetization: 4}}

	_, err := HalfSaturationField(points, 100)
	var cerr *ComputationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ComputationError, got %v", err)
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		t.Error("ComputationError must not match ParseError")
	}
}

func TestHcr_NegativeMagnetizations(t *testing.T) {
	// Max is -10, half is -5, and no point reaches -5.
	s := seriesFrom([]float64{10, 20, 30}, []float64{-40, -10, -20})

	_, err := Hcr(s)
	var cerr *ComputationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ComputationError, got %v", err)
	}
}

func TestGradient(t *testing.T) {
	got := Gradient([]float64{1, 2}, []float64{5, 7})
	if len(got) != 2 || got[0] != 2 || got[1] != 2 {
		t.Errorf("expected [2 2], got %v", got)
	}

	// Interior points average the slopes on either side.
	got = Gradient([]float64{0, 1, 2}, []float64{0, 1, 4})
	if !almostEqual(got[1], 2) {
		t.Errorf("expected interior gradient 2, got %g", got[1])
	}

	got = Gradient([]float64{1}, []float64{5})
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("expected [0] for a single point, got %v", got)
	}
}
