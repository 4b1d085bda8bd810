package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrolab/clgplot/internal/irm"
)

func testSeries() *irm.DataSeries {
	return &irm.DataSeries{Name: "sample.dat", Points: []irm.Point{
		{Field: 0, Magnetization: 0},
		{Field: 10, Magnetization: 0.002},
		{Field: 30, Magnetization: 0.008},
		{Field: 100, Magnetization: 0.012},
		{Field: 300, Magnetization: 0.015},
	}}
}

func testCurves() *irm.CurveSet {
	return &irm.CurveSet{
		Name: "sample.irmunmix",
		SIRM: 0.015,
		Components: []irm.Component{
			irm.NewComponent(0.011, 0.75, 1.87, 0.30),
			irm.NewComponent(0.004, 0.25, 2.56, 0.20),
		},
	}
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fit.png")

	err := Render(testSeries(), testCurves(), out, DefaultOptions())
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestRender_SeriesOnly(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data.png")

	err := Render(testSeries(), nil, out, DefaultOptions())
	require.NoError(t, err)

	_, err = os.Stat(out)
	require.NoError(t, err)
}

func TestRender_CurvesOnly(t *testing.T) {
	out := filepath.Join(t.TempDir(), "model.png")

	err := Render(nil, testCurves(), out, DefaultOptions())
	require.NoError(t, err)

	_, err = os.Stat(out)
	require.NoError(t, err)
}

func TestRender_NoInputs(t *testing.T) {
	err := Render(nil, nil, filepath.Join(t.TempDir(), "x.png"), DefaultOptions())
	require.Error(t, err)
}

func TestRender_ZeroSaturation(t *testing.T) {
	series := &irm.DataSeries{Name: "flat.dat", Points: []irm.Point{
		{Field: 10, Magnetization: 0},
		{Field: 20, Magnetization: 0},
	}}

	err := Render(series, nil, filepath.Join(t.TempDir(), "flat.png"), DefaultOptions())
	require.Error(t, err)
}
