package irm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Component is one cumulative log-gaussian curve fitted by IrmUnmix,
// representing a single magnetic mineral population.
type Component struct {
	AbsContribution float64 // absolute contribution to total remanence
	RelContribution float64 // fraction of SIRM carried by this component
	LogMean         float64 // mean log10 field, the peak position
	Dispersion      float64 // dispersion parameter, the peak width
	Amplitude       float64 // peak height: rel contribution corrected for dispersion
}

// NewComponent builds a Component from the four values IrmUnmix reports for
// each fitted curve.
func NewComponent(abs, rel, mean, dp float64) Component {
	return Component{
		AbsContribution: abs,
		RelContribution: rel,
		LogMean:         mean,
		Dispersion:      dp,
		Amplitude:       rel / (dp * math.Sqrt(2*math.Pi)),
	}
}

// Evaluate returns the component's density at log10 applied field x.
func (c Component) Evaluate(x float64) float64 {
	d := x - c.LogMean
	return c.Amplitude * math.Exp(-(d*d)/(2*c.Dispersion*c.Dispersion))
}

// BHalf returns the component's peak position in field units (mT).
func (c Component) BHalf() float64 {
	return math.Pow(10, c.LogMean)
}

// CurveSet is a full IrmUnmix decomposition: the fitted components plus the
// total saturation remanence they were fitted against.
type CurveSet struct {
	Name       string
	SIRM       float64
	Components []Component
}

// Evaluate sums the component densities at log10 applied field x. The sum is
// scaled by SIRM unless normalized is true.
func (cs *CurveSet) Evaluate(x float64, normalized bool) float64 {
	var sum float64
	for _, c := range cs.Components {
		sum += c.Evaluate(x)
	}
	if !normalized {
		sum *= cs.SIRM
	}
	return sum
}

// The IrmUnmix output layout is a fixed external interface: a True SIRM
// header, a spacer line, then one four-line record per fitted component.
var (
	sirmRe = regexp.MustCompile(`^\s*True SIRM=\s+(\S+)`)
	absRe  = regexp.MustCompile(`^\s*Abs Cont=\s+(\S+)\s*$`)
	relRe  = regexp.MustCompile(`^\s*Rel Cont=\s+(\S+)\s+Mean=\s+(\S+)\s+DP=\s+(\S+)\s*$`)
)

// LoadCurveSet reads an IrmUnmix result file from disk. The curve set is
// named after the file's base name.
func LoadCurveSet(path string) (*CurveSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open curves file: %w", err)
	}
	defer f.Close()
	return ReadCurveSet(f, filepath.Base(path))
}

// ReadCurveSet parses IrmUnmix output. Only syntactic well-formedness is
// checked; the numeric fields are taken at face value. A malformed header,
// a record with the wrong field count, or a non-numeric field produces a
// ParseError naming the offending line.
func ReadCurveSet(r io.Reader, name string) (*CurveSet, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read curves file: %w", err)
	}
	if len(lines) == 0 {
		return nil, &ParseError{File: name, Reason: "empty file"}
	}

	m := sirmRe.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, &ParseError{File: name, Line: 1, Reason: "missing True SIRM header"}
	}
	sirm, err := parseField(name, 1, "SIRM", m[1])
	if err != nil {
		return nil, err
	}

	cs := &CurveSet{Name: name, SIRM: sirm}
	// Skip the spacer line after the header; records follow at fixed
	// four-line strides (Component, Abs Cont, Rel Cont, blank).
	for i := 2; i < len(lines); i += 4 {
		if !strings.HasPrefix(strings.TrimLeft(lines[i], " "), "Component") {
			break
		}
		if i+2 >= len(lines) {
			return nil, &ParseError{File: name, Line: i + 1, Reason: "truncated component record"}
		}
		am := absRe.FindStringSubmatch(lines[i+1])
		if am == nil {
			return nil, &ParseError{File: name, Line: i + 2, Reason: "malformed Abs Cont line"}
		}
		rm := relRe.FindStringSubmatch(lines[i+2])
		if rm == nil {
			return nil, &ParseError{File: name, Line: i + 3, Reason: "malformed Rel Cont line"}
		}
		abs, err := parseField(name, i+2, "Abs Cont", am[1])
		if err != nil {
			return nil, err
		}
		rel, err := parseField(name, i+3, "Rel Cont", rm[1])
		if err != nil {
			return nil, err
		}
		mean, err := parseField(name, i+3, "Mean", rm[2])
		if err != nil {
			return nil, err
		}
		dp, err := parseField(name, i+3, "DP", rm[3])
		if err != nil {
			return nil, err
		}
		cs.Components = append(cs.Components, NewComponent(abs, rel, mean, dp))
	}
	if len(cs.Components) == 0 {
		return nil, &ParseError{File: name, Reason: "no component records found"}
	}
	return cs, nil
}

func parseField(file string, line int, field, token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &ParseError{File: file, Line: line,
			Reason: fmt.Sprintf("bad %s value %q", field, token)}
	}
	return v, nil
}

// CSVHeader returns the column header for CSVLine output, repeated per
// component.
func (cs *CurveSet) CSVHeader() string {
	cols := make([]string, len(cs.Components))
	for i := range cols {
		cols[i] = "M_abs,m_rel,a,Bhalf,DP"
	}
	return "Sample," + strings.Join(cols, ",")
}

// CSVLine returns the fitted parameters as a single CSV record, matching the
// parameter export of the original analysis tooling.
func (cs *CurveSet) CSVLine() string {
	parts := []string{cs.Name}
	for _, c := range cs.Components {
		parts = append(parts, fmt.Sprintf("%.2f,%.2f,%.2f,%.2f,%.2f",
			c.AbsContribution, c.RelContribution, c.Amplitude, c.LogMean, c.Dispersion))
	}
	return strings.Join(parts, ",")
}
