// Package irm parses isothermal remanent magnetization acquisition data and
// IrmUnmix CLG decompositions, and computes summary statistics over them.
package irm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// Point is one acquisition measurement: the applied field and the remanent
// magnetization observed at it.
type Point struct {
	Field         float64
	Magnetization float64
}

// DataSeries is an ordered IRM acquisition curve. Points appear in file
// order; the parser never reorders or filters them. A DataSeries returned by
// a parser always has at least one point.
type DataSeries struct {
	Name   string
	Points []Point
}

// SaturationMagnetization returns the maximum magnetization observed
// anywhere in the series.
func (s *DataSeries) SaturationMagnetization() float64 {
	max := s.Points[0].Magnetization
	for _, p := range s.Points[1:] {
		if p.Magnetization > max {
			max = p.Magnetization
		}
	}
	return max
}

// LoadDataSeries reads an acquisition file from disk. The series is named
// after the file's base name.
func LoadDataSeries(path string) (*DataSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()
	return ReadDataSeries(f, filepath.Base(path))
}

// ReadDataSeries parses two-column acquisition text: one measurement per
// non-blank line, applied field then magnetization, separated by whitespace
// or commas. A line with the wrong column count, a non-numeric token, or an
// input with no measurements at all produces a ParseError.
func ReadDataSeries(r io.Reader, name string) (*DataSeries, error) {
	series := &DataSeries{Name: name}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := splitColumns(line)
		if len(tokens) != 2 {
			return nil, &ParseError{File: name, Line: lineNo,
				Reason: fmt.Sprintf("expected 2 columns, found %d", len(tokens))}
		}
		field, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo,
				Reason: fmt.Sprintf("bad field value %q", tokens[0])}
		}
		mag, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo,
				Reason: fmt.Sprintf("bad magnetization value %q", tokens[1])}
		}
		series.Points = append(series.Points, Point{Field: field, Magnetization: mag})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	if len(series.Points) == 0 {
		return nil, &ParseError{File: name, Reason: "no measurements found"}
	}
	return series, nil
}

// splitColumns splits a measurement line on any run of whitespace or commas.
func splitColumns(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
