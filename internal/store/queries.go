package store

import (
	"fmt"
	"time"
)

// RecordAnalysis inserts a completed analysis. The ID and CreatedAt fields
// are filled in on success.
func (s *Store) RecordAnalysis(a *Analysis) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO analyses
		(created_at, sample, data_file, curves_file, sirm, hcr, points, components, plot_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.Exec(query,
		a.CreatedAt.Format(time.RFC3339),
		a.Sample,
		a.DataFile,
		a.CurvesFile,
		a.SIRM,
		a.Hcr,
		a.Points,
		a.Components,
		a.PlotPath,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis for %s: %w", a.Sample, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get analysis id: %w", err)
	}
	a.ID = id
	return nil
}

// ListAnalyses returns recorded analyses, newest first. A limit of zero or
// less returns all of them.
func (s *Store) ListAnalyses(limit int) ([]*Analysis, error) {
	query := `
		SELECT id, created_at, sample, data_file, curves_file, sirm, hcr, points, components, plot_path
		FROM analyses
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		var a Analysis
		var createdAt string
		if err := rows.Scan(
			&a.ID,
			&createdAt,
			&a.Sample,
			&a.DataFile,
			&a.CurvesFile,
			&a.SIRM,
			&a.Hcr,
			&a.Points,
			&a.Components,
			&a.PlotPath,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for analysis %d: %w", a.ID, err)
		}
		analyses = append(analyses, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return analyses, nil
}
