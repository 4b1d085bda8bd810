package store

import (
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	if err := s.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAnalysis(t *testing.T) {
	s := setupTestStore(t)

	a := &Analysis{
		Sample:     "sample.dat",
		DataFile:   "/data/sample.dat",
		CurvesFile: "/data/sample.irmunmix",
		SIRM:       1.532e-02,
		Hcr:        74.3,
		Points:     22,
		Components: 2,
		PlotPath:   "/data/sample.png",
	}

	if err := s.RecordAnalysis(a); err != nil {
		t.Fatalf("RecordAnalysis failed: %v", err)
	}
	if a.ID == 0 {
		t.Error("expected a non-zero ID after insert")
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be filled in")
	}

	got, err := s.ListAnalyses(0)
	if err != nil {
		t.Fatalf("ListAnalyses failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(got))
	}
	if got[0].Sample != "sample.dat" || got[0].SIRM != 1.532e-02 || got[0].Hcr != 74.3 {
		t.Errorf("unexpected analysis round-trip: %+v", got[0])
	}
	if got[0].Points != 22 || got[0].Components != 2 {
		t.Errorf("unexpected counts: %+v", got[0])
	}
}

func TestListAnalyses_OrderAndLimit(t *testing.T) {
	s := setupTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		a := &Analysis{
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			Sample:     "sample.dat",
			DataFile:   "/data/sample.dat",
			CurvesFile: "/data/sample.irmunmix",
			SIRM:       0.01,
			Hcr:        float64(70 + i),
			Points:     10,
			Components: 2,
		}
		if err := s.RecordAnalysis(a); err != nil {
			t.Fatalf("RecordAnalysis failed: %v", err)
		}
	}

	got, err := s.ListAnalyses(2)
	if err != nil {
		t.Fatalf("ListAnalyses failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(got))
	}
	// Newest first.
	if got[0].Hcr != 72 || got[1].Hcr != 71 {
		t.Errorf("unexpected order: %g, %g", got[0].Hcr, got[1].Hcr)
	}
}

func TestListAnalyses_Empty(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.ListAnalyses(10)
	if err != nil {
		t.Fatalf("ListAnalyses failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no analyses, got %d", len(got))
	}
}
