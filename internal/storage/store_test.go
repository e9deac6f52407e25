package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir(), zerolog.Nop())
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := testStore(t)

	ts := []float64{0, 1}
	xt := [][]float64{{0, 1}, {0, 2}}
	yt := [][]float64{{0, 0}, {0, 0}}
	zt := [][]float64{{0, 0}, {0, 0}}

	runID, err := s.Save(RunMetadata{
		Phantom:  "ring",
		Scenario: "drift",
		Dt:       0.5,
		Duration: 1,
		Metrics:  map[string]float64{"max_displacement": 2},
	}, ts, xt, yt, zt)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	meta, err := s.LoadMetadata(runID)
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	if meta.Phantom != "ring" || meta.Spins != 2 || meta.Samples != 2 {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Metrics["max_displacement"] != 2 {
		t.Errorf("metrics lost: %v", meta.Metrics)
	}
}

func TestSave_TrajectoryCSV(t *testing.T) {
	s := testStore(t)

	runID, err := s.Save(RunMetadata{Phantom: "p", Scenario: "s"},
		[]float64{0}, [][]float64{{1.5}}, [][]float64{{-2}}, [][]float64{{0}})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 record, got %d rows", len(records))
	}
	if records[1][2] != "1.5" || records[1][3] != "-2" {
		t.Errorf("record = %v", records[1])
	}
}

func TestList(t *testing.T) {
	s := testStore(t)

	if runs, err := s.List(); err != nil || len(runs) != 0 {
		t.Fatalf("empty store List = %v, %v", runs, err)
	}

	_, err := s.Save(RunMetadata{Phantom: "p", Scenario: "s"},
		[]float64{0}, [][]float64{{0}}, [][]float64{{0}}, [][]float64{{0}})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestList_MissingBaseDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "never-created"), zerolog.Nop())
	runs, err := s.List()
	if err != nil || runs != nil {
		t.Errorf("List on missing dir = %v, %v", runs, err)
	}
}
