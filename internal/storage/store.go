// Package storage persists evaluated trajectories: one directory per run
// holding metadata.json and trajectory.csv. Motion definitions are never
// written, only the coordinates they produce.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

type Store struct {
	baseDir string
	log     zerolog.Logger
}

func New(baseDir string, log zerolog.Logger) *Store {
	return &Store{baseDir: baseDir, log: log}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Phantom   string             `json:"phantom"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Spins     int                `json:"spins"`
	Samples   int                `json:"samples"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Seed      int64              `json:"seed"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(meta RunMetadata, ts []float64, xt, yt, zt [][]float64) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", meta.Phantom, meta.Scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Spins = len(xt)
	meta.Samples = len(ts)

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeTrajectory(filepath.Join(runDir, "trajectory.csv"), ts, xt, yt, zt); err != nil {
		return "", err
	}

	s.log.Info().
		Str("run", runID).
		Int("spins", meta.Spins).
		Int("samples", meta.Samples).
		Msg("run saved")

	return runID, nil
}

// List returns every run's metadata, most recent last.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			s.log.Warn().Str("run", e.Name()).Err(err).Msg("skipping unreadable run")
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTrajectory(path string, ts []float64, xt, yt, zt [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"spin", "t", "x", "y", "z"}); err != nil {
		return err
	}
	for i := range xt {
		for j, t := range ts {
			rec := []string{
				strconv.Itoa(i),
				strconv.FormatFloat(t, 'g', -1, 64),
				strconv.FormatFloat(xt[i][j], 'g', -1, 64),
				strconv.FormatFloat(yt[i][j], 'g', -1, 64),
				strconv.FormatFloat(zt[i][j], 'g', -1, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return w.Error()
}
