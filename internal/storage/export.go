package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/dynarray/internal/workload"
)

type ExportData struct {
	ID       string             `json:"id"`
	Scenario string             `json:"scenario"`
	Final    string             `json:"final"`
	Size     int                `json:"size"`
	Capacity int                `json:"capacity"`
	Steps    []workload.Step    `json:"steps"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run, metadata and steps, as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	steps, err := s.LoadSteps(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		ID:       meta.ID,
		Scenario: meta.Scenario,
		Final:    meta.Final,
		Size:     meta.Size,
		Capacity: meta.Capacity,
		Steps:    steps,
		Metrics:  meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (s *Store) ExportJSONStdout(runID string) error {
	return s.ExportJSON(os.Stdout, runID)
}
