package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/dynarray/internal/workload"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.csv"
)

// ErrInvalidRunID indicates a run ID that does not name a run directory.
var ErrInvalidRunID = errors.New("storage: invalid run id")

var stepsHeader = []string{"step", "op", "arg", "value", "order", "size", "capacity", "grew", "error", "snapshot"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Steps     int                `json:"steps"`
	Final     string             `json:"final"`
	Size      int                `json:"size"`
	Capacity  int                `json:"capacity"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(result *workload.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%s", safeName(result.Name), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  result.Name,
		Timestamp: now,
		Steps:     len(result.Steps),
		Final:     result.Final,
		Size:      result.Size,
		Capacity:  result.Capacity,
		Metrics:   result.Metrics,
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSteps(filepath.Join(runDir, stepsFile), result.Steps); err != nil {
		return "", err
	}

	return runID, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSteps(path string, steps []workload.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(stepsHeader); err != nil {
		f.Close()
		return err
	}
	for _, st := range steps {
		if err := w.Write(stepRecord(st)); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// safeName reduces a scenario name to characters that are safe in a single
// path element. Anything else, separators and dots included, becomes '_'.
func safeName(name string) string {
	b := []byte(name)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			b[i] = '_'
		}
	}
	if len(b) == 0 {
		return "run"
	}
	return string(b)
}

// runDir resolves runID inside the base directory, rejecting IDs that
// would name anything but a direct child of it.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || filepath.Base(runID) != runID || strings.ContainsAny(runID, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRunID, runID)
	}
	return filepath.Join(s.baseDir, runID), nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]workload.Step, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(dir, stepsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(stepsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []workload.Step{}, nil
	}

	steps := make([]workload.Step, 0, len(records)-1)
	for i, record := range records[1:] {
		st, err := parseStep(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", stepsFile, i+2, err)
		}
		steps = append(steps, st)
	}

	return steps, nil
}

func stepRecord(st workload.Step) []string {
	return []string{
		strconv.Itoa(st.Index),
		st.Op,
		strconv.Itoa(st.Arg),
		strconv.Itoa(st.Value),
		st.Order,
		strconv.Itoa(st.Size),
		strconv.Itoa(st.Capacity),
		strconv.FormatBool(st.Grew),
		st.Err,
		st.Snapshot,
	}
}

func parseStep(record []string) (workload.Step, error) {
	var st workload.Step
	ints := []struct {
		dst *int
		src string
	}{
		{&st.Index, record[0]},
		{&st.Arg, record[2]},
		{&st.Value, record[3]},
		{&st.Size, record[5]},
		{&st.Capacity, record[6]},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(f.src)
		if err != nil {
			return st, err
		}
		*f.dst = v
	}

	grew, err := strconv.ParseBool(record[7])
	if err != nil {
		return st, err
	}

	st.Op = record[1]
	st.Order = record[4]
	st.Grew = grew
	st.Err = record[8]
	st.Snapshot = record[9]
	return st, nil
}
