package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

const defaultRunsDir = ".advent/runs"

// JSONStore keeps one JSON artifact per run under the runs directory.
type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: <runs_dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RunHistory = (*JSONStore)(nil)

// Dir is the directory artifacts are written to.
func (s *JSONStore) Dir() string {
	if filepath.IsAbs(s.runsDirName) {
		return s.runsDirName
	}
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveRun(run domain.RunReport) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if run.StartedAt.IsZero() {
		run.StartedAt = s.now()
	}
	ts := run.StartedAt.UTC()

	mode := string(run.Mode)
	if mode == "" {
		mode = string(domain.ModeExecute)
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405.000Z"), mode)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(artifactOf(run), "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, id, filename, run); err != nil {
			return id, &domain.OpError{
				Op:   "runstore.index",
				Kind: domain.KindExecution,
				Path: filepath.Join(dir, "index.jsonl"),
				Err:  err,
			}
		}
	}

	return id, nil
}

// artifact is the on-disk shape of a run. Durations are kept in
// milliseconds next to the raw nanoseconds for easier reading.
type artifact struct {
	domain.RunReport
	Passed     bool    `json:"passed"`
	FailedDays int     `json:"failed_days"`
	TotalMS    float64 `json:"total_ms"`
}

func artifactOf(run domain.RunReport) artifact {
	var total time.Duration
	for _, d := range run.Days {
		for _, p := range d.Parts {
			total += p.Elapsed
		}
	}
	return artifact{
		RunReport:  run,
		Passed:     run.Passed(),
		FailedDays: run.FailedDays(),
		TotalMS:    float64(total) / float64(time.Millisecond),
	}
}

func (s *JSONStore) appendIndex(dir, id, filename string, run domain.RunReport) error {
	type idx struct {
		ID        string         `json:"id"`
		File      string         `json:"file"`
		Mode      domain.RunMode `json:"mode"`
		Days      []int          `json:"days"`
		Passed    bool           `json:"passed"`
		StartedAt time.Time      `json:"started_at"`
	}
	days := make([]int, 0, len(run.Days))
	for _, d := range run.Days {
		days = append(days, d.Day)
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Mode:      run.Mode,
		Days:      days,
		Passed:    run.Passed(),
		StartedAt: run.StartedAt.UTC(),
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
