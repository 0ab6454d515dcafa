// Package state persists installer run state. Each step gets a record
// with its status and timestamps, stored as TOML in the XDG state
// directory. This is what makes recovery mode possible: a re-run with
// --recover skips steps already recorded done.
package state

import (
	"os"
	"time"
)

// Status is a step's recorded lifecycle state
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Record is the persisted state of one step
type Record struct {
	Status     Status    `toml:"status"`
	StartedAt  time.Time `toml:"started_at,omitempty"`
	FinishedAt time.Time `toml:"finished_at,omitempty"`
	Error      string    `toml:"error,omitempty"`
}

// State is the full persisted installer state
type State struct {
	Version   int               `toml:"version"`
	UpdatedAt time.Time         `toml:"updated_at"`
	Steps     map[string]Record `toml:"steps"`
}

// CurrentVersion is bumped when the on-disk format changes
const CurrentVersion = 1

// NewState returns an empty state
func NewState() *State {
	return &State{
		Version: CurrentVersion,
		Steps:   make(map[string]Record),
	}
}

// MarkRunning records that a step has started
func (s *State) MarkRunning(step string) {
	rec := s.Steps[step]
	rec.Status = StatusRunning
	rec.StartedAt = time.Now().UTC()
	rec.FinishedAt = time.Time{}
	rec.Error = ""
	s.Steps[step] = rec
}

// MarkDone records that a step completed successfully
func (s *State) MarkDone(step string) {
	rec := s.Steps[step]
	rec.Status = StatusDone
	rec.FinishedAt = time.Now().UTC()
	rec.Error = ""
	s.Steps[step] = rec
}

// MarkFailed records a step failure with its error message
func (s *State) MarkFailed(step string, err error) {
	rec := s.Steps[step]
	rec.Status = StatusFailed
	rec.FinishedAt = time.Now().UTC()
	if err != nil {
		rec.Error = err.Error()
	}
	s.Steps[step] = rec
}

// MarkSkipped records that a step was deliberately not run
func (s *State) MarkSkipped(step string) {
	rec := s.Steps[step]
	rec.Status = StatusSkipped
	s.Steps[step] = rec
}

// IsDone reports whether a step is recorded as completed
func (s *State) IsDone(step string) bool {
	return s.Steps[step].Status == StatusDone
}

// StatusOf returns the recorded status for a step, StatusPending if none
func (s *State) StatusOf(step string) Status {
	if rec, ok := s.Steps[step]; ok && rec.Status != "" {
		return rec.Status
	}
	return StatusPending
}

// fileMode for the state file; it holds no secrets but stays private
const fileMode = os.FileMode(0644)
