package state

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
)

// Store reads and writes the state file, guarded by a cross-process
// file lock so two installer runs cannot interleave.
type Store struct {
	path string
	fl   *flock.Flock
}

// NewStore creates a store for the given state file path. The lock
// file lives next to the state file.
func NewStore(statePath, lockPath string) *Store {
	return &Store{
		path: statePath,
		fl:   flock.New(lockPath),
	}
}

// Lock acquires the run lock without blocking. A held lock means
// another install is in progress.
func (s *Store) Lock() error {
	if err := os.MkdirAll(filepath.Dir(s.fl.Path()), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create state directory")
	}

	acquired, err := s.fl.TryLock()
	if err != nil {
		return errors.Wrap(err, errors.ErrStateLocked, "failed to acquire install lock")
	}
	if !acquired {
		return errors.Newf(errors.ErrStateLocked,
			"another ete run holds the lock at %s", s.fl.Path())
	}
	return nil
}

// Unlock releases the run lock. Safe to call when not held.
func (s *Store) Unlock() {
	_ = s.fl.Unlock()
}

// Load reads the state file. A missing file yields a fresh state.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, errors.Wrap(err, errors.ErrStateLoad, "failed to read state file")
	}

	var st State
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, errors.Wrap(err, errors.ErrStateLoad, "failed to parse state file")
	}
	if st.Steps == nil {
		st.Steps = make(map[string]Record)
	}
	return &st, nil
}

// Save writes the state file, creating its directory when needed.
// The write goes through a temp file and rename so a crash never
// leaves a truncated state file.
func (s *Store) Save(st *State) error {
	st.Version = CurrentVersion
	st.UpdatedAt = time.Now().UTC()

	data, err := toml.Marshal(st)
	if err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to marshal state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create state directory")
	}

	tmp, err := os.CreateTemp(dir, ".state-*.toml")
	if err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to create temp state file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrStateSave, "failed to write state")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrStateSave, "failed to close temp state file")
	}
	if err := os.Chmod(tmpPath, fileMode); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrStateSave, "failed to set state file mode")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrStateSave, "failed to replace state file")
	}
	return nil
}

// Path returns the state file path
func (s *Store) Path() string {
	return s.path
}
