package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	SessionFile     = "last_session_info.json"
	LeaderboardFile = "leaderboard.json"
)

// Store reads and writes the two record files inside one directory.
type Store struct {
	dir    string
	policy Policy
}

func NewStore(dir string, policy Policy) *Store {
	return &Store{dir: dir, policy: policy}
}

func (s *Store) SessionPath() string     { return filepath.Join(s.dir, SessionFile) }
func (s *Store) LeaderboardPath() string { return filepath.Join(s.dir, LeaderboardFile) }

// Save overwrites the last session and, if the score earns a place, the
// leaderboard.
func (s *Store) Save(rec Session) error {
	if err := s.SaveSession(rec); err != nil {
		return err
	}
	rank, updated, err := s.UpdateLeaderboard(rec)
	if err != nil {
		return err
	}
	ev := log.Info().Int("score", rec.Score).Int("seconds", rec.Seconds)
	if updated {
		ev = ev.Str("place", Places[rank])
	}
	ev.Msg("session saved")
	return nil
}

func (s *Store) SaveSession(rec Session) error {
	return writeJSON(s.SessionPath(), rec, 3)
}

func (s *Store) LastSession() (Session, error) {
	var rec Session
	err := readJSON(s.SessionPath(), &rec)
	return rec, err
}

func (s *Store) Leaderboard() (Leaderboard, error) {
	var lb Leaderboard
	err := readJSON(s.LeaderboardPath(), &lb)
	return lb, err
}

// UpdateLeaderboard applies rec to the stored board. The file is only
// rewritten when an entry changed.
func (s *Store) UpdateLeaderboard(rec Session) (int, bool, error) {
	lb, err := s.Leaderboard()
	if err != nil {
		return -1, false, err
	}
	rank, updated := lb.Update(rec, s.policy)
	if !updated {
		return -1, false, nil
	}
	if err := writeJSON(s.LeaderboardPath(), lb, 10); err != nil {
		return -1, false, err
	}
	return rank, true, nil
}

// EnsureLeaderboard writes an empty board when none exists yet.
func (s *Store) EnsureLeaderboard() (bool, error) {
	_, err := os.Stat(s.LeaderboardPath())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return false, fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	if err := writeJSON(s.LeaderboardPath(), Leaderboard{}, 10); err != nil {
		return false, err
	}
	return true, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeJSON replaces path atomically through a temp file in the same dir.
func writeJSON(path string, v any, indent int) error {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
