// Package store persists the arcade's settings, high scores and navigation
// session under a single data directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"arcade/internal/jsonutil"
	"arcade/internal/score"

	"gopkg.in/yaml.v3"
)

const (
	// DataDirEnv is the env var override for the ~/.arcade base (for testing).
	DataDirEnv = "ARCADE_DATA_DIR"
	// DefaultDataBase is the default data directory relative to the home dir.
	DefaultDataBase = ".arcade"

	settingsFile = "settings.yaml"
	scoresFile   = "scores.json"
	sessionFile  = "session.yaml"
)

// Settings are the player's preferences.
type Settings struct {
	Player     string           `yaml:"player"`
	Difficulty score.Difficulty `yaml:"difficulty"`
}

// DefaultSettings is used until the player saves their own.
func DefaultSettings() Settings {
	return Settings{Player: "player", Difficulty: score.Normal}
}

// Session is the navigation history saved at shutdown.
type Session struct {
	Entries []string `yaml:"entries"`
	Index   int      `yaml:"index"`
}

// Store reads and writes files in the data directory.
// Layout: <base>/settings.yaml, scores.json, session.yaml
type Store struct {
	baseDir string
	mu      sync.Mutex
}

// DefaultDir returns $ARCADE_DATA_DIR, or ~/.arcade when unset.
func DefaultDir() (string, error) {
	if base := os.Getenv(DataDirEnv); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDataBase), nil
}

// NewStore creates a store rooted at DefaultDir.
func NewStore() (*Store, error) {
	base, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return &Store{baseDir: base}, nil
}

// NewStoreAt creates a store rooted at dir.
func NewStoreAt(dir string) *Store {
	return &Store{baseDir: dir}
}

// BaseDir returns the data directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Settings loads the saved settings. Missing file yields DefaultSettings.
func (s *Store) Settings() (Settings, error) {
	out := DefaultSettings()
	if _, err := s.readYAML(settingsFile, &out); err != nil {
		return DefaultSettings(), err
	}
	out.Player = strings.TrimSpace(out.Player)
	if out.Player == "" {
		out.Player = DefaultSettings().Player
	}
	return out, nil
}

// SaveSettings writes settings.
func (s *Store) SaveSettings(v Settings) error {
	v.Player = strings.TrimSpace(v.Player)
	if v.Player == "" {
		return fmt.Errorf("save settings: player name is empty")
	}
	return s.writeYAML(settingsFile, v)
}

// Scores loads the high-score board. Missing file yields an empty board.
func (s *Store) Scores() (score.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadScores()
}

// RecordScore adds e to the board and saves it. Returns e's rank (0 when it
// did not make the board).
func (s *Store) RecordScore(e score.Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, err := s.loadScores()
	if err != nil {
		return 0, err
	}
	rank := board.Add(e)
	if err := jsonutil.WriteFile(s.path(scoresFile), board); err != nil {
		return 0, fmt.Errorf("save scores: %w", err)
	}
	return rank, nil
}

func (s *Store) loadScores() (score.Board, error) {
	var board score.Board
	if _, err := jsonutil.ReadFile(s.path(scoresFile), &board); err != nil {
		return score.Board{}, err
	}
	return board, nil
}

// Session loads the saved navigation session. ok is false when none exists.
func (s *Store) Session() (sess Session, ok bool, err error) {
	ok, err = s.readYAML(sessionFile, &sess)
	return sess, ok, err
}

// SaveSession writes the navigation session.
func (s *Store) SaveSession(sess Session) error {
	return s.writeYAML(sessionFile, sess)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.baseDir, name)
}

func (s *Store) readYAML(name string, v interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) writeYAML(name string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return jsonutil.WriteAtomic(s.path(name), data)
}
