package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/adrg/xdg"
)

const (
	organismsFile = "organisms.json"
	scoresFile    = "scores.json"
)

// Store reads and writes the shared record files. All writes are synchronous
// whole-file read-modify-write; coordination between concurrent writers is an
// external concern.
type Store struct {
	dir string
}

// NewStore uses the given directory, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir resolves the XDG data directory for petri.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, "petri")
}

// OrganismPath returns the organism store file path.
func (s *Store) OrganismPath() string { return filepath.Join(s.dir, organismsFile) }

// ScorePath returns the score store file path.
func (s *Store) ScorePath() string { return filepath.Join(s.dir, scoresFile) }

// LoadOrganisms returns all saved organisms in append order. A missing file
// is an empty store.
func (s *Store) LoadOrganisms() ([]OrganismRecord, error) {
	var records []OrganismRecord
	if err := readJSON(s.OrganismPath(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AppendOrganism appends one record, preserving all prior entries unchanged.
func (s *Store) AppendOrganism(rec OrganismRecord) error {
	records, err := s.LoadOrganisms()
	if err != nil {
		return err
	}
	records = append(records, rec)
	return writeJSON(s.OrganismPath(), records)
}

// LoadScores returns score entries sorted by score descending.
func (s *Store) LoadScores() ([]ScoreRecord, error) {
	var records []ScoreRecord
	if err := readJSON(s.ScorePath(), &records); err != nil {
		return nil, err
	}
	sortScores(records)
	return records, nil
}

// AppendScore appends one entry and re-sorts the file by score descending.
func (s *Store) AppendScore(rec ScoreRecord) error {
	records, err := s.LoadScores()
	if err != nil {
		return err
	}
	records = append(records, rec)
	sortScores(records)
	return writeJSON(s.ScorePath(), records)
}

func sortScores(records []ScoreRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Watcher polls a file's modification time so display screens can pick up
// records appended by a concurrently running designer process.
type Watcher struct {
	path string
	last time.Time
}

// NewWatcher starts tracking from the file's current modification time.
func NewWatcher(path string) *Watcher {
	w := &Watcher{path: path}
	if info, err := os.Stat(path); err == nil {
		w.last = info.ModTime()
	}
	return w
}

// Changed reports whether the file has been modified since the last call
// that returned true. Safe to poll every frame.
func (w *Watcher) Changed() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	if info.ModTime().After(w.last) {
		w.last = info.ModTime()
		return true
	}
	return false
}
