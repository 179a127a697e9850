// Package scores keeps difficulty-keyed top-score files. Each
// difficulty gets its own JSON file under the store directory.
package scores

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// keep is how many entries a top-score file retains.
const keep = 10

// Entry is one finished, won game.
type Entry struct {
	Username string `json:"username"`
	Seconds  int    `json:"seconds"`
	PlayedAt int64  `json:"playedAt"`
}

// Store reads and writes top-score files on the local filesystem.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) pathFor(difficulty string) string {
	name := strings.ToLower(strings.TrimSpace(difficulty))
	if name == "" {
		name = "default"
	}
	return filepath.Join(s.dir, name+".json")
}

// Load returns the saved entries for a difficulty, fastest first. A
// missing file is an empty list, not an error.
func (s *Store) Load(difficulty string) ([]Entry, error) {
	data, err := os.ReadFile(s.pathFor(difficulty))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Record inserts a finished game into the difficulty's table, keeping
// the fastest entries. Reports whether the entry made the table.
func (s *Store) Record(difficulty string, username string, elapsed time.Duration) (madeTable bool, err error) {
	entries, err := s.Load(difficulty)
	if err != nil {
		return false, err
	}

	seconds := int(elapsed.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	entries = append(entries, Entry{
		Username: username,
		Seconds:  seconds,
		PlayedAt: time.Now().Unix(),
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Seconds < entries[j].Seconds
	})
	if len(entries) > keep {
		entries = entries[:keep]
	}

	madeTable = false
	for _, e := range entries {
		if e.Username == username && e.Seconds == seconds {
			madeTable = true
			break
		}
	}

	if err := s.save(difficulty, entries); err != nil {
		return false, err
	}
	return madeTable, nil
}

// Best returns the fastest entry for a difficulty.
func (s *Store) Best(difficulty string) (Entry, bool, error) {
	entries, err := s.Load(difficulty)
	if err != nil || len(entries) == 0 {
		return Entry{}, false, err
	}
	return entries[0], true, nil
}

func (s *Store) save(difficulty string, entries []Entry) error {
	target := s.pathFor(difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
