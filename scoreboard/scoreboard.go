// Package scoreboard keeps the history of finished games in a JSON file and
// serves as the engine's score sink.
package scoreboard

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Record is one finished game.
type Record struct {
	ID     string    `json:"id"`
	Player string    `json:"address"`
	Score  int       `json:"score"`
	Date   time.Time `json:"date"`
}

// Scoreboard holds the records in memory and mirrors them to path after every
// change. An empty path keeps the history in memory only.
type Scoreboard struct {
	path    string
	records []Record
	mutex   sync.RWMutex
	log     *log.Logger
	now     func() time.Time
}

// Open loads the history at path. A missing file starts an empty history.
func Open(path string, logger *log.Logger) (*Scoreboard, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Scoreboard{
		path:    path,
		records: make([]Record, 0),
		log:     logger,
		now:     time.Now,
	}
	if err := s.loadFromFile(); err != nil {
		return nil, err
	}
	return s, nil
}

// OnGameOver records the final score of a run. Save failures are logged.
func (s *Scoreboard) OnGameOver(finalScore int, playerID string) {
	record, ok, err := s.Add(finalScore, playerID)
	switch {
	case err != nil:
		s.log.Printf("could not save score %d for %q: %v", finalScore, playerID, err)
	case ok:
		s.log.Printf("saved score %d for %q as %s", record.Score, record.Player, record.ID)
	}
}

// Add appends a record and saves the history. Games without a player or
// without points are not kept; ok is false for those.
func (s *Scoreboard) Add(score int, player string) (record Record, ok bool, err error) {
	if score <= 0 || player == "" {
		return Record{}, false, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	record = Record{
		ID:     uuid.New().String(),
		Player: player,
		Score:  score,
		Date:   s.now().UTC(),
	}
	s.records = append(s.records, record)
	return record, true, s.save()
}

// Records returns the history, newest first.
func (s *Scoreboard) Records() []Record {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]Record, len(s.records))
	for i, r := range s.records {
		records[len(records)-1-i] = r
	}
	return records
}

// Top returns up to n records ordered by score, earlier games first on ties.
func (s *Scoreboard) Top(n int) []Record {
	s.mutex.RLock()
	records := make([]Record, len(s.records))
	copy(records, s.records)
	s.mutex.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if n >= 0 && n < len(records) {
		records = records[:n]
	}
	return records
}

// GetGamesPlayed returns the number of recorded games.
func (s *Scoreboard) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.records)
}

// GetHighScore returns the best recorded score.
func (s *Scoreboard) GetHighScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, r := range s.records {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

// GetAverageScore returns the mean recorded score.
func (s *Scoreboard) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.records {
		total += r.Score
	}
	return float64(total) / float64(len(s.records))
}

// GetBest returns the best score of one player and whether they have any record.
func (s *Scoreboard) GetBest(player string) (int, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best, found := 0, false
	for _, r := range s.records {
		if r.Player == player && (!found || r.Score > best) {
			best, found = r.Score, true
		}
	}
	return best, found
}

// save writes the history to disk. The caller holds the mutex.
func (s *Scoreboard) save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal score history")
	}

	// Replace the history atomically.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", s.path)
	}
	return nil
}

func (s *Scoreboard) loadFromFile() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", s.path)
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return errors.Wrapf(err, "failed to parse %s", s.path)
	}
	return nil
}
