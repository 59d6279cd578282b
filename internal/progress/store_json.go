package progress

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Bucket file names under the data directory.
const (
	fileStudyProgress = "study_progress.json"
	fileQuizResults   = "quiz_results.json"
	fileStudyStats    = "study_stats.json"
	fileWrongAnswers  = "wrong_answers.json"
)

// JSONStore keeps each bucket in its own JSON file. Every write serializes
// the full bucket back via write-temp-then-rename, so a single bucket is
// never left half-written. Missing or malformed files read as empty.
type JSONStore struct {
	dir string
	agg *Aggregator
	mu  sync.RWMutex
}

func NewJSONStore(dir string, agg *Aggregator) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &JSONStore{dir: dir, agg: agg}, nil
}

func (s *JSONStore) SaveStudyProgress(_ context.Context, p StudyProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := map[string]StudyProgress{}
	s.read(fileStudyProgress, &all)
	all[p.Grade] = p
	return s.write(fileStudyProgress, all)
}

func (s *JSONStore) GradeProgress(_ context.Context, grade string) (StudyProgress, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := map[string]StudyProgress{}
	s.read(fileStudyProgress, &all)
	p, ok := all[grade]
	return p, ok, nil
}

func (s *JSONStore) SaveQuizResult(_ context.Context, r QuizResult) (StudyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Date == "" {
		r.Date = time.Now().UTC().Format(time.RFC3339)
	}

	prior := []QuizResult{}
	s.read(fileQuizResults, &prior)
	var stats StudyStats
	s.read(fileStudyStats, &stats)

	if err := s.write(fileQuizResults, append(prior, r)); err != nil {
		return StudyStats{}, err
	}
	updated := s.agg.Apply(stats, prior, r)
	if err := s.write(fileStudyStats, updated); err != nil {
		return StudyStats{}, err
	}
	return updated, nil
}

func (s *JSONStore) QuizResults(_ context.Context) ([]QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []QuizResult{}
	s.read(fileQuizResults, &out)
	return out, nil
}

func (s *JSONStore) Stats(_ context.Context) (StudyStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var stats StudyStats
	s.read(fileStudyStats, &stats)
	return stats, nil
}

func (s *JSONStore) RecomputeStats(_ context.Context) (StudyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := []QuizResult{}
	s.read(fileQuizResults, &results)
	stats := s.agg.Replay(results)
	if err := s.write(fileStudyStats, stats); err != nil {
		return StudyStats{}, err
	}
	return stats, nil
}

func (s *JSONStore) SaveWrongAnswer(_ context.Context, w WrongAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.Date == "" {
		w.Date = time.Now().UTC().Format(time.RFC3339)
	}
	all := []WrongAnswer{}
	s.read(fileWrongAnswers, &all)

	found := false
	for i, cur := range all {
		if cur.Character == w.Character && cur.Grade == w.Grade {
			w.Attempts = cur.Attempts + 1
			all[i] = w
			found = true
			break
		}
	}
	if !found {
		w.Attempts = 1
		all = append(all, w)
	}
	return s.write(fileWrongAnswers, all)
}

func (s *JSONStore) RemoveWrongAnswer(_ context.Context, character, grade string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := []WrongAnswer{}
	s.read(fileWrongAnswers, &all)
	kept := all[:0]
	for _, cur := range all {
		if cur.Character == character && cur.Grade == grade {
			continue
		}
		kept = append(kept, cur)
	}
	return s.write(fileWrongAnswers, kept)
}

func (s *JSONStore) WrongAnswers(_ context.Context, grade string) ([]WrongAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := []WrongAnswer{}
	s.read(fileWrongAnswers, &all)
	if grade == "" {
		return all, nil
	}
	out := []WrongAnswer{}
	for _, cur := range all {
		if cur.Grade == grade {
			out = append(out, cur)
		}
	}
	return out, nil
}

// read fills v from a bucket file. Absent or unreadable buckets leave v at
// its zero value: first-run state, never an error.
func (s *JSONStore) read(name string, v any) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, v)
}

func (s *JSONStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
