package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"material-color-service/internal/model"
)

type Store struct {
	path  string
	mu    sync.RWMutex
	state model.StoredState
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.state = defaultState()
			return s.saveLocked()
		}
		return err
	}
	if len(b) == 0 {
		s.state = defaultState()
		return s.saveLocked()
	}

	var state model.StoredState
	if err := json.Unmarshal(b, &state); err != nil {
		return err
	}
	mergeDefaults(&state)
	s.state = state
	return nil
}

func defaultState() model.StoredState {
	return model.StoredState{
		RecentAnalyses:     []model.AnalysisRecord{},
		LastAnalysisByUser: map[string]model.AnalysisRecord{},
		CreatedAt:          time.Now().UTC(),
	}
}

func mergeDefaults(state *model.StoredState) {
	if state.RecentAnalyses == nil {
		state.RecentAnalyses = []model.AnalysisRecord{}
	}
	if state.LastAnalysisByUser == nil {
		state.LastAnalysisByUser = map[string]model.AnalysisRecord{}
	}
	if state.CreatedAt.IsZero() {
		state.CreatedAt = time.Now().UTC()
	}
}

func (s *Store) saveLocked() error {
	s.state.LastUpdatedUnixMS = time.Now().UnixMilli()
	b, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

// AddAnalysis records a completed analysis: it becomes the latest, joins the
// recent ring (newest first, trimmed to limit), and replaces the per-user
// entry.
func (s *Store) AddAnalysis(rec model.AnalysisRecord, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.LatestAnalysis = &rec
	s.state.RecentAnalyses = append([]model.AnalysisRecord{rec}, s.state.RecentAnalyses...)
	if limit > 0 && len(s.state.RecentAnalyses) > limit {
		s.state.RecentAnalyses = s.state.RecentAnalyses[:limit]
	}
	if rec.UserID != "" {
		s.state.LastAnalysisByUser[rec.UserID] = rec
	}
	return s.saveLocked()
}

func (s *Store) GetLatestAnalysis() *model.AnalysisRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.LatestAnalysis == nil {
		return nil
	}
	rec := *s.state.LatestAnalysis
	return &rec
}

func (s *Store) ListRecentAnalyses() []model.AnalysisRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AnalysisRecord, len(s.state.RecentAnalyses))
	copy(out, s.state.RecentAnalyses)
	return out
}

func (s *Store) GetUserAnalysis(userID string) *model.AnalysisRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.state.LastAnalysisByUser[userID]
	if !ok {
		return nil
	}
	cp := rec
	return &cp
}
