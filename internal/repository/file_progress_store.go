package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"WyckoffLab/internal/domain/models"
	domrepo "WyckoffLab/internal/domain/repository"
	applogger "WyckoffLab/pkg/logger"
)

// FileProgressStore persists per-user progress in a single JSON file keyed
// by user id. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated store. Per-user semantics are last-write-wins.
type FileProgressStore struct {
	path string
	l    *applogger.Logger

	mu   sync.Mutex
	data map[string]*models.UserProgress
}

func NewFileProgressStore(path string, l *applogger.Logger) (*FileProgressStore, error) {
	s := &FileProgressStore{
		path: path,
		l:    l,
		data: make(map[string]*models.UserProgress),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

var _ domrepo.ProgressStore = (*FileProgressStore)(nil)

func (s *FileProgressStore) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read progress store: %w", err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, &s.data); err != nil {
		return fmt.Errorf("decode progress store: %w", err)
	}
	s.l.Info("progress store loaded",
		applogger.String("path", s.path),
		applogger.Int("users", len(s.data)),
	)
	return nil
}

// Get returns the user's progress, an empty record when the user is new.
func (s *FileProgressStore) Get(userID string) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(userID), nil
}

// SetLessonCompletion marks one lesson done or not done and persists.
func (s *FileProgressStore) SetLessonCompletion(userID, lessonID string, completed bool) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreateLocked(userID)
	now := time.Now().UTC()

	found := false
	for i := range p.Lessons {
		if p.Lessons[i].LessonID == lessonID {
			p.Lessons[i].Completed = completed
			if completed {
				p.Lessons[i].CompletedAt = &now
			} else {
				p.Lessons[i].CompletedAt = nil
			}
			found = true
			break
		}
	}
	if !found {
		lp := models.LessonProgress{LessonID: lessonID, Completed: completed}
		if completed {
			lp.CompletedAt = &now
		}
		p.Lessons = append(p.Lessons, lp)
	}
	p.LastUpdated = now

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s.snapshotLocked(userID), nil
}

// SetQuizScore stores a quiz score and persists.
func (s *FileProgressStore) SetQuizScore(userID, quizID string, score int) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreateLocked(userID)
	if p.QuizScores == nil {
		p.QuizScores = make(map[string]int)
	}
	p.QuizScores[quizID] = score
	p.LastUpdated = time.Now().UTC()

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s.snapshotLocked(userID), nil
}

func (s *FileProgressStore) getOrCreateLocked(userID string) *models.UserProgress {
	p, ok := s.data[userID]
	if !ok {
		p = models.NewUserProgress()
		s.data[userID] = p
	}
	return p
}

// snapshotLocked deep-copies one user's record so callers never alias the
// map entry.
func (s *FileProgressStore) snapshotLocked(userID string) *models.UserProgress {
	p, ok := s.data[userID]
	if !ok {
		return models.NewUserProgress()
	}

	cp := &models.UserProgress{
		Lessons:     make([]models.LessonProgress, len(p.Lessons)),
		QuizScores:  make(map[string]int, len(p.QuizScores)),
		LastUpdated: p.LastUpdated,
	}
	copy(cp.Lessons, p.Lessons)
	for k, v := range p.QuizScores {
		cp.QuizScores[k] = v
	}
	return cp
}

func (s *FileProgressStore) persistLocked() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("progress store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("progress store temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write progress store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close progress store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace progress store: %w", err)
	}
	return nil
}
