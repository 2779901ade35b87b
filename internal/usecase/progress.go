package usecase

import (
	"WyckoffLab/internal/content"
	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
)

// ProgressSummary augments raw progress with catalog totals for the UI.
type ProgressSummary struct {
	models.UserProgress
	CompletedCount int `json:"completedCount"`
	TotalLessons   int `json:"totalLessons"`
}

// ProgressUsecase validates lesson ids against the catalog before delegating
// persistence to the store.
type ProgressUsecase struct {
	store repository.ProgressStore
}

func NewProgressUsecase(store repository.ProgressStore) *ProgressUsecase {
	return &ProgressUsecase{store: store}
}

// Get returns the user's progress with catalog totals.
func (u *ProgressUsecase) Get(userID string) (*ProgressSummary, error) {
	p, err := u.store.Get(userID)
	if err != nil {
		return nil, err
	}
	return u.summarize(p), nil
}

// SetLessonCompletion marks a catalog lesson complete or incomplete.
func (u *ProgressUsecase) SetLessonCompletion(userID, lessonID string, completed bool) (*ProgressSummary, error) {
	if _, ok := content.LessonByID(lessonID); !ok {
		return nil, ErrUnknownLesson
	}
	p, err := u.store.SetLessonCompletion(userID, lessonID, completed)
	if err != nil {
		return nil, err
	}
	return u.summarize(p), nil
}

// RecordQuizScore stores a graded quiz result.
func (u *ProgressUsecase) RecordQuizScore(userID, quizID string, score int) (*ProgressSummary, error) {
	p, err := u.store.SetQuizScore(userID, quizID, score)
	if err != nil {
		return nil, err
	}
	return u.summarize(p), nil
}

func (u *ProgressUsecase) summarize(p *models.UserProgress) *ProgressSummary {
	return &ProgressSummary{
		UserProgress:   *p,
		CompletedCount: len(p.CompletedLessons()),
		TotalLessons:   content.TotalLessons(),
	}
}
