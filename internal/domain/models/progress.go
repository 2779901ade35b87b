package models

import "time"

// LessonProgress is the completion flag for one lesson.
type LessonProgress struct {
	LessonID    string     `json:"lessonId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// UserProgress is one user's stored course progress.
type UserProgress struct {
	Lessons     []LessonProgress `json:"lessons"`
	QuizScores  map[string]int   `json:"quizScores"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// NewUserProgress returns an empty record.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		Lessons:     []LessonProgress{},
		QuizScores:  map[string]int{},
		LastUpdated: time.Now().UTC(),
	}
}

// CompletedLessons lists ids of lessons marked complete.
func (p *UserProgress) CompletedLessons() []string {
	ids := make([]string, 0, len(p.Lessons))
	for _, l := range p.Lessons {
		if l.Completed {
			ids = append(ids, l.LessonID)
		}
	}
	return ids
}
