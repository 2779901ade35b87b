package usecase

import (
	"WyckoffLab/internal/content"
	"WyckoffLab/internal/domain/models"
)

// QuizUsecase grades submissions against the catalog. Answer keys stay
// server-side; clients only ever see prompts and choices.
type QuizUsecase struct{}

func NewQuizUsecase() *QuizUsecase {
	return &QuizUsecase{}
}

// ForCourse returns the quiz attached to a course.
func (u *QuizUsecase) ForCourse(courseID string) (models.Quiz, error) {
	q, ok := content.QuizForCourse(courseID)
	if !ok {
		return models.Quiz{}, ErrUnknownQuiz
	}
	return q, nil
}

// Grade scores a submission. The answers slice is positional; a missing or
// out-of-range answer counts as wrong. Extra answers beyond the question
// count reject the submission.
func (u *QuizUsecase) Grade(quizID string, answers []int) (models.QuizResult, error) {
	quiz, ok := quizByID(quizID)
	if !ok {
		return models.QuizResult{}, ErrUnknownQuiz
	}
	if len(answers) > len(quiz.Questions) {
		return models.QuizResult{}, ErrAnswerCountMismatch
	}

	correct := 0
	for i, q := range quiz.Questions {
		if i < len(answers) && answers[i] == q.Answer {
			correct++
		}
	}

	total := len(quiz.Questions)
	return models.QuizResult{
		QuizID:  quiz.ID,
		Score:   100 * correct / total,
		Correct: correct,
		Total:   total,
	}, nil
}

func quizByID(id string) (models.Quiz, bool) {
	for _, q := range content.Quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return models.Quiz{}, false
}
