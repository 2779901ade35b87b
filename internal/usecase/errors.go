package usecase

import "errors"

var (
	// ErrInvalidSeries marks a candle batch that is out of order, has
	// duplicate times, or contains malformed candles. The whole batch is
	// rejected; the previously stored series stays in place.
	ErrInvalidSeries = errors.New("invalid candle series")

	// ErrNotArmed is returned by Place when no concept is armed.
	ErrNotArmed = errors.New("no concept armed")

	// ErrUnknownConcept is returned by Arm for a tag outside the catalog.
	ErrUnknownConcept = errors.New("unknown concept")

	// ErrUnknownLesson marks a lesson id outside the catalog.
	ErrUnknownLesson = errors.New("unknown lesson")

	// ErrUnknownQuiz marks a quiz or course id with no quiz attached.
	ErrUnknownQuiz = errors.New("unknown quiz")

	// ErrAnswerCountMismatch marks a submission with more answers than the
	// quiz has questions.
	ErrAnswerCountMismatch = errors.New("answer count exceeds question count")
)
