package models

// CandlesRequest is the query for a one-shot candle fetch.
type CandlesRequest struct {
	Symbol   string `query:"symbol" validate:"required,min=5,max=12"`
	Interval string `query:"interval" default:"1h"`
}

// CandlesResponse carries a fetched series plus its classification.
type CandlesResponse struct {
	Symbol    string     `json:"symbol"`
	Interval  string     `json:"interval"`
	Candles   []Candle   `json:"candles"`
	Phase     PhaseLabel `json:"phase"`
	LastPrice float64    `json:"lastPrice"`
}

// LessonProgressRequest marks a lesson complete or incomplete.
type LessonProgressRequest struct {
	LessonID  string `json:"lessonId" validate:"required"`
	Completed bool   `json:"completed"`
}

// QuizSubmitRequest carries a user's chosen answer index per question.
type QuizSubmitRequest struct {
	QuizID  string `json:"quizId" validate:"required"`
	Answers []int  `json:"answers" validate:"required,min=1"`
}

// QuizResult is the graded outcome of a submission.
type QuizResult struct {
	QuizID  string `json:"quizId"`
	Score   int    `json:"score"` // percent, 0-100
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}
