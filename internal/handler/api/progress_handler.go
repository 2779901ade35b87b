package api

import (
	"errors"

	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/service/auth"
	"WyckoffLab/internal/usecase"
	xhttp "WyckoffLab/pkg/http"
	xlogger "WyckoffLab/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ProgressHandler serves per-user lesson completion and quiz grading. All
// routes require a signed-in user.
type ProgressHandler struct {
	logger   *xlogger.Logger
	progress *usecase.ProgressUsecase
	quizzes  *usecase.QuizUsecase
}

func NewProgressHandler(logger *xlogger.Logger, progress *usecase.ProgressUsecase, quizzes *usecase.QuizUsecase) *ProgressHandler {
	return &ProgressHandler{logger: logger, progress: progress, quizzes: quizzes}
}

func (h *ProgressHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/progress", auth.RequireUser)
	g.GET("", h.Get)
	g.POST("/lessons", h.SetLesson)
	g.POST("/quizzes", h.SubmitQuiz)
}

// Get returns the caller's progress with catalog totals.
func (h *ProgressHandler) Get(c echo.Context) error {
	summary, err := h.progress.Get(auth.UserID(c))
	if err != nil {
		h.logger.Error("progress read error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("progress unavailable"))
	}
	return xhttp.SuccessResponse(c, summary)
}

// SetLesson marks one lesson complete or incomplete.
func (h *ProgressHandler) SetLesson(c echo.Context) error {
	req := &models.LessonProgressRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	summary, err := h.progress.SetLessonCompletion(auth.UserID(c), req.LessonID, req.Completed)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownLesson) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("lesson not found"))
		}
		h.logger.Error("progress write error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("progress unavailable"))
	}
	return xhttp.SuccessResponse(c, summary)
}

// SubmitQuiz grades a submission and records the score.
func (h *ProgressHandler) SubmitQuiz(c echo.Context) error {
	req := &models.QuizSubmitRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.quizzes.Grade(req.QuizID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownQuiz):
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("quiz not found"))
		case errors.Is(err, usecase.ErrAnswerCountMismatch):
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError("too many answers"))
		default:
			h.logger.Error("quiz grade error", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.InternalError("quiz unavailable"))
		}
	}

	if _, err := h.progress.RecordQuizScore(auth.UserID(c), result.QuizID, result.Score); err != nil {
		h.logger.Error("quiz score write error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("progress unavailable"))
	}
	return xhttp.SuccessResponse(c, result)
}
