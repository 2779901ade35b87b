package api

import (
	"WyckoffLab/internal/content"
	"WyckoffLab/internal/domain/models"
	xhttp "WyckoffLab/pkg/http"
	xlogger "WyckoffLab/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the static course, schematic, concept, quiz, and
// symbol catalogs.
type ContentHandler struct {
	logger *xlogger.Logger
}

func NewContentHandler(logger *xlogger.Logger) *ContentHandler {
	return &ContentHandler{logger: logger}
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/courses", h.Courses)
	g.GET("/courses/:courseId", h.Course)
	g.GET("/schematics", h.Schematics)
	g.GET("/concepts", h.Concepts)
	g.GET("/quizzes/:courseId", h.Quiz)
	g.GET("/chart/symbols", h.Symbols)
}

// Courses lists course summaries without lesson bodies.
func (h *ContentHandler) Courses(c echo.Context) error {
	return xhttp.SuccessResponse(c, content.CourseSummaries())
}

// Course returns one course with full lesson content.
func (h *ContentHandler) Course(c echo.Context) error {
	course, ok := content.CourseByID(c.Param("courseId"))
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("course not found"))
	}
	return xhttp.SuccessResponse(c, course)
}

// Schematics returns the schematic reference catalog.
func (h *ContentHandler) Schematics(c echo.Context) error {
	return xhttp.SuccessResponse(c, content.Schematics)
}

// Concepts returns the annotation palette in display order.
func (h *ContentHandler) Concepts(c echo.Context) error {
	out := make([]models.ConceptInfo, 0, len(models.ConceptOrder))
	for _, tag := range models.ConceptOrder {
		out = append(out, models.Concepts[tag])
	}
	return xhttp.SuccessResponse(c, out)
}

// Quiz returns a course's quiz with answer keys stripped by serialization.
func (h *ContentHandler) Quiz(c echo.Context) error {
	quiz, ok := content.QuizForCourse(c.Param("courseId"))
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("quiz not found"))
	}
	return xhttp.SuccessResponse(c, quiz)
}

// Symbols lists the pairs the chart tool offers.
func (h *ContentHandler) Symbols(c echo.Context) error {
	return xhttp.SuccessResponse(c, content.Symbols)
}
