package api

import (
	"WyckoffLab/internal/content"
	"WyckoffLab/internal/domain/models"
	domrepo "WyckoffLab/internal/domain/repository"
	"WyckoffLab/internal/service/ratelimit"
	"WyckoffLab/internal/usecase"
	xhttp "WyckoffLab/pkg/http"
	xlogger "WyckoffLab/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartHandler serves one-shot candle reads for page loads. The interactive
// flow lives on the WebSocket handler.
type ChartHandler struct {
	logger     *xlogger.Logger
	candles    *usecase.CandleService
	limiter    *ratelimit.Limiter
	rateCap    float64
	rateRefill float64
}

func NewChartHandler(logger *xlogger.Logger, candles *usecase.CandleService, limiter *ratelimit.Limiter, rateCap, rateRefill float64) *ChartHandler {
	if rateCap <= 0 {
		rateCap = 10
	}
	if rateRefill <= 0 {
		rateRefill = 2
	}
	return &ChartHandler{
		logger:     logger,
		candles:    candles,
		limiter:    limiter,
		rateCap:    rateCap,
		rateRefill: rateRefill,
	}
}

func (h *ChartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/chart")
	g.GET("/candles", h.Candles)
}

// Candles returns the latest series with its phase label.
func (h *ChartHandler) Candles(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP(), h.rateCap, h.rateRefill) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
	}

	req := &models.CandlesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !content.IsValidSymbol(req.Symbol) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("unknown symbol"))
	}
	if req.Interval != "" && req.Interval != "1D" && !domrepo.IsValidInterval(domrepo.Interval(req.Interval)) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("unknown interval"))
	}
	interval := domrepo.NormalizeInterval(req.Interval)

	res, err := h.candles.Get(c.Request().Context(), req.Symbol, interval)
	if err != nil {
		h.logger.Error("candles usecase error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("market data unavailable"))
	}
	return xhttp.SuccessResponse(c, res)
}
