package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"WyckoffLab/internal/chart"
	"WyckoffLab/internal/content"
	"WyckoffLab/internal/domain/models"
	domrepo "WyckoffLab/internal/domain/repository"
	"WyckoffLab/internal/usecase"
	xlogger "WyckoffLab/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPongTimeout  = 60 * time.Second
	wsPingInterval = 30 * time.Second
)

// clientMessage is the envelope for all client-to-server frames.
type clientMessage struct {
	Type     string  `json:"type"`
	Symbol   string  `json:"symbol,omitempty"`
	Interval string  `json:"interval,omitempty"`
	Concept  string  `json:"concept,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Time     int64   `json:"time,omitempty"`
	Price    float64 `json:"price,omitempty"`
	ID       string  `json:"id,omitempty"`
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
}

// serverMessage is the envelope for all server-to-client frames.
type serverMessage struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ChartWSHandler upgrades chart clients to a WebSocket session. Each
// connection owns an independent session; closing the socket tears the
// session down.
type ChartWSHandler struct {
	logger   *xlogger.Logger
	deps     usecase.ChartSessionDeps
	cfg      usecase.RefreshConfig
	upgrader websocket.Upgrader
}

func NewChartWSHandler(logger *xlogger.Logger, deps usecase.ChartSessionDeps, cfg usecase.RefreshConfig) *ChartWSHandler {
	return &ChartWSHandler{
		logger: logger,
		deps:   deps,
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The site is served cross-origin from the static frontend.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *ChartWSHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/chart/ws", h.Serve)
}

// Serve runs one chart session over a WebSocket connection.
func (h *ChartWSHandler) Serve(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		symbol = content.Symbols[0].Symbol
	}
	if !content.IsValidSymbol(symbol) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown symbol"})
	}
	interval := domrepo.NormalizeInterval(c.QueryParam("interval"))

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", xlogger.Error(err))
		return nil
	}

	session := usecase.NewChartSession(h.deps, symbol, interval, h.cfg)
	h.logger.Info("chart session opened",
		xlogger.String("session", session.ID()),
		xlogger.String("symbol", symbol),
		xlogger.String("interval", string(interval)),
	)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	w := &wsWriter{conn: conn}
	session.SetOnUpdate(func() {
		w.send(serverMessage{Type: "series", Data: session.Snapshot()})
	})
	session.Start(ctx)
	defer session.Close()

	// ping loop keeps intermediaries from idling the connection out
	go h.pingLoop(ctx, w)

	conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) &&
				!errors.Is(err, net.ErrClosed) {
				h.logger.Debug("ws read ended",
					xlogger.String("session", session.ID()),
					xlogger.Error(err),
				)
			}
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			w.send(serverMessage{Type: "error", Message: "malformed message"})
			continue
		}
		h.dispatch(ctx, session, w, msg)
	}

	h.logger.Info("chart session closed", xlogger.String("session", session.ID()))
	conn.Close()
	return nil
}

func (h *ChartWSHandler) dispatch(ctx context.Context, session *usecase.ChartSession, w *wsWriter, msg clientMessage) {
	switch msg.Type {
	case "set_params":
		if !content.IsValidSymbol(msg.Symbol) {
			w.send(serverMessage{Type: "error", Message: "unknown symbol"})
			return
		}
		session.SetParams(ctx, msg.Symbol, domrepo.NormalizeInterval(msg.Interval))

	case "refresh":
		session.Refresh(ctx)

	case "arm":
		if err := session.Arm(models.Concept(msg.Concept)); err != nil {
			w.send(serverMessage{Type: "error", Message: "unknown concept"})
			return
		}
		w.send(serverMessage{Type: "armed", Data: msg.Concept})

	case "disarm":
		session.Disarm()
		w.send(serverMessage{Type: "armed", Data: ""})

	case "click":
		if _, err := session.Click(msg.X, msg.Y); err != nil {
			h.placementFailed(w, err)
			return
		}
		w.send(serverMessage{Type: "markers", Data: session.Snapshot().Markers})

	case "place":
		if _, err := session.PlaceAt(msg.Time, msg.Price); err != nil {
			h.placementFailed(w, err)
			return
		}
		w.send(serverMessage{Type: "markers", Data: session.Snapshot().Markers})

	case "remove_marker":
		session.RemoveMarker(msg.ID)
		w.send(serverMessage{Type: "markers", Data: session.Snapshot().Markers})

	case "clear_markers":
		session.ClearMarkers()
		w.send(serverMessage{Type: "markers", Data: session.Snapshot().Markers})

	case "resize":
		if err := session.Resize(msg.Width, msg.Height); err != nil {
			w.send(serverMessage{Type: "error", Message: "invalid dimensions"})
			return
		}
		w.send(serverMessage{Type: "series", Data: session.Snapshot()})

	default:
		w.send(serverMessage{Type: "error", Message: "unknown message type"})
	}
}

func (h *ChartWSHandler) pingLoop(ctx context.Context, w *wsWriter) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ping()
		}
	}
}

// placementFailed reports placement errors. A click with nothing armed is
// dropped without a reply; stray clicks on the chart are not user errors.
func (h *ChartWSHandler) placementFailed(w *wsWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotArmed):
	case errors.Is(err, chart.ErrDegenerateSurface):
		w.send(serverMessage{Type: "error", Message: "chart not ready"})
	default:
		w.send(serverMessage{Type: "error", Message: "placement failed"})
	}
}

// wsWriter serializes concurrent writes; gorilla connections allow only one
// writer at a time.
type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsWriter) send(msg serverMessage) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	_ = w.conn.WriteJSON(msg)
}

func (w *wsWriter) ping() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	_ = w.conn.WriteMessage(websocket.PingMessage, nil)
}
