package api

import (
	xhttp "WyckoffLab/pkg/http"

	"github.com/labstack/echo/v4"
)

// Router composes the API handlers behind one xhttp.Handler and installs
// the identity middleware ahead of them.
type Router struct {
	identify echo.MiddlewareFunc
	handlers []xhttp.Handler
}

func NewRouter(identify echo.MiddlewareFunc, handlers ...xhttp.Handler) *Router {
	return &Router{identify: identify, handlers: handlers}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	if r.identify != nil {
		e.Use(r.identify)
	}
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}
