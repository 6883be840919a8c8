package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"
)

// Server exposes the liveness endpoints the hosting platform polls.
type Server struct {
	srv *http.Server
}

func New(addr string) *Server {
	return &Server{
		srv: &http.Server{Addr: addr, Handler: newRouter()},
	}
}

func newRouter() *echo.Echo {
	e := echo.New()

	e.GET("/", func(c *echo.Context) error {
		return c.String(http.StatusOK, "Bot Is Alive")
	})
	e.GET("/health", func(c *echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})

	return e
}

func (s *Server) Start() {
	go func() {
		slog.Info("Started liveness server", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Liveness server failed", "error", err)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
