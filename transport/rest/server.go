package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

// New - builds the HTTP API on top of the game use case.
func New(logger *slog.Logger, useCase gameUseCase) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	e.Use(middleware.Recover())

	ping := NewPingHandler()
	games := NewGameHandler(logger, useCase)

	e.GET("/ping", ping.PingHandler)

	api := e.Group("/api/v1")
	api.POST("/players", games.CreatePlayer)
	api.POST("/games", games.GetOrCreateGame)
	api.POST("/games/turn", games.MakeTurn)
	api.GET("/games/:id", games.GetGame)
	api.POST("/games/:id/join", games.JoinGame)
	api.POST("/minimax/move", games.SuggestMove)

	return &Server{
		logger: logger.With("component", "rest"),
		echo:   e,
	}
}

// Handler - exposes the router, mostly for tests.
func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - serves on port until Shutdown is called.
func (that *Server) Start(port string) error {
	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
