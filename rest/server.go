package rest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/JustDean/sessionstore/pkg/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
}

func (c *Config) addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type Server struct {
	e    *echo.Echo
	addr string
}

func SetServer(c Config, store *session.Store) *Server {
	return &Server{e: newRouter(store), addr: c.addr()}
}

func newRouter(store *session.Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, store)
	return e
}

func (s *Server) Run(ctx context.Context) {
	log.Printf("Starting HTTP Server on %s", s.addr)
	go func() {
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP Server stopped serving: %v", err)
		}
	}()
	<-ctx.Done()
	log.Println("Stopping HTTP Server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.e.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP Server shutdown: %v", err)
	}
	log.Println("HTTP Server is stopped")
}
