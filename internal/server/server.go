package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/practicum/internal/bootstrap"
	"github.com/yigit/practicum/internal/config"
	"github.com/yigit/practicum/internal/db"
)

// Server owns the HTTP listener and the database pool behind it.
type Server struct {
	cfg    *config.Config
	db     *db.PostgresDB
	logger zerolog.Logger
	http   *http.Server
}

// NewServer loads configuration, migrates and seeds the database, and builds the router.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, database, lgr)
	return newServer(cfg, database, bootstrap.SetupRouter(cfg, deps, lgr), lgr), nil
}

func newServer(cfg *config.Config, database *db.PostgresDB, router *gin.Engine, lgr zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		db:     database,
		logger: lgr,
		http: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Run serves until ctx is cancelled or the listener fails, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		listenErr <- s.http.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closeDB()
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests within the configured timeout and closes the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Server.ShutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
	}
	s.closeDB()

	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info().Msg("Server stopped")
	return nil
}

func (s *Server) closeDB() {
	if s.db != nil {
		s.db.Close()
		s.logger.Info().Msg("Database connection pool closed")
	}
}
