package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/practicum/internal/pkg/logger"
	"github.com/yigit/practicum/internal/server"
)

// @title Practicum API
// @version 1.0
// @description Practicum tracking backend: reference tables, student diaries, reports and composite transactions.

// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		stop()
		os.Exit(1)
	}
}
