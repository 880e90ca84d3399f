package main

import (
	"os"

	"salesdesk/internal/config"
	"salesdesk/internal/logger"
	"salesdesk/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := config.New()
	log := logger.New(cfg.Server.Environment)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("failed to create server", "error", err)
		os.Exit(1)
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
