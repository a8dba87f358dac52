package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
	"github.com/mtendere/educonsult-admin/internal/server"
)

func main() {
	// A missing .env file is fine; configuration falls back to the YAML
	// config file and real environment variables.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
