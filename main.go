// main.go
package main

import (
	"log"
	"os"

	"travel-booking/cmd"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/wire"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", config.App.Debug),
	)

	// Seed the in-memory stores
	repos := repository.NewRepository(logger)

	logger.Info("In-memory stores seeded")

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, os.Stdout)

	// Drive the session shell until EOF or quit
	cmd.RunShell(app.Shell, os.Stdin, os.Stdout)

	logger.Info("Session ended")
}
