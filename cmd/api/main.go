package main

import (
	"os"

	"backtestcontrol/internal/backtest"
	"backtestcontrol/internal/handlers"
	"backtestcontrol/internal/routes"
	"backtestcontrol/pkg/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// Initialize database
	config.InitDB()

	// Run file-based migrations when requested; AutoMigrate covers the rest
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		config.ExecuteMigrations()
	}

	// Initialize RabbitMQ (optional, will log warning if not configured)
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()
		log.Info("RabbitMQ initialized successfully")
	} else {
		log.Info("RabbitMQ not configured, skipping initialization")
	}

	// Bind the wizard session to the backtest engine
	engineURL := os.Getenv("BACKTEST_ENGINE_URL")
	if engineURL == "" {
		engineURL = "http://localhost:5000"
	}
	handlers.InitSession(backtest.NewClient(engineURL))

	// Set up router
	r := routes.SetupRouter()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
