package main

import (
	"log"
	"os"

	"rotation-manager-backend/internal/api/routes"
	"rotation-manager-backend/internal/config"
	"rotation-manager-backend/internal/database"
	"rotation-manager-backend/internal/database/models"
	"rotation-manager-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database; with DB_DISABLED the swap ledger is memory-only
	var db *gorm.DB
	if cfg.DatabaseDisabled {
		logrus.Warn("Database disabled, swap persistence off")
	} else {
		db, err = database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
		if err != nil {
			logrus.Fatal("Failed to initialize database:", err)
		}

		// Mirror the configured roster into the engineers table
		if err := syncRoster(db, cfg); err != nil {
			logrus.Fatal("Failed to sync roster:", err)
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "6247"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func syncRoster(db *gorm.DB, cfg *config.Config) error {
	roster := make([]models.Engineer, 0, len(cfg.Engineers))
	for _, eng := range cfg.Engineers {
		roster = append(roster, models.Engineer{
			Name:      eng.Name,
			Letter:    eng.Letter,
			Seniority: eng.Seniority,
			Country:   eng.Country,
			Region:    eng.Region,
		})
	}
	return repository.NewEngineerRepository(db).SyncRoster(roster)
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
