package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"rotation-manager-backend/internal/config"
	"rotation-manager-backend/internal/database"
	"rotation-manager-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type EngineerData struct {
	Name      string `yaml:"name"`
	Letter    string `yaml:"letter"`
	Seniority int    `yaml:"seniority"`
	Country   string `yaml:"country,omitempty"`
	Region    string `yaml:"region,omitempty"`
}

type RosterFile struct {
	Engineers []EngineerData `yaml:"engineers"`
}

func main() {
	log.Println("🚀 Loading roster from YAML file...")

	rosterPath := "scripts/data/roster.yaml"
	if len(os.Args) > 1 {
		rosterPath = os.Args[1]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadRoster(db, rosterPath); err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	log.Println("✅ Roster loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress GORM logs during loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadRoster(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var roster RosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(roster.Engineers) == 0 {
		return fmt.Errorf("no engineers found in %s", path)
	}

	created := 0
	updated := 0
	for _, engData := range roster.Engineers {
		var existing models.Engineer
		err := db.Where("name = ?", engData.Name).First(&existing).Error
		if err == nil {
			existing.Letter = engData.Letter
			existing.Seniority = engData.Seniority
			existing.Country = engData.Country
			existing.Region = engData.Region
			if err := db.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update engineer %s: %w", engData.Name, err)
			}
			updated++
			continue
		}

		engineer := models.Engineer{
			Name:      engData.Name,
			Letter:    engData.Letter,
			Seniority: engData.Seniority,
			Country:   engData.Country,
			Region:    engData.Region,
		}
		if err := db.Create(&engineer).Error; err != nil {
			return fmt.Errorf("failed to create engineer %s: %w", engData.Name, err)
		}
		created++
	}

	log.Printf("Engineers: %d created, %d updated", created, updated)
	return nil
}
