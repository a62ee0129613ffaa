package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EngineerConfig describes one roster member as loaded from configuration.
// Immutable after load.
type EngineerConfig struct {
	Name      string `mapstructure:"name"`
	Letter    string `mapstructure:"letter"`
	Seniority int    `mapstructure:"seniority"`
	Country   string `mapstructure:"country"`
	Region    string `mapstructure:"region"`
}

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DatabaseDisabled bool   `mapstructure:"DB_DISABLED"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Approver credentials for token issuing (user:password pairs)
	Approvers map[string]string `mapstructure:"APPROVERS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Team configuration
	Engineers    []EngineerConfig `mapstructure:"engineers"`
	RotationDays []string         `mapstructure:"rotation_days"`
	MandatoryDay string           `mapstructure:"mandatory_day"`

	// Schedule horizon
	DefaultWeeks int `mapstructure:"DEFAULT_WEEKS"`
	MaxWeeks     int `mapstructure:"MAX_WEEKS"`

	// Optional fixed anchor Monday (YYYY-MM-DD); empty means next Monday
	ScheduleAnchor string `mapstructure:"SCHEDULE_ANCHOR"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "6247")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "rotation_manager")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_DISABLED", false)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Team defaults mirror the documented six-engineer 4x10 rotation
	viper.SetDefault("engineers", []map[string]interface{}{
		{"name": "Alex", "letter": "A", "seniority": 1, "country": "US", "region": "CA"},
		{"name": "Blake", "letter": "B", "seniority": 2, "country": "US", "region": "CA"},
		{"name": "Casey", "letter": "C", "seniority": 3, "country": "US", "region": "CA"},
		{"name": "Dana", "letter": "D", "seniority": 4, "country": "US", "region": "CA"},
		{"name": "Evan", "letter": "E", "seniority": 5, "country": "US", "region": "CA"},
		{"name": "Fiona", "letter": "F", "seniority": 6, "country": "US", "region": "CA"},
	})
	viper.SetDefault("rotation_days", []string{"Monday", "Wednesday", "Thursday", "Friday"})
	viper.SetDefault("mandatory_day", "Tuesday")

	viper.SetDefault("DEFAULT_WEEKS", 52)
	viper.SetDefault("MAX_WEEKS", 104)
	viper.SetDefault("SCHEDULE_ANCHOR", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if len(config.Engineers) == 0 {
		return fmt.Errorf("team roster is empty")
	}

	if len(config.RotationDays) == 0 {
		return fmt.Errorf("rotation_days is empty")
	}

	if config.MandatoryDay == "" {
		return fmt.Errorf("mandatory_day is required")
	}

	for _, day := range config.RotationDays {
		if strings.EqualFold(day, config.MandatoryDay) {
			return fmt.Errorf("mandatory day %s cannot also be a rotation day", config.MandatoryDay)
		}
	}

	seen := make(map[string]bool, len(config.Engineers))
	for _, eng := range config.Engineers {
		if eng.Name == "" {
			return fmt.Errorf("engineer with empty name in roster")
		}
		if seen[eng.Name] {
			return fmt.Errorf("duplicate engineer name %q in roster", eng.Name)
		}
		seen[eng.Name] = true
	}

	if config.MaxWeeks < config.DefaultWeeks {
		return fmt.Errorf("MAX_WEEKS must be >= DEFAULT_WEEKS")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
