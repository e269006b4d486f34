package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by the application.
const (
	StorageMongoDB = "mongodb"
	StorageMemory  = "memory"
)

// Config represents the full application configuration surface.
type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Storage       StorageConfig
	MongoDB       MongoDBConfig
	Notifications NotificationsConfig
	WhatsApp      WhatsAppConfig
	Sheets        SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Driver string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI            string
	DBName         string
	ConnectTimeout time.Duration
}

// NotificationsConfig holds due-scanner settings.
type NotificationsConfig struct {
	CronSchedule string
	Timezone     string
}

// WhatsAppConfig contains credentials for the optional WhatsApp notification sender.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
	APIVersion    string
	NotifyTo      string
}

// Enabled reports whether due notifications should also be pushed to WhatsApp.
func (w WhatsAppConfig) Enabled() bool {
	return w.AccessToken != "" && w.PhoneNumberID != "" && w.NotifyTo != ""
}

// SheetsConfig contains configuration for the optional milk statement export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether milk statements should be exported to Google Sheets.
func (s SheetsConfig) Enabled() bool {
	return s.CredentialsPath != "" && s.SpreadsheetID != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	connectTimeout, err := time.ParseDuration(getenvWithDefault("MONGODB_CONNECT_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGODB_CONNECT_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getenvWithDefault("APP_PORT", "4000"),
			AllowedOrigins: splitList(getenvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getenvWithDefault("STORAGE_DRIVER", StorageMongoDB)),
		},
		MongoDB: MongoDBConfig{
			URI:            getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName:         getenvWithDefault("MONGODB_DB_NAME", "dairyfarm"),
			ConnectTimeout: connectTimeout,
		},
		Notifications: NotificationsConfig{
			CronSchedule: getenvWithDefault("NOTIFICATION_CRON_SCHEDULE", "* * * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "UTC"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			BaseURL:       getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:    getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			NotifyTo:      os.Getenv("WHATSAPP_NOTIFY_TO"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Storage.Driver {
	case StorageMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must be provided")
		}
		if c.MongoDB.ConnectTimeout <= 0 {
			return errors.New("MONGODB_CONNECT_TIMEOUT must be positive")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Notifications.CronSchedule == "" {
		return errors.New("NOTIFICATION_CRON_SCHEDULE must be provided")
	}

	if _, err := time.LoadLocation(c.Notifications.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Notifications.Timezone, err)
	}

	// A partially configured sender is almost always a typo in the env file.
	if (c.WhatsApp.AccessToken != "" || c.WhatsApp.NotifyTo != "") && !c.WhatsApp.Enabled() {
		return errors.New("WHATSAPP_TOKEN, WHATSAPP_PHONE_NUMBER_ID and WHATSAPP_NOTIFY_TO must be provided together")
	}

	if (c.Sheets.CredentialsPath != "") != (c.Sheets.SpreadsheetID != "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_DATABASE_ID must be provided together")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
