package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "LOG_LEVEL", "STORAGE_DRIVER", "MONGODB_URI", "MONGODB_DB_NAME",
		"MONGODB_CONNECT_TIMEOUT", "NOTIFICATION_CRON_SCHEDULE", "TIMEZONE", "CORS_ALLOWED_ORIGINS",
		"WHATSAPP_TOKEN", "WHATSAPP_PHONE_NUMBER_ID", "WHATSAPP_NOTIFY_TO", "WHATSAPP_BASE_URL",
		"WHATSAPP_API_VERSION", "GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_DATABASE_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, StorageMongoDB, cfg.Storage.Driver)
	assert.Equal(t, "dairyfarm", cfg.MongoDB.DBName)
	assert.Equal(t, 15*time.Second, cfg.MongoDB.ConnectTimeout)
	assert.Equal(t, "* * * * *", cfg.Notifications.CronSchedule)
	assert.False(t, cfg.WhatsApp.Enabled())
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "123")
	t.Setenv("WHATSAPP_NOTIFY_TO", "224600000000")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.WhatsApp.Enabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":   {"STORAGE_DRIVER": "postgres"},
		"bad timeout":      {"MONGODB_CONNECT_TIMEOUT": "soon"},
		"bad timezone":     {"TIMEZONE": "Mars/Olympus"},
		"partial whatsapp": {"WHATSAPP_TOKEN": "token"},
		"partial sheets":   {"GOOGLE_SHEET_DATABASE_ID": "sheet"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load("testdata/does-not-exist.env")
			require.Error(t, err)
		})
	}
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	require.EqualError(t, cfg.Validate(), "config is nil")
}
