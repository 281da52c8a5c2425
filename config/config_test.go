package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		require.ErrorIs(t, err, ErrNoDotEnv)
	}
	require.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 5, cfg.LowStockThreshold)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "0 9 * * *", cfg.ReminderSchedule)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{"postgres without dsn", map[string]string{"STORAGE_DRIVER": "postgres", "DB_URL": ""}},
		{"reminders without twilio", map[string]string{"REMINDERS_ENABLED": "true", "TWILIO_ACCOUNT_SID": "", "TWILIO_AUTH_TOKEN": ""}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"negative threshold", map[string]string{"LOW_STOCK_THRESHOLD": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrNoDotEnv)
		})
	}
}

func TestLoadParsesOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://app.aquadrop.in,http://localhost:5173")
	t.Setenv("STORAGE_DRIVER", "REDIS")
	cfg, err := Load()
	if err != nil {
		require.ErrorIs(t, err, ErrNoDotEnv)
	}
	assert.Equal(t, []string{"https://app.aquadrop.in", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, StorageRedis, cfg.StorageDriver)
}
