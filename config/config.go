package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	StorageDriver  string `envconfig:"STORAGE_DRIVER" default:"memory"`
	DBURL          string `envconfig:"DB_URL"`
	RedisAddress   string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	RedisKeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"aquadrop:"`

	Timezone          string   `envconfig:"TIMEZONE" default:"Local"`
	LowStockThreshold int      `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
	CORSOrigins       []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	RemindersEnabled     bool   `envconfig:"REMINDERS_ENABLED" default:"false"`
	ReminderSchedule     string `envconfig:"REMINDER_SCHEDULE" default:"0 9 * * *"`
	TwilioAccountSID     string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER"`
	TwilioWhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	envErr := godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if envErr != nil {
		// reported by the caller once logging is configured
		return &cfg, ErrNoDotEnv
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.StorageDriver = strings.ToLower(c.StorageDriver)
	switch c.StorageDriver {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.DBURL == "" {
			return fmt.Errorf("DB_URL must be set for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative")
	}
	if c.RemindersEnabled && (c.TwilioAccountSID == "" || c.TwilioAuthToken == "") {
		return fmt.Errorf("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required when reminders are enabled")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TIMEZONE; "today" for scheduling is taken in it.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
