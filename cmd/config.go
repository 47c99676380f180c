package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string `env:"JWT_SECRET,required"`

	UsersServiceURL        string        `env:"USERS_SERVICE_URL,required"`
	TraceabilityServiceURL string        `env:"TRACEABILITY_SERVICE_URL,required"`
	CollaboratorTimeout    time.Duration `env:"COLLABORATOR_TIMEOUT" envDefault:"3s"`

	AMQPURL              string `env:"AMQP_URL,required"`
	NotificationExchange string `env:"NOTIFICATION_EXCHANGE" envDefault:"notifications"`

	OutboxReplaySchedule string `env:"OUTBOX_REPLAY_SCHEDULE" envDefault:"@every 30s"`
	OutboxReplayBatch    int    `env:"OUTBOX_REPLAY_BATCH" envDefault:"50"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads the environment after applying an optional .env file.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvPath string) (Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level; unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Debug reports whether SQL statements should be logged.
func (c Config) Debug() bool {
	return c.SlogLevel() <= slog.LevelDebug
}
