// internal/config/config.go
package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/unclebandit/creatorhub-backend/internal/queue"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// postgres or memory
	DBDriver       string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost         string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string        `env:"DB_PORT" envDefault:"5432"`
	DBUser         string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string        `env:"DB_PASSWORD"`
	DBName         string        `env:"DB_NAME" envDefault:"creatorhub"`
	DBSSLMode      string        `env:"DB_SSL_MODE" envDefault:"disable"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	DBAutoMigrate  bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// Empty address falls back to the in-process cache.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	DraftCacheTTL time.Duration `env:"DRAFT_CACHE_TTL" envDefault:"5m"`

	// Empty URL keeps notices on the in-process queue. NoticeQueue defaults to queue.NoticeTopic.
	AMQPURL            string        `env:"AMQP_URL"`
	NoticeQueue        string        `env:"NOTICE_QUEUE"`
	NoticeMaxRetries   int           `env:"NOTICE_MAX_RETRIES" envDefault:"3"`
	NoticeRetryBackoff time.Duration `env:"NOTICE_RETRY_BACKOFF" envDefault:"500ms"`

	WizardSaveTimeout time.Duration `env:"WIZARD_SAVE_TIMEOUT" envDefault:"10s"`
	NoticeInboxSize   int           `env:"NOTICE_INBOX_SIZE" envDefault:"20"`

	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and then parses the environment.
// The boolean reports whether a .env file was found.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, dotenv, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, dotenv, err
	}
	return &cfg, dotenv, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.WizardSaveTimeout <= 0 {
		return fmt.Errorf("WIZARD_SAVE_TIMEOUT must be positive, got %s", c.WizardSaveTimeout)
	}
	if c.NoticeInboxSize < 1 {
		c.NoticeInboxSize = 1
	}
	if c.NoticeQueue == "" {
		c.NoticeQueue = queue.NoticeTopic
	}
	if c.NoticeMaxRetries < 0 {
		return fmt.Errorf("NOTICE_MAX_RETRIES must not be negative, got %d", c.NoticeMaxRetries)
	}
	return nil
}

// DSN builds the postgres connection string. Credentials are escaped.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}
