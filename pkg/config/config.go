package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	SMTP      SMTPConfig
	Quote     QuoteConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.SMTP.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"STE_APP_ENV" required:"true"`
	Port     string `envconfig:"STE_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"STE_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SMTPConfig struct {
	Host     string `envconfig:"STE_SMTP_HOST" required:"true"`
	Port     int    `envconfig:"STE_SMTP_PORT" default:"587"`
	Username string `envconfig:"STE_SMTP_USERNAME"`
	Password string `envconfig:"STE_SMTP_PASSWORD"`
	FromName string `envconfig:"STE_SMTP_FROM_NAME" default:"Southern Tents Quote System"`
	From     string `envconfig:"STE_SMTP_FROM" required:"true"`
}

func (s SMTPConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("invalid smtp port %d", s.Port)
	}
	return nil
}

type QuoteConfig struct {
	// Recipient is the business inbox every quote request lands in.
	Recipient    string `envconfig:"STE_QUOTE_RECIPIENT" default:"Southerntentsevents@gmail.com"`
	BusinessName string `envconfig:"STE_QUOTE_BUSINESS_NAME" default:"Southern Tents & Events"`
	BusinessCity string `envconfig:"STE_QUOTE_BUSINESS_CITY" default:"Senoia, GA"`
	LogoURL      string `envconfig:"STE_QUOTE_LOGO_URL" default:"https://southerntentsandevents.com/images/logo-white.png"`
	TimezoneName string `envconfig:"STE_QUOTE_TIMEZONE" default:"America/New_York"`
}

// Location resolves the configured timezone, falling back to UTC.
func (q QuoteConfig) Location() *time.Location {
	loc, err := time.LoadLocation(q.TimezoneName)
	if err != nil {
		return time.UTC
	}
	return loc
}

type RedisConfig struct {
	URL          string        `envconfig:"STE_REDIS_URL"`
	PoolSize     int           `envconfig:"STE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type RateLimitConfig struct {
	Window     time.Duration `envconfig:"STE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit    int           `envconfig:"STE_RATE_LIMIT_IP_LIMIT" default:"10"`
	EmailLimit int           `envconfig:"STE_RATE_LIMIT_EMAIL_LIMIT" default:"3"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"STE_METRICS_ENABLED" default:"true"`
}
