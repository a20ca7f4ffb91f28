package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/Modeva-Ecommerce/modeva-storefront/logger"
)

// Configuration holds everything the storefront needs at startup.
type Configuration struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	Address string `env:"ADDRESS" envDefault:":8081"`

	CmsDBURL   string `env:"CMS_DB_URL"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"modeva_cms_backend"`

	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
	CatalogLocale   string        `env:"CATALOG_LOCALE" envDefault:"und"`
	DefaultPageSize int           `env:"DEFAULT_PAGE_SIZE" envDefault:"12"`
	MaxPageSize     int           `env:"MAX_PAGE_SIZE" envDefault:"100"`

	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath  string `env:"LOG_PATH"`
}

// Load reads an optional .env file and parses the environment.
func Load(files ...string) (*Configuration, error) {
	_ = godotenv.Load(files...)

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE (%d) must not be below DEFAULT_PAGE_SIZE (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if _, err := language.Parse(c.CatalogLocale); err != nil {
		return fmt.Errorf("CATALOG_LOCALE %q: %w", c.CatalogLocale, err)
	}
	return nil
}

func (c *Configuration) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Locale is the collation locale for name sorting.
func (c *Configuration) Locale() language.Tag {
	tag, err := language.Parse(c.CatalogLocale)
	if err != nil {
		return language.Und
	}
	return tag
}

// CmsDSN prefers CMS_DB_URL and falls back to the discrete DB_* settings.
func (c *Configuration) CmsDSN() string {
	if c.CmsDBURL != "" {
		return c.CmsDBURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func (c *Configuration) LoggerConfig() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.LogLevel
	lc.Path = c.LogPath
	lc.JSON = c.IsProduction()
	return lc
}
