package configuration

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		panic(err)
	}
	return c
})

// Configuration holds everything the SDK reads from the environment.
type Configuration struct {
	BaseURL     string        `env:"XETA_BASE_URL" envDefault:"http://localhost:8000"`
	HTTPTimeout time.Duration `env:"XETA_HTTP_TIMEOUT" envDefault:"30s"`

	PageSize    int `env:"XETA_PAGE_SIZE" envDefault:"25"`
	MaxPageSize int `env:"XETA_MAX_PAGE_SIZE" envDefault:"100"`

	SearchDebounce time.Duration `env:"XETA_SEARCH_DEBOUNCE" envDefault:"300ms"`

	LogLevel string `env:"XETA_LOG_LEVEL" envDefault:"error"`
	LogPath  string `env:"XETA_LOG_PATH" envDefault:""`

	// MetricsEnabled switches prometheus instrumentation of the HTTP
	// client on; the registry itself is supplied by the caller.
	MetricsEnabled bool `env:"XETA_METRICS_ENABLED" envDefault:"false"`
}

// Use returns the process-wide configuration, loading it on first use.
func Use() *Configuration {
	return singleton()
}

// Load parses env files and the environment into a fresh Configuration.
// Missing env files are not an error.
func Load(envFiles ...string) (*Configuration, error) {
	c := &Configuration{}
	if err := c.load(envFiles); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Configuration) load(envFiles []string) error {
	for _, file := range envFiles {
		// godotenv treats a missing file as an error; skip those.
		_ = godotenv.Load(file)
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	return c.validate()
}

func (c *Configuration) validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid XETA_BASE_URL=%q (expected absolute http(s) URL)", c.BaseURL)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("XETA_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.MaxPageSize < c.PageSize {
		return fmt.Errorf("XETA_MAX_PAGE_SIZE (%d) must be >= XETA_PAGE_SIZE (%d)", c.MaxPageSize, c.PageSize)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("XETA_SEARCH_DEBOUNCE must be non-negative, got %s", c.SearchDebounce)
	}
	return nil
}

// LogrusLogLevel maps the configured level name onto a logrus level.
func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}
