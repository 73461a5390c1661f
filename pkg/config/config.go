package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080" validate:"gte=1,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
		RateLimit       struct {
			Enabled   bool    `yaml:"enabled"`
			Burst     float64 `yaml:"burst" default:"10" validate:"gte=1"`
			PerSecond float64 `yaml:"per_second" default:"2" validate:"gt=0"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`
	Logger struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logger"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics" validate:"startswith=/"`
	} `yaml:"metrics"`
	Kraken struct {
		Host         string        `yaml:"host" default:"https://api.kraken.com" validate:"required,url"`
		TickerPath   string        `yaml:"ticker_path" default:"/0/public/Ticker" validate:"required,startswith=/"`
		Pairs        []string      `yaml:"pairs" validate:"required,min=1,dive,required"`
		FetchTimeout time.Duration `yaml:"fetch_timeout" default:"5s" validate:"gt=0"`
		UserAgent    string        `yaml:"user_agent" default:"kraken-ltp/1.0"`
	} `yaml:"kraken"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		Backend string        `yaml:"backend" default:"memory" validate:"oneof=memory redis"`
		TTL     time.Duration `yaml:"ttl" default:"2s" validate:"gt=0"`
		Redis   struct {
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// DefaultPairs is the pair list used when the config does not name any.
var DefaultPairs = []string{"BTC/USD", "BTC/CHF", "BTC/EUR"}

var validate = validator.New()

// Default returns a config with every default applied.
func Default() *Config {
	var c Config
	_ = defaults.Set(&c)
	c.Kraken.Pairs = append([]string(nil), DefaultPairs...)
	return &c
}

// Load reads and parses a YAML configuration file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			c.Kraken.Pairs = nil
			if err := yaml.Unmarshal(b, c); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
			if len(c.Kraken.Pairs) == 0 {
				c.Kraken.Pairs = append([]string(nil), DefaultPairs...)
			}
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("KRAKEN_HOST"); v != "" {
		c.Kraken.Host = v
	}
	if v := os.Getenv("KRAKEN_PAIRS"); v != "" {
		c.Kraken.Pairs = splitCSV(v)
	}
	if v := os.Getenv("KRAKEN_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("KRAKEN_FETCH_TIMEOUT: %w", err)
		}
		c.Kraken.FetchTimeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logger.Level = strings.ToLower(v)
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			c.Cache.Enabled = true
		case "0", "false", "no", "n":
			c.Cache.Enabled = false
		}
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for _, p := range c.Kraken.Pairs {
		base, quote, ok := strings.Cut(p, "/")
		if !ok || base == "" || quote == "" || strings.Contains(quote, "/") {
			return fmt.Errorf("kraken.pairs: %q must look like BASE/QUOTE", p)
		}
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
