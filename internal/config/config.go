// Package config loads the application configuration shared by the commands.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	pairusecase "crypto_backend/internal/feature/pairs/usecase"
)

// cronParser は秒付きの6フィールド形式を受け付けます（cron.WithSeconds と同じ）。
var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Warm struct {
		Cron               string `yaml:"cron"`
		RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
	} `yaml:"warm"`
	Cache struct {
		Namespace string `yaml:"namespace"`
	} `yaml:"cache"`
	// Pairs は起動時に登録する追跡ペア（"BTC/USD" 形式）です。
	Pairs []string `yaml:"pairs"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("WARM_CRON"); v != "" {
		cfg.Warm.Cron = v
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Warm.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("CACHE_NAMESPACE"); v != "" {
		cfg.Cache.Namespace = v
	}
	if v := os.Getenv("TRACKED_PAIRS"); v != "" {
		cfg.Pairs = strings.Split(v, ",")
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Warm.Cron == "" {
		// 00:00 UTC の更新直後
		cfg.Warm.Cron = "0 5 0 * * *"
	}
	if cfg.Warm.RateLimitPerMinute == 0 {
		cfg.Warm.RateLimitPerMinute = 5
	}
	if cfg.Cache.Namespace == "" {
		cfg.Cache.Namespace = "crypto"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port must be numeric: %q", c.Server.Port)
	}
	if _, err := cronParser.Parse(c.Warm.Cron); err != nil {
		return fmt.Errorf("warm.cron: %w", err)
	}
	if c.Warm.RateLimitPerMinute <= 0 {
		return fmt.Errorf("warm.rate_limit_per_minute must be positive")
	}
	if strings.ContainsAny(c.Cache.Namespace, ":* ") {
		return fmt.Errorf("cache.namespace must not contain ':', '*' or spaces")
	}
	for _, p := range c.Pairs {
		if _, err := pairusecase.ParsePair(p); err != nil {
			return fmt.Errorf("pairs: %w", err)
		}
	}
	return nil
}
