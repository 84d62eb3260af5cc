package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"pass"`
}

type EmailConfig struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Subject string `yaml:"subject"`
}

// LayoutConfig selects the pagination strategy and its capacities.
type LayoutConfig struct {
	Strategy       string `yaml:"strategy"`         // "greedy" or "fixed"
	FirstPageItems int    `yaml:"first_page_items"` // fixed strategy only
	PageItems      int    `yaml:"page_items"`       // fixed strategy only
}

type LogoConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	MaxBytes int64         `yaml:"max_bytes"`
}

type ServerConfig struct {
	Listen    string `yaml:"listen"`
	BodyLimit int    `yaml:"body_limit"` // bytes
}

type Config struct {
	SMTP     SMTPConfig   `yaml:"smtp"`
	Email    EmailConfig  `yaml:"email"`
	Layout   LayoutConfig `yaml:"layout"`
	Logo     LogoConfig   `yaml:"logo"`
	Server   ServerConfig `yaml:"server"`
	Locale   string       `yaml:"locale"`
	Province string       `yaml:"province"` // holiday region for due dates, e.g. "BW"
	DueDays  int          `yaml:"due_days"` // 0 disables due date derivation
}

// defaultConfig is used when no config file exists.
func defaultConfig() *Config {
	return &Config{
		SMTP: SMTPConfig{Port: 587},
		Layout: LayoutConfig{
			Strategy:       strategyGreedy,
			FirstPageItems: defaultFirstPageItems,
			PageItems:      defaultPageItems,
		},
		Logo: LogoConfig{
			Timeout:  10 * time.Second,
			MaxBytes: 5 << 20,
		},
		Server: ServerConfig{
			Listen:    ":8080",
			BodyLimit: 8 << 20,
		},
		Locale: "en",
	}
}

// loadConfig reads the YAML configuration. name is the default file name; an
// explicit path overrides it. A missing default file yields the defaults, a
// missing explicit file is an error.
func loadConfig(name, path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = name
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case explicit || !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays INVOICEPDF_* environment variables.
func (c *Config) applyEnv() {
	c.SMTP.Host = envString("INVOICEPDF_SMTP_HOST", c.SMTP.Host)
	c.SMTP.Port = envInt("INVOICEPDF_SMTP_PORT", c.SMTP.Port)
	c.SMTP.Username = envString("INVOICEPDF_SMTP_USER", c.SMTP.Username)
	c.SMTP.Password = envString("INVOICEPDF_SMTP_PASS", c.SMTP.Password)
	c.Server.Listen = envString("INVOICEPDF_LISTEN", c.Server.Listen)
	c.Server.BodyLimit = envInt("INVOICEPDF_BODY_LIMIT", c.Server.BodyLimit)
	c.Locale = envString("INVOICEPDF_LOCALE", c.Locale)
}

func (c *Config) validate() error {
	switch c.Layout.Strategy {
	case "":
		c.Layout.Strategy = strategyGreedy
	case strategyGreedy, strategyFixed:
	default:
		return fmt.Errorf("unknown layout strategy %q", c.Layout.Strategy)
	}
	if c.Layout.FirstPageItems <= 0 {
		c.Layout.FirstPageItems = defaultFirstPageItems
	}
	if c.Layout.PageItems <= 0 {
		c.Layout.PageItems = defaultPageItems
	}
	if c.DueDays < 0 {
		return fmt.Errorf("due_days must not be negative, got %d", c.DueDays)
	}
	return nil
}

// envString reads a string env var with a default fallback.
func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
