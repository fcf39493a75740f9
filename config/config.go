/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads recordstore configuration from an optional .env file,
// an optional YAML file and environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "RECORDSTORE_LOG_LEVEL"
	EnvSeedDir   = "RECORDSTORE_SEED_DIR"
	EnvLocale    = "RECORDSTORE_LOCALE"
	EnvPageLimit = "RECORDSTORE_PAGE_LIMIT"
	EnvConfig    = "RECORDSTORE_CONFIG"
)

// Config holds runtime configuration.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	SeedDir   string `yaml:"seed_dir"`
	Locale    string `yaml:"locale"`
	PageLimit int    `yaml:"page_limit"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Locale:    "en",
		PageLimit: storagemodels.DefaultLimit,
	}
}

// Load builds the configuration. envFiles are loaded with godotenv first;
// missing files are ignored, and variables already in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	cfg := Default()

	if path := strings.TrimSpace(os.Getenv(EnvConfig)); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvSeedDir); v != "" {
		cfg.SeedDir = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.NewValidationError(EnvPageLimit, fmt.Sprintf("not an integer: %q", v))
		}
		cfg.PageLimit = n
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.NewValidationError("log_level", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return errors.NewValidationError("locale", fmt.Sprintf("invalid language tag %q", c.Locale))
	}
	if c.PageLimit < 1 {
		return errors.NewValidationError("page_limit", "must be at least 1")
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Language returns the parsed collation locale.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func loadYAML(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
