package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultPath is where Load looks when no -config flag is given. Only a
// missing file at this path triggers template generation.
const DefaultPath = "config.json"

// PlaceholderAPIKey is the value written into a fresh template.
const PlaceholderAPIKey = "YOUR_FRED_API_KEY_HERE"

// Config holds all updater configuration.
type Config struct {
	FredAPIKey      string            `json:"fred_api_key"`
	UpdateFrequency map[string]string `json:"update_frequency,omitempty"`
	DataDir         string            `json:"data_dir,omitempty"`
	HistoryDB       string            `json:"history_db,omitempty"`
	Proxy           string            `json:"proxy,omitempty"`
}

// Load reads config from a JSON file, then applies environment variable
// overrides and defaults. When the default path is missing, a template is
// written and an error returned so the user can fill in the API key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			if werr := WriteTemplate(path); werr != nil {
				return nil, fmt.Errorf("config %s not found and template creation failed: %w", path, werr)
			}
			return nil, fmt.Errorf("config %s not found; a template was created, set fred_api_key and retry", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Environment variable overrides
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		cfg.FredAPIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HISTORY_DB"); v != "" {
		cfg.HistoryDB = v
	}

	// Defaults
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	return cfg, nil
}

// WriteTemplate writes a starter configuration for the user to fill in.
func WriteTemplate(path string) error {
	tpl := &Config{
		FredAPIKey: PlaceholderAPIKey,
		UpdateFrequency: map[string]string{
			"market":     "daily",
			"bonds":      "daily",
			"indicators": "weekly",
		},
		DataDir: "data",
	}
	data, err := json.MarshalIndent(tpl, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Printf("[INFO] wrote config template to %s", path)
	return nil
}

// Validate checks that all required fields are set. Unknown frequency words
// are only warned about; they cost the next-update hint, nothing else.
func (c *Config) Validate() error {
	if c.FredAPIKey == "" || c.FredAPIKey == PlaceholderAPIKey {
		return fmt.Errorf("fred_api_key is required")
	}
	for domain, freq := range c.UpdateFrequency {
		if _, err := scheduleFor(freq); err != nil {
			log.Printf("[WARN] update_frequency.%s: %v", domain, err)
		}
	}
	return nil
}

// Domain output directories under DataDir.
func (c *Config) MarketDir() string     { return filepath.Join(c.DataDir, "market") }
func (c *Config) BondsDir() string      { return filepath.Join(c.DataDir, "bonds") }
func (c *Config) IndicatorsDir() string { return filepath.Join(c.DataDir, "indicators") }

// scheduleFor maps an update_frequency word to a parsed cron schedule.
func scheduleFor(freq string) (cron.Schedule, error) {
	descriptors := map[string]string{
		"daily":   "@daily",
		"weekly":  "@weekly",
		"monthly": "@monthly",
	}
	desc, ok := descriptors[strings.ToLower(strings.TrimSpace(freq))]
	if !ok {
		return nil, fmt.Errorf("unknown frequency %q (expected daily, weekly or monthly)", freq)
	}
	return cron.ParseStandard(desc)
}

// NextUpdate returns the next suggested update time for a domain, or false
// when the domain has no valid frequency configured.
func (c *Config) NextUpdate(domain string, after time.Time) (time.Time, bool) {
	freq, ok := c.UpdateFrequency[domain]
	if !ok {
		return time.Time{}, false
	}
	sched, err := scheduleFor(freq)
	if err != nil {
		return time.Time{}, false
	}
	return sched.Next(after), true
}
