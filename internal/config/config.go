package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	// ModeSynthetic serves deterministic engine-generated offers only.
	ModeSynthetic Mode = "synthetic"
	// ModeLive routes to real provider adapters (all stubs today).
	ModeLive Mode = "live"
	// ModeHybrid prefers live adapters with credentials and falls back
	// to the synthetic engine otherwise.
	ModeHybrid Mode = "hybrid"
)

type ProviderConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Priority int               `yaml:"priority"`
	EnvKeys  map[string]string `yaml:"envKeys,omitempty"`
}

type Config struct {
	Mode      Mode                      `yaml:"mode"`
	Providers map[string]ProviderConfig `yaml:"providers"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode: ModeSynthetic,
		Providers: map[string]ProviderConfig{
			"synthetic": {Enabled: true, Priority: 100},
			"airbnb": {
				Enabled:  true,
				Priority: 50,
				EnvKeys:  map[string]string{"affiliate id": "AIRBNB_AFFILIATE_ID"},
			},
			"bookingcom": {
				Enabled:  true,
				Priority: 50,
				EnvKeys:  map[string]string{"partner token": "BOOKING_PARTNER_TOKEN"},
			},
		},
	}
}

func Load() *Config {
	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if envMode := os.Getenv("BENINTOUR_MODE"); envMode != "" {
		cfg.applyMode(envMode)
	}

	if envProviders := os.Getenv("BENINTOUR_PROVIDERS"); envProviders != "" {
		for _, n := range strings.Split(envProviders, ",") {
			n = strings.TrimSpace(n)
			if _, ok := cfg.Providers[n]; !ok {
				cfg.Providers[n] = ProviderConfig{Enabled: true, Priority: 50}
			}
		}
	}

	return cfg
}

func (c *Config) WithMode(mode string) *Config {
	if mode != "" {
		c.applyMode(mode)
	}
	return c
}

func (c *Config) applyMode(mode string) {
	switch strings.ToLower(mode) {
	case "synthetic":
		c.Mode = ModeSynthetic
	case "live":
		c.Mode = ModeLive
	case "hybrid":
		c.Mode = ModeHybrid
	}
}

func (c *Config) ProviderHasCredentials(name string) bool {
	pc, ok := c.Providers[name]
	if !ok {
		return false
	}
	for _, envKey := range pc.EnvKeys {
		if os.Getenv(envKey) == "" {
			return false
		}
	}
	return true
}

func (c *Config) MissingCredentials(name string) []string {
	pc, ok := c.Providers[name]
	if !ok {
		return nil
	}
	var missing []string
	for label, envKey := range pc.EnvKeys {
		if os.Getenv(envKey) == "" {
			missing = append(missing, fmt.Sprintf("%s (%s)", label, envKey))
		}
	}
	return missing
}

func configPath() string {
	if p := os.Getenv("BENINTOUR_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "benintour", "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
