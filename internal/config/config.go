package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Profile   ProfileConfig   `yaml:"profile"`
	Chat      ChatConfig      `yaml:"chat"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Web       WebConfig       `yaml:"web"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// UpstreamConfig points at the live dashboard feed (a raw JSON file in a
// remote repository).
type UpstreamConfig struct {
	DataURL         string        `yaml:"data_url"`
	Timeout         time.Duration `yaml:"timeout"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// ProfileConfig describes the coached athlete. PeriodStart is the reference
// date the cycle phase is computed from, format 2006-01-02.
type ProfileConfig struct {
	Name            string `yaml:"name"`
	PeriodStart     string `yaml:"period_start"`
	CycleLengthDays int    `yaml:"cycle_length_days"`
	StatsLine       string `yaml:"stats_line"`
	GymLine         string `yaml:"gym_line"`
	GoalsLine       string `yaml:"goals_line"`
}

type ChatConfig struct {
	MaxTurns int `yaml:"max_turns"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// WebConfig optionally names a directory of static page assets to serve.
type WebConfig struct {
	Dir string `yaml:"dir"`
}

// PeriodStartDate parses the configured reference period start.
func (p ProfileConfig) PeriodStartDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", p.PeriodStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing profile.period_start: %w", err)
	}
	return t, nil
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix CYCLEBOARD_ and underscore-separated
// paths:
//
//	CYCLEBOARD_SERVER_HOST, CYCLEBOARD_SERVER_PORT,
//	CYCLEBOARD_UPSTREAM_DATA_URL, CYCLEBOARD_GEMINI_API_KEY,
//	CYCLEBOARD_GEMINI_MODEL, CYCLEBOARD_PROFILE_PERIOD_START
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CYCLEBOARD_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("CYCLEBOARD_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("CYCLEBOARD_UPSTREAM_DATA_URL"); v != "" {
		cfg.Upstream.DataURL = v
	}
	if v := os.Getenv("CYCLEBOARD_GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("CYCLEBOARD_GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("CYCLEBOARD_PROFILE_PERIOD_START"); v != "" {
		cfg.Profile.PeriodStart = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 15 * time.Second
	}
	if cfg.Upstream.RefreshInterval == 0 {
		cfg.Upstream.RefreshInterval = 30 * time.Minute
	}
	if cfg.Profile.CycleLengthDays == 0 {
		cfg.Profile.CycleLengthDays = 28
	}
	if cfg.Chat.MaxTurns == 0 {
		cfg.Chat.MaxTurns = 100
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Upstream.DataURL == "" {
		return fmt.Errorf("upstream.data_url is required")
	}
	if c.Profile.Name == "" {
		return fmt.Errorf("profile.name is required")
	}
	if c.Profile.PeriodStart != "" {
		if _, err := c.Profile.PeriodStartDate(); err != nil {
			return err
		}
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
