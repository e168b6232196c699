// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Alienware2000/intentionality/internal/timeline"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	UI       UIConfig       `toml:"ui"`
	LLM      LLMConfig      `toml:"llm"`
	Storage  StorageConfig  `toml:"storage"`
}

// ScheduleConfig holds the smart-window policy knobs of the day timeline.
// These are presentation defaults, not layout invariants.
type ScheduleConfig struct {
	MinHour          int `toml:"min_hour"`           // earliest displayable hour
	MaxHour          int `toml:"max_hour"`           // latest displayable hour
	PaddingHours     int `toml:"padding_hours"`      // breathing room around blocks
	MinSpanHours     int `toml:"min_span_hours"`     // narrower windows get re-centered
	DefaultStartHour int `toml:"default_start_hour"` // window start on an empty day
	DefaultEndHour   int `toml:"default_end_hour"`   // window end on an empty day
}

// UIConfig holds timeline rendering settings. Heights and widths are in
// terminal cells; the engine treats them as pixels.
type UIConfig struct {
	Theme          string `toml:"theme"`            // "mocha", "macchiato", "frappe", "latte"
	HourHeight     int    `toml:"hour_height"`      // rows per hour
	GutterWidth    int    `toml:"gutter_width"`     // hour-label gutter columns
	BlockGap       int    `toml:"block_gap"`        // columns between side-by-side blocks
	MinBlockHeight int    `toml:"min_block_height"` // row floor for very short blocks
}

// LLMConfig holds LLM provider settings for AI-assisted planning.
type LLMConfig struct {
	Provider string `toml:"provider"` // "openai" or "ollama"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			MinHour:          5,
			MaxHour:          23,
			PaddingHours:     1,
			MinSpanHours:     8,
			DefaultStartHour: 8,
			DefaultEndHour:   18,
		},
		UI: UIConfig{
			Theme:          "mocha",
			HourHeight:     4,
			GutterWidth:    9,
			BlockGap:       1,
			MinBlockHeight: 1,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o",
			BaseURL:  "",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
	}
}

// WindowPolicy converts the schedule settings into the engine's policy type.
func (c *Config) WindowPolicy() timeline.WindowPolicy {
	return timeline.WindowPolicy{
		MinHour:          c.Schedule.MinHour,
		MaxHour:          c.Schedule.MaxHour,
		PaddingHours:     c.Schedule.PaddingHours,
		MinSpanHours:     c.Schedule.MinSpanHours,
		DefaultStartHour: c.Schedule.DefaultStartHour,
		DefaultEndHour:   c.Schedule.DefaultEndHour,
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "intentionality.db"
	}
	return filepath.Join(home, ".local", "share", "intentionality", "intentionality.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "intentionality", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	overrideInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	overrideInt("INTENTIONALITY_MIN_HOUR", &cfg.Schedule.MinHour)
	overrideInt("INTENTIONALITY_MAX_HOUR", &cfg.Schedule.MaxHour)
	overrideInt("INTENTIONALITY_PADDING_HOURS", &cfg.Schedule.PaddingHours)
	overrideInt("INTENTIONALITY_MIN_SPAN_HOURS", &cfg.Schedule.MinSpanHours)

	if v := os.Getenv("INTENTIONALITY_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	overrideInt("INTENTIONALITY_HOUR_HEIGHT", &cfg.UI.HourHeight)

	if v := os.Getenv("INTENTIONALITY_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("INTENTIONALITY_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("INTENTIONALITY_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("INTENTIONALITY_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	s := c.Schedule
	if s.MinHour < 0 || s.MaxHour > 24 || s.MinHour >= s.MaxHour {
		return fmt.Errorf("schedule hours must satisfy 0 <= min_hour < max_hour <= 24, got %d..%d", s.MinHour, s.MaxHour)
	}
	if s.PaddingHours < 0 {
		return errors.New("padding_hours cannot be negative")
	}
	if s.MinSpanHours < 1 || s.MinSpanHours > s.MaxHour-s.MinHour {
		return fmt.Errorf("min_span_hours must be between 1 and %d", s.MaxHour-s.MinHour)
	}
	if s.DefaultStartHour < s.MinHour || s.DefaultEndHour > s.MaxHour || s.DefaultStartHour >= s.DefaultEndHour {
		return errors.New("default window must be a non-empty range inside [min_hour, max_hour]")
	}

	if c.UI.HourHeight < 1 {
		return errors.New("hour_height must be at least 1")
	}
	if c.UI.GutterWidth < 0 || c.UI.BlockGap < 0 || c.UI.MinBlockHeight < 0 {
		return errors.New("ui dimensions cannot be negative")
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("unknown theme: %s", c.UI.Theme)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
