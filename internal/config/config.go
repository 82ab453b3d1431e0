// Package config loads cashbench settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mmynk/cashbench/internal/calculator"
	"github.com/mmynk/cashbench/internal/models"
)

// DevJWTSecret is the fallback signing key. Serving with it logs a warning.
const DevJWTSecret = "cashbench-dev-secret-change-me"

// Config holds all cashbench configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Auth     AuthConfig     `toml:"auth"`
	Schedule ScheduleConfig `toml:"schedule"`
	Log      LogConfig      `toml:"log"`

	// Workbenches lists [[workbench]] tables. The service adds an untagged
	// "Main" workbench when none is configured.
	Workbenches []models.WorkbenchConfig `toml:"workbench,omitempty"`
}

// ServerConfig holds listener and storage settings.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	DBPath     string `toml:"db_path"`
	StaticPath string `toml:"static_path,omitempty"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret string   `toml:"jwt_secret,omitempty"`
	TokenTTL  Duration `toml:"token_ttl"`
}

// ScheduleConfig holds bill scheduling settings.
type ScheduleConfig struct {
	// DueSoonDays is how many days ahead a bill counts as due soon.
	DueSoonDays int    `toml:"due_soon_days"`
	// Timezone names the location that decides "today", e.g. "America/New_York".
	Timezone    string `toml:"timezone,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Duration is a time.Duration written as a string ("24h") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:   ":8080",
			DBPath: filepath.Join(DataDir(), "cashbench.db"),
		},
		Auth: AuthConfig{
			TokenTTL: Duration{24 * time.Hour},
		},
		Schedule: ScheduleConfig{
			DueSoonDays: calculator.DefaultDueSoonHorizon,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashbench")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cashbench")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashbench")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cashbench")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the config file at Path, falling back to defaults when it does
// not exist, and then applies environment overrides.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to Path.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// applyEnv overrides file settings with CASHBENCH_* variables and LOG_LEVEL.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("CASHBENCH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CASHBENCH_DB_PATH"); v != "" {
		cfg.Server.DBPath = v
	}
	if v := os.Getenv("CASHBENCH_STATIC_PATH"); v != "" {
		cfg.Server.StaticPath = v
	}
	if v := os.Getenv("CASHBENCH_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("CASHBENCH_DUE_SOON_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CASHBENCH_DUE_SOON_DAYS: %w", err)
		}
		cfg.Schedule.DueSoonDays = days
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Validate checks settings that would otherwise fail at request time.
func (c Config) Validate() error {
	if c.Schedule.DueSoonDays < 0 {
		return fmt.Errorf("schedule.due_soon_days must not be negative, got %d", c.Schedule.DueSoonDays)
	}
	if c.Auth.TokenTTL.Duration <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL.Duration)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Workbenches))
	for _, w := range c.Workbenches {
		if w.Title == "" {
			return fmt.Errorf("workbench with tag %q has no title", w.Tag)
		}
		if seen[w.Tag] {
			return fmt.Errorf("duplicate workbench tag %q", w.Tag)
		}
		seen[w.Tag] = true
	}
	return nil
}

// Location returns the schedule time zone, or time.Local when unset.
func (c Config) Location() (*time.Location, error) {
	if c.Schedule.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule.timezone: %w", err)
	}
	return loc, nil
}

// JWTSecret returns the configured signing key, or DevJWTSecret.
func (c Config) JWTSecret() string {
	if c.Auth.JWTSecret != "" {
		return c.Auth.JWTSecret
	}
	return DevJWTSecret
}
