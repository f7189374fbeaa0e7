// Package config loads service configuration: built-in defaults, overlaid
// by an optional TOML file, overlaid by environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the env var pointing at the TOML config file.
const EnvConfigPath = "BADGE_CONFIG"

// Config is the top-level service configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Assets AssetsConfig `toml:"assets"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	// Port the server listens on.
	Port int `toml:"port"`
	// AuthUser / AuthPass protect the /process endpoint with basic auth.
	AuthUser string `toml:"auth_user"`
	AuthPass string `toml:"auth_pass"`
	// DebugDir, when set, receives a debug.html with the last rendered
	// badge embedded. Empty disables the debug artifact.
	DebugDir string `toml:"debug_dir"`
}

// AssetsConfig holds the fixed asset locations the compositor reads.
type AssetsConfig struct {
	LogoPath string `toml:"logo_path"`
	FontPath string `toml:"font_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `toml:"level"`
	// File, when set, additionally writes logs to a size-rotated file.
	File string `toml:"file"`
	// MaxSizeMB is the rotation threshold for File.
	MaxSizeMB int `toml:"max_size_mb"`
}

// Default returns the built-in configuration, matching the original
// deployment: port 5000, the canonical logo and font names, heroku/agent
// credentials.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:     5000,
			AuthUser: "heroku",
			AuthPass: "agent",
		},
		Assets: AssetsConfig{
			LogoPath: "resources/heroku_logo.png",
			FontPath: "arial.ttf",
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
		},
	}
}

// Load builds the effective configuration. path may be empty, in which case
// BADGE_CONFIG or "badge.toml" is tried; a missing file is not an error,
// a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = "badge.toml"
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Unset or invalid values
// leave the existing setting untouched.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("BADGE_AUTH_USER"); v != "" {
		cfg.Server.AuthUser = v
	}
	if v := os.Getenv("BADGE_AUTH_PASS"); v != "" {
		cfg.Server.AuthPass = v
	}
	if v := os.Getenv("BADGE_DEBUG_DIR"); v != "" {
		cfg.Server.DebugDir = v
	}
	if v := os.Getenv("BADGE_LOGO_PATH"); v != "" {
		cfg.Assets.LogoPath = v
	}
	if v := os.Getenv("BADGE_FONT_PATH"); v != "" {
		cfg.Assets.FontPath = v
	}
	if v := os.Getenv("BADGE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BADGE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
