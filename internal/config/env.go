package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Environment variables that override file settings.
const (
	EnvProvider       = "TOOLBRIDGE_PROVIDER"
	EnvModel          = "TOOLBRIDGE_MODEL"
	EnvAPIBase        = "TOOLBRIDGE_API_BASE"
	EnvAPIKey         = "TOOLBRIDGE_API_KEY"
	EnvMaxRounds      = "TOOLBRIDGE_MAX_ROUNDS"
	EnvPort           = "TOOLBRIDGE_PORT"
	EnvOpenWeatherKey = "OPENWEATHER_API_KEY"
)

// LoadDotEnv loads ./.env and any extra files into the process environment.
// Variables already set win, and missing files are ignored.
func LoadDotEnv(extra ...string) {
	for _, p := range append([]string{".env"}, extra...) {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load env file", "path", p, "err", err)
		}
	}
}

// ApplyEnv overlays environment overrides onto cfg.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Provider.Name = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Provider.Model = v
	}
	if v := os.Getenv(EnvAPIBase); v != "" {
		cfg.Provider.APIBase = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv(EnvMaxRounds); v != "" {
		if n, err := cast.ToIntE(v); err == nil && n > 0 {
			cfg.Agent.MaxRounds = n
		} else {
			slog.Warn("Ignoring invalid env override", "var", EnvMaxRounds, "value", v)
		}
	}
	if v := os.Getenv(EnvPort); v != "" {
		if n, err := cast.ToIntE(v); err == nil && n > 0 {
			cfg.Server.Port = n
		} else {
			slog.Warn("Ignoring invalid env override", "var", EnvPort, "value", v)
		}
	}
	if cfg.Tools.Web.Weather.APIKey == "" {
		cfg.Tools.Web.Weather.APIKey = os.Getenv(EnvOpenWeatherKey)
	}
}
