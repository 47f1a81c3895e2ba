// Package config loads host configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config is the host-level configuration. Simulation tuning is deliberately
// not configurable; these only affect the shell around it.
type Config struct {
	WindowW      int
	WindowH      int
	SavePath     string
	PositionKey  string
	AudioEnabled bool
}

// Load reads configuration from STARDRIFT_* environment variables, with
// working defaults for every value.
func Load() *Config {
	return &Config{
		WindowW:      getEnvInt("STARDRIFT_WINDOW_W", 1280),
		WindowH:      getEnvInt("STARDRIFT_WINDOW_H", 720),
		SavePath:     getEnv("STARDRIFT_SAVE_PATH", "stardrift_save.json"),
		PositionKey:  getEnv("STARDRIFT_POSITION_KEY", "stardrift:position"),
		AudioEnabled: getEnvBool("STARDRIFT_AUDIO", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
