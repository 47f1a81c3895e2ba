package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"STARDRIFT_WINDOW_W", "STARDRIFT_WINDOW_H",
		"STARDRIFT_SAVE_PATH", "STARDRIFT_POSITION_KEY", "STARDRIFT_AUDIO",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 1280, cfg.WindowW)
	assert.Equal(t, 720, cfg.WindowH)
	assert.Equal(t, "stardrift_save.json", cfg.SavePath)
	assert.Equal(t, "stardrift:position", cfg.PositionKey)
	assert.True(t, cfg.AudioEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STARDRIFT_WINDOW_W", "1920")
	t.Setenv("STARDRIFT_WINDOW_H", "1080")
	t.Setenv("STARDRIFT_SAVE_PATH", "/tmp/drift.json")
	t.Setenv("STARDRIFT_POSITION_KEY", "alt:key")
	t.Setenv("STARDRIFT_AUDIO", "false")

	cfg := Load()
	assert.Equal(t, 1920, cfg.WindowW)
	assert.Equal(t, 1080, cfg.WindowH)
	assert.Equal(t, "/tmp/drift.json", cfg.SavePath)
	assert.Equal(t, "alt:key", cfg.PositionKey)
	assert.False(t, cfg.AudioEnabled)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("STARDRIFT_WINDOW_W", "wide")
	t.Setenv("STARDRIFT_AUDIO", "maybe")

	cfg := Load()
	assert.Equal(t, 1280, cfg.WindowW)
	assert.True(t, cfg.AudioEnabled)
}
