package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/vi-snake/audio"
)

// Environment keys for the game and render sections
// Audio keys are defined by the audio package
const (
	EnvTickMs         = "VI_SNAKE_TICK_MS"
	EnvBulletCooldown = "VI_SNAKE_BULLET_COOLDOWN"
	EnvBulletCapacity = "VI_SNAKE_BULLET_CAPACITY"
	EnvEventCapacity  = "VI_SNAKE_EVENT_CAPACITY"
	EnvSeed           = "VI_SNAKE_SEED"
	EnvColorMode      = "VI_SNAKE_COLOR_MODE"
	EnvShowScope      = "VI_SNAKE_SHOW_SCOPE"
	EnvMinimal        = "VI_SNAKE_MINIMAL"
	EnvScreenshot     = "VI_SNAKE_SCREENSHOT"
)

// LoadEnv seeds the process environment from dotenv files
// Variables already set are kept; a missing file is not an error
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvPath}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		log.Printf("[CONFIG] loaded environment from %s", f)
	}
	return nil
}

// ApplyEnv overrides c from VI_SNAKE_* variables, ignoring malformed values
func (c *Config) ApplyEnv() {
	envInt(EnvTickMs, &c.Game.TickIntervalMs)
	envInt(EnvBulletCooldown, &c.Game.BulletCooldownTicks)
	envInt(EnvBulletCapacity, &c.Game.BulletCapacity)
	envInt(EnvEventCapacity, &c.Game.EventCapacity)
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = n
		}
	}

	if v := os.Getenv(EnvColorMode); v != "" {
		c.Render.ColorMode = v
	}
	envBool(EnvShowScope, &c.Render.ShowScope)
	envBool(EnvMinimal, &c.Render.Minimal)
	if v := os.Getenv(EnvScreenshot); v != "" {
		c.Screenshot.Path = v
	}

	ac := c.AudioConfig()
	audio.ApplyEnv(ac)
	c.setAudio(ac)
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
