package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-snake/audio"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvTickMs, "55")
	t.Setenv(EnvBulletCooldown, "1")
	t.Setenv(EnvEventCapacity, "notanumber")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvColorMode, "mono")
	t.Setenv(EnvShowScope, "false")
	t.Setenv(EnvScreenshot, "shots/last.png")
	t.Setenv(audio.EnvMasterVolume, "20")
	t.Setenv(audio.EnvSFXVolumes, `{"coin": 0.3}`)

	c := Default()
	c.ApplyEnv()

	if c.Game.TickIntervalMs != 55 || c.Game.BulletCooldownTicks != 1 || c.Game.Seed != 99 {
		t.Errorf("Unexpected game section %+v", c.Game)
	}
	if c.Game.EventCapacity != Default().Game.EventCapacity {
		t.Errorf("Expected malformed value ignored, got %d", c.Game.EventCapacity)
	}
	if c.Render.ColorMode != "mono" || c.Render.ShowScope {
		t.Errorf("Unexpected render section %+v", c.Render)
	}
	if c.Screenshot.Path != "shots/last.png" {
		t.Errorf("Expected screenshot path from env, got %q", c.Screenshot.Path)
	}
	if c.Audio.MasterVolume != 0.2 || c.Audio.Volumes.Coin != 0.3 {
		t.Errorf("Expected audio env applied, got %+v", c.Audio)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Expected env result to validate, got %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	writeFile(t, path, "VI_SNAKE_TEST_FROM_DOTENV=yes\n")
	t.Cleanup(func() { os.Unsetenv("VI_SNAKE_TEST_FROM_DOTENV") })

	if err := LoadEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if got := os.Getenv("VI_SNAKE_TEST_FROM_DOTENV"); got != "yes" {
		t.Errorf("Expected variable from dotenv, got %q", got)
	}
}

func TestLoadEnvKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	writeFile(t, path, "VI_SNAKE_TICK_MS=999\n")
	t.Setenv(EnvTickMs, "80")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if got := os.Getenv(EnvTickMs); got != "80" {
		t.Errorf("Expected process env to win, got %q", got)
	}
}
