// Package config loads game settings from built-in defaults, a TOML file, a
// .env file and VI_SNAKE_* environment variables, in that order of priority.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/vmath"
)

const (
	// DefaultConfigPath is read when no -config flag is given and the file exists
	DefaultConfigPath = "vi-snake.toml"
	// DefaultEnvPath is the optional dotenv file
	DefaultEnvPath = ".env"
)

var (
	ErrInvalidTick     = errors.New("tick interval below minimum")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrInvalidCooldown = errors.New("bullet cooldown must not be negative")
	ErrInvalidCellSize = errors.New("screenshot cell size must be at least 1")
)

// Config is the full settings tree as stored in vi-snake.toml
type Config struct {
	Game       GameSection       `toml:"game"`
	Audio      AudioSection      `toml:"audio"`
	Render     RenderSection     `toml:"render"`
	Screenshot ScreenshotSection `toml:"screenshot"`

	// Keys maps key names to action names, overriding the default bindings
	Keys map[string]string `toml:"keys,omitempty"`
}

type GameSection struct {
	TickIntervalMs      int    `toml:"tick_interval_ms"`
	BulletCooldownTicks int    `toml:"bullet_cooldown_ticks"`
	BulletCapacity      int    `toml:"bullet_capacity"`
	EventCapacity       int    `toml:"event_capacity"`
	Seed                uint64 `toml:"seed"` // 0 = time based
}

type AudioSection struct {
	Enabled      bool          `toml:"enabled"`
	MasterVolume float64       `toml:"master_volume"`
	SampleRate   int           `toml:"sample_rate"`
	Volumes      VolumeSection `toml:"volumes"`
}

// VolumeSection holds per-effect gains in [0,1]
type VolumeSection struct {
	Bell   float64 `toml:"bell"`
	Whoosh float64 `toml:"whoosh"`
	Coin   float64 `toml:"coin"`
	Error  float64 `toml:"error"`
	Thud   float64 `toml:"thud"`
}

type RenderSection struct {
	ColorMode string `toml:"color_mode"`
	ShowScope bool   `toml:"show_scope"`
	Minimal   bool   `toml:"minimal"`
}

// ScreenshotSection enables PNG snapshots when Path is set
type ScreenshotSection struct {
	Path     string `toml:"path"`
	CellSize int    `toml:"cell_size"`
}

// Default returns the built-in settings
func Default() *Config {
	c := &Config{
		Game: GameSection{
			TickIntervalMs:      int(constants.TickInterval / time.Millisecond),
			BulletCooldownTicks: constants.BulletCooldownTicks,
			BulletCapacity:      constants.BulletPoolCapacity,
			EventCapacity:       constants.EventQueueCapacity,
		},
		Render: RenderSection{
			ColorMode: render.ColorTrue.String(),
			ShowScope: true,
		},
		Screenshot: ScreenshotSection{
			CellSize: render.DefaultSnapshotCellSize,
		},
	}
	c.setAudio(audio.DefaultAudioConfig())
	return c
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	return load(path, nil)
}

// load is Load with overlay applied between parsing and validation
func load(path string, overlay func(*Config)) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if overlay != nil {
		overlay(c)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// LoadAuto loads with priority: customPath > DefaultConfigPath > defaults
// Returns the path actually read, empty when running on defaults
func LoadAuto(customPath string) (*Config, string, error) {
	if customPath != "" {
		c, err := Load(customPath)
		return c, customPath, err
	}
	if fileExists(DefaultConfigPath) {
		c, err := Load(DefaultConfigPath)
		return c, DefaultConfigPath, err
	}
	return Default(), "", nil
}

// Write stores c as TOML, creating parent directories
func (c *Config) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	out := *c
	out.Keys = maps.Clone(c.Keys)
	return &out
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.TickInterval() < constants.MinTickInterval {
		return fmt.Errorf("%w: %dms < %v", ErrInvalidTick, c.Game.TickIntervalMs, constants.MinTickInterval)
	}
	if c.Game.BulletCapacity < 1 {
		return fmt.Errorf("bullet_capacity %d: %w", c.Game.BulletCapacity, ErrInvalidCapacity)
	}
	if c.Game.EventCapacity < 1 {
		return fmt.Errorf("event_capacity %d: %w", c.Game.EventCapacity, ErrInvalidCapacity)
	}
	if c.Game.BulletCooldownTicks < 0 {
		return fmt.Errorf("bullet_cooldown_ticks %d: %w", c.Game.BulletCooldownTicks, ErrInvalidCooldown)
	}
	if err := c.AudioConfig().Validate(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	if _, err := render.ParseColorMode(c.Render.ColorMode); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if c.Screenshot.CellSize < 1 {
		return fmt.Errorf("cell_size %d: %w", c.Screenshot.CellSize, ErrInvalidCellSize)
	}
	if _, err := input.ParseBindings(c.Keys); err != nil {
		return err
	}
	return nil
}

// TickInterval returns the simulation step
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickIntervalMs) * time.Millisecond
}

// GameConfig builds the engine settings for a board of the given size
func (c *Config) GameConfig(width, height int) engine.GameConfig {
	return engine.GameConfig{
		Bounds:         vmath.NewBounds(width, height),
		BulletCapacity: c.Game.BulletCapacity,
		EventCapacity:  c.Game.EventCapacity,
		BulletCooldown: c.Game.BulletCooldownTicks,
		Seed:           c.Game.Seed,
	}
}

// AudioConfig converts the audio section
func (c *Config) AudioConfig() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.MasterVolume,
		SampleRate:   c.Audio.SampleRate,
		EffectVolumes: map[audio.SoundType]float64{
			audio.SoundBell:   c.Audio.Volumes.Bell,
			audio.SoundWhoosh: c.Audio.Volumes.Whoosh,
			audio.SoundCoin:   c.Audio.Volumes.Coin,
			audio.SoundError:  c.Audio.Volumes.Error,
			audio.SoundThud:   c.Audio.Volumes.Thud,
		},
	}
}

func (c *Config) setAudio(ac *audio.AudioConfig) {
	c.Audio = AudioSection{
		Enabled:      ac.Enabled,
		MasterVolume: ac.MasterVolume,
		SampleRate:   ac.SampleRate,
		Volumes: VolumeSection{
			Bell:   ac.EffectVolumes[audio.SoundBell],
			Whoosh: ac.EffectVolumes[audio.SoundWhoosh],
			Coin:   ac.EffectVolumes[audio.SoundCoin],
			Error:  ac.EffectVolumes[audio.SoundError],
			Thud:   ac.EffectVolumes[audio.SoundThud],
		},
	}
}

// RenderConfig converts the render section; debug comes from the command line
func (c *Config) RenderConfig(debug bool) render.RenderConfig {
	mode, _ := render.ParseColorMode(c.Render.ColorMode)
	return render.RenderConfig{
		ShowScope: c.Render.ShowScope,
		Minimal:   c.Render.Minimal,
		ColorMode: mode,
		Debug:     debug,
	}
}

// KeyTable returns the default bindings with [keys] applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	return input.LoadKeyTable(c.Keys)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
