package audio

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/constants"
)

// Environment keys read by ApplyEnv
const (
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "VI_SNAKE_SFX_VOLUMES"   // JSON object keyed by sound name
	EnvSampleRate   = "VI_SNAKE_SAMPLE_RATE"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundError:  0.8,
			SoundBell:   1.0,
			SoundWhoosh: 0.6,
			SoundCoin:   0.5,
			SoundThud:   0.7,
		},
	}
}

// Clone returns a deep copy
func (c *AudioConfig) Clone() *AudioConfig {
	out := *c
	out.EffectVolumes = maps.Clone(c.EffectVolumes)
	return &out
}

// Volume returns the effective gain of one effect
func (c *AudioConfig) Volume(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}

// Validate rejects volumes outside [0,1] and non-positive sample rates
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master volume %.2f: %w", c.MasterVolume, ErrInvalidVolume)
	}
	for st, v := range c.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s volume %.2f: %w", st, v, ErrInvalidVolume)
		}
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", c.SampleRate, ErrInvalidRate)
	}
	return nil
}

// LoadAudioConfig returns defaults overridden by the environment
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from VI_SNAKE_* variables, ignoring malformed values
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given in percent
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[SoundType]float64, len(volumes))
			}
			for name, v := range volumes {
				if st, ok := ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clamp01(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
