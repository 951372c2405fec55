// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker. Game events reach it through EventHandler.
package audio

import (
	"errors"
	"strings"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundError  SoundType = iota // Death buzz
	SoundBell                    // Food eaten
	SoundWhoosh                  // Bullet fired
	SoundCoin                    // Food shot
	SoundThud                    // Snake hit by food
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundError:  "error",
	SoundBell:   "bell",
	SoundWhoosh: "whoosh",
	SoundCoin:   "coin",
	SoundThud:   "thud",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType looks up a sound by its lowercase name
func ParseSoundType(name string) (SoundType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// AllSoundTypes lists every effect in declaration order
func AllSoundTypes() []SoundType {
	out := make([]SoundType, soundTypeCount)
	for i := range out {
		out[i] = SoundType(i)
	}
	return out
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
	ErrSpeakerInit   = errors.New("speaker init failed")
	ErrUnknownSound  = errors.New("unknown sound type")
	ErrInvalidVolume = errors.New("volume outside [0,1]")
	ErrInvalidRate   = errors.New("sample rate must be positive")
)
