package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays effects through the speaker via a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// lastPlayed throttles repeats of one effect
	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates an uninitialized manager; a nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg.Clone(),
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.config.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[AUDIO] speaker ready at %d Hz", sm.config.SampleRate)
	return nil
}

// Play mixes in a fresh instance of the effect
// Ignored while muted, before Initialize, or within MinSoundGap of the same effect
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() || st < 0 || st >= soundTypeCount {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < constants.MinSoundGap {
		return
	}
	sm.lastPlayed[st] = now

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if muted {
		sm.clearMixer()
	}
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

func (sm *SoundManager) clearMixer() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// SetConfig replaces the mix used by later Play calls
// A disabled config mutes; re-enabling leaves the mute state to the player
func (sm *SoundManager) SetConfig(cfg *AudioConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sm.mu.Lock()
	next := cfg.Clone()
	if sm.initialized && next.SampleRate != sm.config.SampleRate {
		log.Printf("[AUDIO] sample rate %d applies on next start", next.SampleRate)
		next.SampleRate = sm.config.SampleRate
	}
	sm.config = next
	sm.mu.Unlock()

	if !cfg.Enabled {
		sm.SetMuted(true)
	}
	return nil
}

// Config returns a copy of the active settings
func (sm *SoundManager) Config() *AudioConfig {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.config.Clone()
}

// Close stops all sounds and closes the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// NewPlayer returns a running SoundManager, or a SilentPlayer when audio is
// disabled or the speaker fails; the error reports why sound is unavailable
func NewPlayer(cfg *AudioConfig) (Player, error) {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if !cfg.Enabled {
		return &SilentPlayer{muted: true}, ErrAudioDisabled
	}
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		return &SilentPlayer{}, err
	}
	return sm, nil
}
