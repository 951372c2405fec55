package audio

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player plays sound effects; implementations must be safe for concurrent use
type Player interface {
	// Play starts sound st without blocking
	Play(st SoundType)

	SetMuted(muted bool)
	IsMuted() bool

	// ToggleMute flips the mute state and returns the new value
	ToggleMute() bool

	// Close stops playback and releases the device
	Close()
}

// Tuner is implemented by players whose mix can change while running
type Tuner interface {
	// SetConfig swaps in new volumes; the sample rate stays fixed once open
	SetConfig(cfg *AudioConfig) error
}

// SilentPlayer satisfies Player without producing sound
// Used when audio is disabled or the speaker cannot be opened
type SilentPlayer struct {
	muted bool
}

func (p *SilentPlayer) Play(SoundType) {}

func (p *SilentPlayer) SetMuted(muted bool) { p.muted = muted }

func (p *SilentPlayer) IsMuted() bool { return p.muted }

func (p *SilentPlayer) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

func (p *SilentPlayer) Close() {}

var (
	_ Player = (*SilentPlayer)(nil)
	_ Player = (*SoundManager)(nil)
	_ Tuner  = (*SoundManager)(nil)
)
