package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap suppresses repeats of one effect within a single tick
	MinSoundGap = 50 * time.Millisecond
)

// Error Sound Timing
const (
	ErrorSoundDuration = 180 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 80 * time.Millisecond
)

// Bell Sound Timing
const (
	BellSoundDuration           = 400 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 350 * time.Millisecond
	BellSoundOvertoneRelease    = 150 * time.Millisecond
)

// Whoosh Sound Timing
const (
	WhooshSoundDuration = 120 * time.Millisecond
	WhooshSoundAttack   = 20 * time.Millisecond
	WhooshSoundRelease  = 90 * time.Millisecond
)

// Coin Sound Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 200 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 150 * time.Millisecond
)

// Thud Sound Timing
const (
	ThudSoundDuration = 150 * time.Millisecond
	ThudSoundAttack   = 2 * time.Millisecond
	ThudSoundRelease  = 120 * time.Millisecond
)
