package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-snake/constants"
)

// drain streams s to exhaustion, returning the sample count and peak amplitude
// Gives up after limit samples so a runaway streamer fails instead of hanging
func drain(s beep.Streamer, limit int) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorWaveRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise}

	for _, w := range waves {
		osc := NewOscillator(440, 50*time.Millisecond, w, rate)
		samples := make([][2]float64, 200)
		n, ok := osc.Stream(samples)
		if !ok || n != 200 {
			t.Errorf("Wave %d: expected 200 samples ok, got %d %v", w, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("Wave %d sample %d out of range: %f", w, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Fatalf("Wave %d sample %d: expected mono, got %f/%f", w, i, samples[i][0], samples[i][1])
			}
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got %v", osc.Err())
		}
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewSweep(200, 50, 10*time.Millisecond, WaveTriangle, rate)

	total, _ := drain(osc, 10000)
	if want := rate.N(10 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Square wave at 0 Hz stays at +1, exposing the envelope gain directly
	src := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("Expected half gain mid-attack, got %f", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full gain in sustain, got %f", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Expected half gain mid-release, got %f", samples[90][0])
	}
}

func TestWhooshLength(t *testing.T) {
	cfg := DefaultAudioConfig()
	s := CreateWhooshSound(cfg)

	total, peak := drain(s, 100000)
	if want := beep.SampleRate(cfg.SampleRate).N(constants.WhooshSoundDuration); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if peak == 0 {
		t.Error("Expected audible whoosh")
	}
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	limit := cfg.SampleRate // one second

	for _, st := range AllSoundTypes() {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for %v", st)
		}
		total, peak := drain(s, limit)
		if total == 0 {
			t.Errorf("%v: expected samples, got none", st)
		}
		if peak == 0 {
			t.Errorf("%v: expected audible output", st)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

func TestSequencedSoundsEnd(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		st   SoundType
		want int
	}{
		{SoundError, rate.N(constants.ErrorSoundDuration)},
		{SoundWhoosh, rate.N(constants.WhooshSoundDuration)},
		{SoundCoin, rate.N(constants.CoinSoundNote1Duration) + rate.N(constants.CoinSoundNote2Duration)},
	}

	for _, tt := range tests {
		total, _ := drain(GetSoundEffect(tt.st, cfg), cfg.SampleRate)
		if total != tt.want {
			t.Errorf("%v: expected %d samples, got %d", tt.st, tt.want, total)
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(CreateBellSound(cfg), cfg.SampleRate)
	if peak != 0 {
		t.Errorf("Expected silence at zero master volume, got peak %f", peak)
	}
}
