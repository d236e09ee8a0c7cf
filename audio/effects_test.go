package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not terminate")
	return nil
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewTone(440, 440, 100*time.Millisecond, WaveSine, rate))

	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("tone produced %d samples, want %d", len(samples), rate.N(100*time.Millisecond))
	}
}

func TestToneRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw} {
		samples := drain(t, NewTone(880, 220, 50*time.Millisecond, wave, rate))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v, want mono in [-1, 1]", wave, i, s)
			}
		}
	}
}

func TestToneSineStartsAtZero(t *testing.T) {
	samples := drain(t, NewTone(440, 440, 10*time.Millisecond, WaveSine, 44100))
	if samples[0][0] != 0 {
		t.Errorf("first sine sample = %v, want 0", samples[0][0])
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	// Square at 0Hz holds at +1 so the gain curve is visible directly
	s := NewEnvelope(NewTone(0, 0, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate)
	samples := drain(t, s)

	if len(samples) != 100 {
		t.Fatalf("envelope produced %d samples, want 100", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack start = %v, want 0", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %v, want 1", samples[50][0])
	}
	if got := samples[99][0]; got <= 0 || got > 0.1 {
		t.Errorf("release tail = %v, want small positive", got)
	}
}

func TestEnvelopeTruncatesSource(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewEnvelope(NewTone(100, 100, time.Second, WaveSine, rate), 30*time.Millisecond, 0, 0, rate)
	if got := len(drain(t, s)); got != 30 {
		t.Errorf("envelope produced %d samples, want 30", got)
	}
}

func TestNewSoundAllTypes(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	want := map[SoundType]int{
		SoundTurn:  rate.N(30 * time.Millisecond),
		SoundEat:   2 * rate.N(70*time.Millisecond),
		SoundDeath: rate.N(450 * time.Millisecond),
		SoundScore: rate.N(300 * time.Millisecond),
	}

	for s, n := range want {
		streamer := NewSound(s, cfg)
		if streamer == nil {
			t.Fatalf("NewSound(%v) = nil", s)
		}
		samples := drain(t, streamer)
		if len(samples) != n {
			t.Errorf("NewSound(%v) produced %d samples, want %d", s, len(samples), n)
		}
		peak := 0.0
		for _, v := range samples {
			peak = math.Max(peak, math.Abs(v[0]))
		}
		if peak == 0 || peak > 1 {
			t.Errorf("NewSound(%v) peak = %v, want in (0, 1]", s, peak)
		}
	}

	if NewSound(soundTypeCount, cfg) != nil {
		t.Error("NewSound(unknown) should be nil")
	}
}

func TestNewSoundSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	for _, v := range drain(t, NewSound(SoundDeath, cfg)) {
		if v[0] != 0 {
			t.Fatalf("muted master produced sample %v", v[0])
		}
	}
}
