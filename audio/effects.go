package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/launchgrid/constants"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator whose frequency glides linearly from one pitch to another
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate

	phase  float64
	pos    int
	length int
}

// NewTone creates a tone of duration d gliding from one frequency to another
func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   rate,
		length: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}

	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}

		v := t.sample()
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*t.phase - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release, ending the stream at its length
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	length   int
}

// NewEnvelope shapes s with a linear attack and release over duration d
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		length:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.length {
		return 0, false
	}
	if rest := e.length - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gainAt(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) gainAt(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if e.release > 0 {
		if left := e.length - pos; left < e.release {
			g = math.Min(g, float64(left)/float64(e.release))
		}
	}
	return g
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a stream linearly; zero or less is silence
// effects.Volume is logarithmic, so the linear factor becomes log2
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// NewSound builds the streamer for a cue, or nil for an unknown type
func NewSound(s SoundType, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var out beep.Streamer
	switch s {
	case SoundTurn:
		out = NewEnvelope(
			NewTone(1200, 1200, constants.TurnSoundDuration, WaveSquare, rate),
			constants.TurnSoundDuration, constants.TurnSoundAttack, constants.TurnSoundRelease, rate)

	case SoundEat:
		// E5 then B5
		note := func(freq float64) beep.Streamer {
			return NewEnvelope(
				NewTone(freq, freq, constants.EatSoundNoteDuration, WaveSine, rate),
				constants.EatSoundNoteDuration, constants.EatSoundAttack, constants.EatSoundRelease, rate)
		}
		out = beep.Seq(note(659.25), note(987.77))

	case SoundDeath:
		out = NewEnvelope(
			NewTone(440, 110, constants.DeathSoundDuration, WaveSaw, rate),
			constants.DeathSoundDuration, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)

	case SoundScore:
		partial := func(freq, level float64) beep.Streamer {
			sine, err := generators.SineTone(rate, freq)
			if err != nil {
				sine = NewTone(freq, freq, constants.ScoreSoundDuration, WaveSine, rate)
			}
			return gain(NewEnvelope(sine,
				constants.ScoreSoundDuration, constants.ScoreSoundAttack, constants.ScoreSoundRelease, rate), level)
		}
		// Mix pads to the buffer size, Take trims it back
		out = beep.Take(rate.N(constants.ScoreSoundDuration), beep.Mix(partial(880, 0.7), partial(1320, 0.3)))

	default:
		return nil
	}

	return gain(out, cfg.Volume(s))
}
