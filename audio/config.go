package audio

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/lixenwraith/launchgrid/constants"
)

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`

	// EffectVolumes scales individual cues, keyed by cue name
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[string]float64{
			SoundTurn.String():  0.4,
			SoundEat.String():   0.8,
			SoundDeath.String(): 1.0,
			SoundScore.String(): 0.6,
		},
	}
}

// Volume returns the effective gain of a cue, master volume included
func (c *AudioConfig) Volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s.String()]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

// Validate checks ranges; an unknown cue name in EffectVolumes is an error
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master volume %v outside [0, 1]", c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d must be positive", c.SampleRate)
	}
	for name, v := range c.EffectVolumes {
		if _, ok := ParseSoundType(name); !ok {
			return fmt.Errorf("unknown sound %q in effect volumes", name)
		}
		if v < 0 {
			return fmt.Errorf("sound %q volume %v is negative", name, v)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from LAUNCHGRID_* environment variables; malformed values are ignored
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("LAUNCHGRID_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Percent, clamped to 0..100
	if volume := os.Getenv("LAUNCHGRID_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = math.Max(0, math.Min(1, float64(val)/100.0))
		}
	}

	// JSON object of cue name to volume, e.g. {"eat":0.5}
	if effectVols := os.Getenv("LAUNCHGRID_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if c.EffectVolumes == nil {
				c.EffectVolumes = make(map[string]float64)
			}
			for name, v := range volumes {
				if _, ok := ParseSoundType(name); ok {
					c.EffectVolumes[name] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("LAUNCHGRID_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}
