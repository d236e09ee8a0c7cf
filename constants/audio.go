package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Turn tick: short square blip on an accepted direction change
const (
	TurnSoundDuration = 30 * time.Millisecond
	TurnSoundAttack   = 2 * time.Millisecond
	TurnSoundRelease  = 15 * time.Millisecond
)

// Eat chime: rising two-note sine
const (
	EatSoundNoteDuration = 70 * time.Millisecond
	EatSoundAttack       = 5 * time.Millisecond
	EatSoundRelease      = 50 * time.Millisecond
)

// Death buzz: falling saw sweep
const (
	DeathSoundDuration = 450 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 250 * time.Millisecond
)

// Score ping: soft sine bell
const (
	ScoreSoundDuration = 300 * time.Millisecond
	ScoreSoundAttack   = 5 * time.Millisecond
	ScoreSoundRelease  = 250 * time.Millisecond
)
