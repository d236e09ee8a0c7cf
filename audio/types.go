package audio

import "errors"

// SoundType identifies a gameplay cue
type SoundType int

const (
	SoundTurn  SoundType = iota // Accepted direction change
	SoundEat                    // Food eaten
	SoundDeath                  // Self-collision
	SoundScore                  // Score display starts
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundTurn:  "turn",
	SoundEat:   "eat",
	SoundDeath: "death",
	SoundScore: "score",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a cue name back to its type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrNotRunning    = errors.New("audio manager not running")
)
