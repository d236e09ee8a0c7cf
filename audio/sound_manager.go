package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/launchgrid/constants"
)

// SoundManager plays cues through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      [soundTypeCount]atomic.Int64
}

// NewSoundManager creates a sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker; the manager stays silent if it fails
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	sampleRate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues; the speaker device stays open for reuse
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue, returning false when it was not queued
func (sm *SoundManager) Play(s SoundType) bool {
	if s < 0 || s >= soundTypeCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	streamer := NewSound(s, sm.config)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played[s].Add(1)
	return true
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted forces the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayCount returns how many times a cue was queued
func (sm *SoundManager) PlayCount(s SoundType) int64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return sm.played[s].Load()
}

// Close silences all cues and releases the speaker device
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
