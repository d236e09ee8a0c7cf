package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies cues are dropped without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for s := SoundType(0); s < soundTypeCount; s++ {
		if sm.Play(s) {
			t.Errorf("Play(%v) queued without initialization", s)
		}
	}
	if sm.PlayCount(SoundEat) != 0 {
		t.Errorf("PlayCount = %d, want 0", sm.PlayCount(SoundEat))
	}
	sm.Cleanup()
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("Initialize() = %v, want ErrAudioDisabled", err)
	}
	if sm.IsRunning() {
		t.Error("disabled manager reports running")
	}
}

// TestSoundManagerInitialization tolerates hosts without an audio device
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize() = %v, want nil", err)
	}
	if !sm.Play(SoundTurn) {
		t.Error("Play(SoundTurn) not queued on running manager")
	}
	if sm.PlayCount(SoundTurn) != 1 {
		t.Errorf("PlayCount = %d, want 1", sm.PlayCount(SoundTurn))
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsMuted() {
		t.Fatal("new manager starts muted")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Fatal("ToggleMute did not mute")
	}
	if sm.Play(SoundEat) {
		t.Error("muted manager queued a cue")
	}
	if sm.ToggleMute() {
		t.Error("second ToggleMute should unmute")
	}
	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Error("SetMuted(true) ignored")
	}
}

func TestSoundManagerInvalidType(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.Play(soundTypeCount) || sm.Play(-1) {
		t.Error("out-of-range sound type queued")
	}
	if sm.PlayCount(-1) != 0 {
		t.Error("PlayCount of invalid type should be 0")
	}
}
