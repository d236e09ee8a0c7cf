package engine

import (
	"fmt"
	"time"
)

// Keyframe is one step of an animation
// Delay is measured from the previous keyframe; Action may be nil for a pure wait
type Keyframe struct {
	Delay  time.Duration
	Action func()
}

// Animation is an ordered list of keyframes built up before playing
type Animation struct {
	frames []Keyframe
}

// NewAnimation creates an empty animation
func NewAnimation() *Animation {
	return &Animation{}
}

// Then appends a keyframe running action delay after the previous keyframe
func (a *Animation) Then(delay time.Duration, action func()) *Animation {
	a.frames = append(a.frames, Keyframe{Delay: delay, Action: action})
	return a
}

// Wait appends a keyframe that only delays
func (a *Animation) Wait(delay time.Duration) *Animation {
	return a.Then(delay, nil)
}

// Frames returns the keyframes in order
func (a *Animation) Frames() []Keyframe {
	return a.frames
}

// Len returns the number of keyframes
func (a *Animation) Len() int {
	return len(a.frames)
}

// Total returns the sum of all keyframe delays
func (a *Animation) Total() time.Duration {
	var total time.Duration
	for _, f := range a.frames {
		total += f.Delay
	}
	return total
}

// Sequencer turns animations into groups of timers on a registry
type Sequencer struct {
	timers *Timers
}

// NewSequencer creates a sequencer scheduling on timers
func NewSequencer(timers *Timers) *Sequencer {
	return &Sequencer{timers: timers}
}

// Play schedules anim and returns one key per keyframe, in keyframe order
//
// Every keyframe becomes a timer whose period is the animation's total duration and whose
// elapsed time starts at total minus the keyframe's cumulative delay. All timers of the group
// share one period, so a repeating animation loops with its spacing intact.
// Cancelling only part of the returned keys desynchronizes the rest.
func (s *Sequencer) Play(anim *Animation, repeat bool) ([]TimerKey, error) {
	return s.PlayFrames(repeat, anim.Frames()...)
}

// PlayFrames is Play for a literal keyframe list
func (s *Sequencer) PlayFrames(repeat bool, frames ...Keyframe) ([]TimerKey, error) {
	var total time.Duration
	for i, f := range frames {
		if f.Delay < 0 {
			return nil, fmt.Errorf("keyframe %d delay %v: %w", i, f.Delay, ErrInvalidDuration)
		}
		total += f.Delay
	}
	if total <= 0 {
		return nil, fmt.Errorf("animation of %d keyframes has total %v: %w", len(frames), total, ErrInvalidDuration)
	}

	keys := make([]TimerKey, 0, len(frames))
	var cumulative time.Duration
	for _, f := range frames {
		cumulative += f.Delay
		key, err := s.timers.scheduleElapsed(total, total-cumulative, repeat, f.Action)
		if err != nil {
			s.timers.CancelKeys(keys...)
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// MustPlay is Play for animations built from constant delays; it panics on error
func (s *Sequencer) MustPlay(anim *Animation, repeat bool) []TimerKey {
	keys, err := s.Play(anim, repeat)
	if err != nil {
		panic(err)
	}
	return keys
}
