package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/launchgrid/audio"
	"github.com/lixenwraith/launchgrid/pad"
	"github.com/lixenwraith/launchgrid/status"
)

// AudioPlayer plays short gameplay cues
type AudioPlayer interface {
	Play(audio.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// GameContext is the state one running game owns: its pad, timers, and services
// Nothing here is process-wide; two contexts never share timers or lights
type GameContext struct {
	Pad       pad.Device
	Timers    *Timers
	Sequencer *Sequencer
	Status    *status.Registry

	// Audio is optional; nil plays nothing
	Audio AudioPlayer

	TimeProvider TimeProvider

	playing   atomic.Bool
	startTime time.Time
}

// NewGameContext creates a context drawing to device
func NewGameContext(device pad.Device) *GameContext {
	timers := NewTimers()
	return &GameContext{
		Pad:          device,
		Timers:       timers,
		Sequencer:    NewSequencer(timers),
		Status:       status.NewRegistry(),
		TimeProvider: NewMonotonicTimeProvider(),
	}
}

// Play marks the game as running; Loop.Run calls it before Setup
func (ctx *GameContext) Play() {
	ctx.playing.Store(true)
}

// Quit asks the loop to stop after the current tick
// Safe to call from any goroutine
func (ctx *GameContext) Quit() {
	ctx.playing.Store(false)
}

// Playing reports whether the loop should keep running
func (ctx *GameContext) Playing() bool {
	return ctx.playing.Load()
}

// Elapsed returns the time since the loop started the game
func (ctx *GameContext) Elapsed() time.Duration {
	if ctx.startTime.IsZero() {
		return 0
	}
	return ctx.TimeProvider.Now().Sub(ctx.startTime)
}

// PlaySound plays a cue if audio is attached
func (ctx *GameContext) PlaySound(sound audio.SoundType) {
	if ctx.Audio != nil {
		ctx.Audio.Play(sound)
	}
}

// After schedules a one-shot action; periods are constants so an invalid one panics
func (ctx *GameContext) After(d time.Duration, action func()) TimerKey {
	return ctx.Timers.MustSchedule(d, false, action)
}

// Every schedules a repeating action; periods are constants so an invalid one panics
func (ctx *GameContext) Every(d time.Duration, action func()) TimerKey {
	return ctx.Timers.MustSchedule(d, true, action)
}

// Animate plays anim on the context's timers
func (ctx *GameContext) Animate(anim *Animation, repeat bool) []TimerKey {
	return ctx.Sequencer.MustPlay(anim, repeat)
}
