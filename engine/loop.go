package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/launchgrid/constants"
	"github.com/lixenwraith/launchgrid/pad"
	"github.com/lixenwraith/launchgrid/status"
)

// Game is driven by the Loop
// All methods run on the loop goroutine
type Game interface {
	// Setup runs once before the first tick
	Setup()
	// HandleInput receives at most one button event per tick
	HandleInput(ev pad.ButtonEvent)
	// Update runs every tick with the measured tick duration
	Update(dt time.Duration)
	// FixedUpdate runs at most once per tick, at the loop's fixed rate
	FixedUpdate()
	// Cleanup runs once after the loop stops
	Cleanup()
}

// LoopConfig tunes loop cadence
type LoopConfig struct {
	// FixedPeriod is the target FixedUpdate interval
	FixedPeriod   time.Duration `yaml:"fixed_period"`
	// FrameInterval is the minimum wall time per tick; zero runs ticks back to back
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// DefaultLoopConfig returns a 30Hz fixed update with 1ms pacing
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FixedPeriod:   constants.FixedUpdateInterval,
		FrameInterval: constants.FrameInterval,
	}
}

// Loop is the cooperative single-goroutine game loop
type Loop struct {
	ctx *GameContext
	cfg LoopConfig

	fixedAccumulator time.Duration
	prevTick         time.Time

	// Cached metric pointers
	statTicks        *atomic.Int64
	statFixedUpdates *atomic.Int64
	statTimersActive *atomic.Int64
	statTimersFired  *atomic.Int64
	statFPS          *status.AtomicFloat
}

// NewLoop creates a loop over ctx
func NewLoop(ctx *GameContext, cfg LoopConfig) (*Loop, error) {
	if cfg.FixedPeriod <= 0 {
		return nil, fmt.Errorf("fixed update period %v: %w", cfg.FixedPeriod, ErrInvalidDuration)
	}
	if cfg.FrameInterval < 0 {
		return nil, fmt.Errorf("frame interval %v: %w", cfg.FrameInterval, ErrInvalidDuration)
	}

	return &Loop{
		ctx:              ctx,
		cfg:              cfg,
		statTicks:        ctx.Status.Ints.Get("loop.ticks"),
		statFixedUpdates: ctx.Status.Ints.Get("loop.fixed"),
		statTimersActive: ctx.Status.Ints.Get("timers.active"),
		statTimersFired:  ctx.Status.Ints.Get("timers.fired"),
		statFPS:          ctx.Status.Floats.Get("loop.fps"),
	}, nil
}

// Run plays game until the context stops playing
// A flush failure ends the loop early and is returned after Cleanup
func (l *Loop) Run(game Game) error {
	l.ctx.Play()
	game.Setup()

	l.start()

	var runErr error
	for l.ctx.Playing() {
		tickStart := l.ctx.TimeProvider.Now()

		if err := l.Tick(game); err != nil {
			runErr = err
			log.Printf("Loop stopped: %v", err)
			break
		}

		l.pace(tickStart)
	}

	game.Cleanup()
	return runErr
}

// start resets loop timekeeping
func (l *Loop) start() {
	now := l.ctx.TimeProvider.Now()
	l.ctx.startTime = now
	l.prevTick = now
	l.fixedAccumulator = 0
}

// Tick runs one loop iteration: input, update, fixed update, timers, flush
//
// FixedUpdate runs at most once per tick even if the accumulator holds several periods,
// so a stalled frame slows the fixed rate instead of bursting to catch up.
func (l *Loop) Tick(game Game) error {
	if l.prevTick.IsZero() {
		l.start()
	}

	now := l.ctx.TimeProvider.Now()
	delta := now.Sub(l.prevTick)
	l.prevTick = now

	if ev, ok := l.ctx.Pad.PollEvent(); ok {
		game.HandleInput(ev)
	}

	game.Update(delta)

	l.fixedAccumulator += delta
	if l.fixedAccumulator >= l.cfg.FixedPeriod {
		l.fixedAccumulator -= l.cfg.FixedPeriod
		game.FixedUpdate()
		l.statFixedUpdates.Add(1)
	}

	l.ctx.Timers.Advance(delta)

	if err := l.ctx.Pad.Flush(); err != nil {
		return fmt.Errorf("flush pad: %w", err)
	}

	l.publish(delta)
	return nil
}

// publish writes per-tick metrics
func (l *Loop) publish(delta time.Duration) {
	l.statTicks.Add(1)
	l.statTimersActive.Store(int64(l.ctx.Timers.Len()))
	l.statTimersFired.Store(int64(l.ctx.Timers.Fired()))
	if delta > 0 {
		// Exponentially smoothed
		fps := float64(time.Second) / float64(delta)
		prev := l.statFPS.Get()
		if prev == 0 {
			l.statFPS.Set(fps)
		} else {
			l.statFPS.Set(prev*0.95 + fps*0.05)
		}
	}
}

// pace sleeps out the remainder of the frame interval
func (l *Loop) pace(tickStart time.Time) {
	if l.cfg.FrameInterval <= 0 {
		return
	}
	if rest := l.cfg.FrameInterval - l.ctx.TimeProvider.Now().Sub(tickStart); rest > 0 {
		time.Sleep(rest)
	}
}

// FixedAccumulator returns time banked toward the next FixedUpdate
func (l *Loop) FixedAccumulator() time.Duration {
	return l.fixedAccumulator
}
