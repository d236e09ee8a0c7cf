package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TimerKey identifies a scheduled timer for its whole lifetime
// Keys increase monotonically per registry and are never reused; zero means no timer
type TimerKey uint64

// NoTimer is the zero key, never returned by Schedule
const NoTimer TimerKey = 0

// timer is a deferred action counting up to its period
type timer struct {
	elapsed time.Duration
	period  time.Duration
	repeat  bool
	action  func()
	done    bool
}

// Timers is a keyed registry of deferred callbacks advanced by the game loop
// Not safe for concurrent use; callbacks run synchronously inside Advance and may schedule or cancel freely
type Timers struct {
	timers  map[TimerKey]*timer
	nextKey TimerKey
	fired   uint64
}

// NewTimers creates an empty registry
func NewTimers() *Timers {
	return &Timers{
		timers: make(map[TimerKey]*timer),
	}
}

// Schedule registers action to run once period has elapsed, and every period after if repeat is set
// A nil action is a pure delay
func (r *Timers) Schedule(period time.Duration, repeat bool, action func()) (TimerKey, error) {
	return r.scheduleElapsed(period, 0, repeat, action)
}

// MustSchedule is Schedule for constant periods; it panics on ErrInvalidDuration
func (r *Timers) MustSchedule(period time.Duration, repeat bool, action func()) TimerKey {
	key, err := r.Schedule(period, repeat, action)
	if err != nil {
		panic(err)
	}
	return key
}

// scheduleElapsed registers a timer that starts with elapsed time already accumulated
func (r *Timers) scheduleElapsed(period, elapsed time.Duration, repeat bool, action func()) (TimerKey, error) {
	if period <= 0 {
		return NoTimer, fmt.Errorf("schedule timer with period %v: %w", period, ErrInvalidDuration)
	}
	r.nextKey++
	r.timers[r.nextKey] = &timer{
		elapsed: elapsed,
		period:  period,
		repeat:  repeat,
		action:  action,
	}
	return r.nextKey, nil
}

// Cancel removes the timer under key, reporting whether it was registered
// Safe inside a firing callback, including the callback's own timer
func (r *Timers) Cancel(key TimerKey) bool {
	if _, ok := r.timers[key]; !ok {
		return false
	}
	delete(r.timers, key)
	return true
}

// CancelKeys cancels every key and returns how many were registered
func (r *Timers) CancelKeys(keys ...TimerKey) int {
	n := 0
	for _, key := range keys {
		if r.Cancel(key) {
			n++
		}
	}
	return n
}

// CancelAll removes every timer
func (r *Timers) CancelAll() {
	clear(r.timers)
}

// Active reports whether key is registered and not yet completed
func (r *Timers) Active(key TimerKey) bool {
	t, ok := r.timers[key]
	return ok && !t.done
}

// Len returns the number of registered timers
func (r *Timers) Len() int {
	return len(r.timers)
}

// Fired returns the number of actions run over the registry's lifetime
func (r *Timers) Fired() uint64 {
	return r.fired
}

// Advance adds delta to every timer registered when the call starts and runs the ones that are due
//
// The key set is snapshotted up front: timers scheduled by callbacks wait for the next call,
// and timers cancelled by callbacks are skipped even if they were due this call.
// A timer fires at most once per call; a repeating timer keeps any excess beyond its period
// so a long delta does not cause a burst of catch-up firings.
func (r *Timers) Advance(delta time.Duration) {
	if len(r.timers) == 0 {
		return
	}

	keys := maps.Keys(r.timers)
	slices.Sort(keys)

	for _, key := range keys {
		t, ok := r.timers[key]
		if !ok || t.done {
			continue
		}

		t.elapsed += delta
		if t.elapsed < t.period {
			continue
		}

		if t.repeat {
			t.elapsed -= t.period
		} else {
			t.done = true
		}

		r.fired++
		if t.action != nil {
			t.action()
		}
	}

	for key, t := range r.timers {
		if t.done {
			delete(r.timers, key)
		}
	}
}
