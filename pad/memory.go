package pad

import (
	"errors"

	"golang.org/x/exp/slices"
)

// ErrClosed is returned when flushing a pad that is not open
var ErrClosed = errors.New("pad is closed")

// MemoryPad is a Device backed by plain memory
// Used as the collaborator double in tests and for headless runs
type MemoryPad struct {
	lights  [Width][Height]Color
	buffer  *DrawBuffer
	events  []ButtonEvent
	open    bool
	flushes int
	resets  int
}

// NewMemoryPad creates an opened in-memory pad
func NewMemoryPad() *MemoryPad {
	return &MemoryPad{
		buffer: NewDrawBuffer(),
		open:   true,
	}
}

func (m *MemoryPad) Open() error {
	m.open = true
	return nil
}

func (m *MemoryPad) Close() error {
	m.open = false
	return nil
}

func (m *MemoryPad) SetLight(x, y int, c Color) {
	m.buffer.Set(x, y, c)
}

func (m *MemoryPad) Flush() error {
	if !m.open {
		return ErrClosed
	}
	for _, w := range m.buffer.Drain() {
		m.lights[w.X][w.Y] = w.Color
	}
	m.flushes++
	return nil
}

// Reset turns every light off and drops buffered writes and pending input
func (m *MemoryPad) Reset() {
	m.lights = [Width][Height]Color{}
	m.buffer.Clear()
	m.events = m.events[:0]
	m.resets++
}

func (m *MemoryPad) PollEvent() (ButtonEvent, bool) {
	if len(m.events) == 0 {
		return ButtonEvent{}, false
	}
	ev := m.events[0]
	m.events = m.events[1:]
	return ev, true
}

func (m *MemoryPad) ClearInput() {
	m.events = m.events[:0]
}

// Push queues input events behind any already pending
func (m *MemoryPad) Push(events ...ButtonEvent) {
	m.events = append(m.events, events...)
}

// Tap queues a press followed by a release of the button at x, y
func (m *MemoryPad) Tap(x, y int) {
	m.Push(ButtonEvent{X: x, Y: y, Pressed: true}, ButtonEvent{X: x, Y: y, Pressed: false})
}

// Light returns the flushed color at x, y
func (m *MemoryPad) Light(x, y int) Color {
	if !InBounds(x, y) {
		return Off
	}
	return m.lights[x][y]
}

// Lit returns every flushed cell that is not off, ordered by row then column
func (m *MemoryPad) Lit() []Point {
	var out []Point
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if !m.lights[x][y].IsOff() {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	slices.SortFunc(out, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Pending returns the number of buffered, unflushed cells
func (m *MemoryPad) Pending() int {
	return m.buffer.Len()
}

// PendingEvents returns the number of queued input events
func (m *MemoryPad) PendingEvents() int {
	return len(m.events)
}

// Flushes returns how many times Flush succeeded
func (m *MemoryPad) Flushes() int {
	return m.flushes
}

// Resets returns how many times Reset was called
func (m *MemoryPad) Resets() int {
	return m.resets
}
