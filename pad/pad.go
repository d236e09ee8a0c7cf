// Package pad defines the light/button surface consumed by the game engine
// and provides an in-memory implementation of it.
package pad

// Grid geometry in XY mode
// Row 0 holds the round top buttons (x 0..7), column 8 the round side buttons (y 1..8)
const (
	Width  = 9
	Height = 9

	// MaxIntensity is the brightest level of each LED color
	MaxIntensity = 3
)

// Color is a bi-color LED value, each channel 0..MaxIntensity
type Color struct {
	Red   uint8
	Green uint8
}

// Common colors
var (
	Off    = Color{}
	Red    = Color{Red: MaxIntensity}
	Green  = Color{Green: MaxIntensity}
	Yellow = Color{Red: MaxIntensity, Green: MaxIntensity}
)

// RGB returns a color with channels clamped to 0..MaxIntensity
func RGB(red, green int) Color {
	return Color{Red: clampIntensity(red), Green: clampIntensity(green)}
}

// Code returns the device color byte: red in bits 0-1, green in bits 4-5
func (c Color) Code() byte {
	return clampIntensity(int(c.Red)) | clampIntensity(int(c.Green))<<4
}

// IsOff reports whether both channels are dark
func (c Color) IsOff() bool {
	return c.Red == 0 && c.Green == 0
}

func clampIntensity(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return uint8(v)
}

// ButtonEvent is a single press or release of the button at X, Y
type ButtonEvent struct {
	X, Y    int
	Pressed bool
}

// Is reports whether the event targets the button at x, y
func (e ButtonEvent) Is(x, y int) bool {
	return e.X == x && e.Y == y
}

// Surface accepts buffered light writes
// Writes are not guaranteed visible until Flush
type Surface interface {
	SetLight(x, y int, c Color)
	Flush() error
	Reset()
}

// Input yields button events without blocking
// At most one event per call, oldest first
type Input interface {
	PollEvent() (ButtonEvent, bool)
}

// Device is a complete light grid with button input
type Device interface {
	Surface
	Input
	Open() error
	Close() error
	ClearInput()
}

// InBounds reports whether x, y addresses a button that exists on the grid
// The top-right corner (8, 0) has no button
func InBounds(x, y int) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return false
	}
	return !(x == Width-1 && y == 0)
}

// IsRound reports whether x, y is one of the round control buttons
func IsRound(x, y int) bool {
	return InBounds(x, y) && (y == 0 || x == Width-1)
}
