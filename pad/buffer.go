package pad

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// LightWrite is one pending light change
type LightWrite struct {
	Point
	Color Color
}

// DrawBuffer collects light writes between flushes
// Repeated writes to a cell collapse into the last color while keeping the first write's position in order
type DrawBuffer struct {
	writes []LightWrite
	index  map[Point]int
}

// NewDrawBuffer creates an empty buffer
func NewDrawBuffer() *DrawBuffer {
	return &DrawBuffer{
		writes: make([]LightWrite, 0, Width*Height),
		index:  make(map[Point]int),
	}
}

// Set records a write, dropping coordinates outside the grid
func (b *DrawBuffer) Set(x, y int, c Color) {
	if !InBounds(x, y) {
		return
	}
	p := Point{X: x, Y: y}
	if i, ok := b.index[p]; ok {
		b.writes[i].Color = c
		return
	}
	b.index[p] = len(b.writes)
	b.writes = append(b.writes, LightWrite{Point: p, Color: c})
}

// Len returns the number of distinct pending cells
func (b *DrawBuffer) Len() int {
	return len(b.writes)
}

// Drain returns pending writes in order and empties the buffer
// The returned slice is only valid until the next Set
func (b *DrawBuffer) Drain() []LightWrite {
	out := b.writes
	b.writes = b.writes[:0]
	clear(b.index)
	return out
}

// Clear drops all pending writes
func (b *DrawBuffer) Clear() {
	b.writes = b.writes[:0]
	clear(b.index)
}
