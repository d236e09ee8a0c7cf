package snake

// Snake is the body, heading, and turn buffer of the player
// The body is head-first; the head location may sit off the board before the first move
type Snake struct {
	head    Cell
	body    []Cell
	heading Direction
	target  int

	pending    Direction
	hasPending bool
}

// NewSnake creates a bodiless snake at start that grows to length as it moves
func NewSnake(start Cell, heading Direction, length int) *Snake {
	return &Snake{
		head:    start,
		heading: heading,
		target:  length,
	}
}

// Head returns the current location of the head
func (s *Snake) Head() Cell { return s.head }

// Heading returns the active direction
func (s *Snake) Heading() Direction { return s.heading }

// Target returns the length the body grows to
func (s *Snake) Target() int { return s.target }

// Len returns the current body length
func (s *Snake) Len() int { return len(s.body) }

// Body returns a copy of the body cells, head first
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Pending returns the buffered turn, if any
func (s *Snake) Pending() (Direction, bool) {
	return s.pending, s.hasPending
}

// Turn buffers d for the next move and reports whether it was accepted
//
// d is rejected when it equals or reverses the buffered turn, or the heading if nothing is buffered.
// A replacement that would reverse the active heading is rejected as well.
// The buffer holds one turn; an accepted turn replaces the previous one.
func (s *Snake) Turn(d Direction) bool {
	if d < 0 || d >= directionCount {
		return false
	}

	ref := s.heading
	if s.hasPending {
		ref = s.pending
	}
	if d == ref || d.IsOpposite(ref) || d.IsOpposite(s.heading) {
		return false
	}

	s.pending = d
	s.hasPending = true
	return true
}

// applyTurn moves the buffered turn into the heading
func (s *Snake) applyTurn() {
	if s.hasPending {
		s.heading = s.pending
		s.hasPending = false
	}
}

// grow raises the target length
func (s *Snake) grow(n int) {
	s.target += n
}

// advance moves the head to c and returns the tail cell dropped to keep the body within target
func (s *Snake) advance(c Cell) (tail Cell, dropped bool) {
	s.head = c
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = c

	if len(s.body) > s.target {
		tail = s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		return tail, true
	}
	return Cell{}, false
}
