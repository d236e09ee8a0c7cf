package snake

// Direction is a snake heading
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	directionCount
)

// Directions lists every heading in tutorial order
var Directions = [directionCount]Direction{Up, Down, Left, Right}

var directionNames = [directionCount]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return "none"
	}
	return directionNames[d]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// IsOpposite reports whether d and other point in reverse directions
func (d Direction) IsOpposite(other Direction) bool {
	return d != other && d.Opposite() == other
}

// Delta returns the one-cell step of d; row numbers grow downward
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}
