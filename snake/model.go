package snake

import (
	"fmt"
	"math/rand"
)

// Outcome is the result of one movement step
type Outcome int

const (
	Moved Outcome = iota
	Ate
	Collided
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Collided:
		return "collided"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// StepResult reports what one movement step changed on the board
type StepResult struct {
	Outcome Outcome
	Head    Cell

	// Tail is the cell vacated by the tail when TailCleared is set
	Tail        Cell
	TailCleared bool

	// OldFood and NewFood are set when Outcome is Ate; NewFood is invalid if HasFood is false afterwards
	OldFood Cell
	NewFood Cell
}

// Model is the board plus the snake and food living on it
// Invariants while playing: board snake tiles equal the body, and exactly one tile is food
type Model struct {
	Board *Board
	Snake *Snake

	food      Cell
	hasFood   bool
	foodValue int
	eaten     int
	rng       *rand.Rand
}

// NewModel creates an empty model; call Spawn before stepping
func NewModel(width, height, foodValue int, rng *rand.Rand) *Model {
	return &Model{
		Board:     NewBoard(width, height),
		foodValue: foodValue,
		rng:       rng,
	}
}

// Spawn clears the board and places a fresh snake and the food
func (m *Model) Spawn(start Cell, heading Direction, length int, food Cell) {
	m.Board.Clear()
	m.Snake = NewSnake(start, heading, length)
	m.eaten = 0
	m.hasFood = false
	m.PlaceFood(food)
}

// PlaceFood moves the food to c, clearing the old food tile
func (m *Model) PlaceFood(c Cell) {
	if m.hasFood {
		m.Board.Set(m.food, TileEmpty)
	}
	m.food = m.Board.Wrap(c)
	m.hasFood = true
	m.Board.Set(m.food, TileFood)
}

// Food returns the food cell and whether food is on the board
func (m *Model) Food() (Cell, bool) {
	return m.food, m.hasFood
}

// Eaten returns how many foods were eaten since Spawn
func (m *Model) Eaten() int {
	return m.eaten
}

// Score returns the final length, capped at the board size
func (m *Model) Score() int {
	return min(m.Snake.Target(), m.Board.Size())
}

// Step applies the buffered turn and moves the snake one cell
//
// Running into the body reports Collided and changes nothing else.
// Eating grows the target length and relocates the food to an empty cell; if none is left
// the move still completes, the food is gone, and ErrBoardSaturated is returned.
func (m *Model) Step() (StepResult, error) {
	m.Snake.applyTurn()

	target := m.Board.Step(m.Snake.Head(), m.Snake.Heading())
	res := StepResult{Head: target}

	var err error
	switch m.Board.At(target) {
	case TileSnake:
		res.Outcome = Collided
		return res, nil

	case TileFood:
		res.Outcome = Ate
		res.OldFood = target
		m.Snake.grow(m.foodValue)
		m.eaten++
		err = m.relocateFood()
		res.NewFood = m.food
	}

	m.Board.Set(target, TileSnake)
	if tail, ok := m.Snake.advance(target); ok {
		m.Board.Set(tail, TileEmpty)
		res.Tail = tail
		res.TailCleared = true
	}

	return res, err
}

// relocateFood moves the food to a random empty cell
// The old food tile stays occupied while sampling so the food never lands where it was eaten
func (m *Model) relocateFood() error {
	c, err := m.Board.RandomEmpty(m.rng)
	if err != nil {
		m.Board.Set(m.food, TileEmpty)
		m.hasFood = false
		return fmt.Errorf("relocate food after %d eaten: %w", m.eaten, err)
	}
	m.PlaceFood(c)
	return nil
}
