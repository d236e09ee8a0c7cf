package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/launchgrid/constants"
)

// ErrBoardSaturated is returned when no empty cell is left for food
var ErrBoardSaturated = errors.New("board saturated: no empty cell for food")

// Tile is the occupant of one board cell
type Tile uint8

const (
	TileEmpty Tile = iota
	TileSnake
	TileFood
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileSnake:
		return "snake"
	case TileFood:
		return "food"
	}
	return fmt.Sprintf("Tile(%d)", t)
}

// Cell is a board coordinate
type Cell struct {
	X, Y int
}

// Light returns the pad coordinate of the cell
func (c Cell) Light() (x, y int) {
	return c.X, c.Y + constants.BoardRowOffset
}

// CellAt converts a pad grid coordinate back to a board cell
func CellAt(x, y int) Cell {
	return Cell{X: x, Y: y - constants.BoardRowOffset}
}

// Board is a toroidal occupancy grid
type Board struct {
	width  int
	height int
	tiles  []Tile
}

// NewBoard creates an empty board
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Size returns the cell count
func (b *Board) Size() int { return b.width * b.height }

// Contains reports whether c lies on the board without wrapping
func (b *Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// At returns the tile at c; cells off the board read as empty
func (b *Board) At(c Cell) Tile {
	if !b.Contains(c) {
		return TileEmpty
	}
	return b.tiles[c.Y*b.width+c.X]
}

// Set writes the tile at c; cells off the board are ignored
func (b *Board) Set(c Cell, t Tile) {
	if !b.Contains(c) {
		return
	}
	b.tiles[c.Y*b.width+c.X] = t
}

// Wrap folds c onto the board modulo its dimensions
func (b *Board) Wrap(c Cell) Cell {
	return Cell{
		X: ((c.X % b.width) + b.width) % b.width,
		Y: ((c.Y % b.height) + b.height) % b.height,
	}
}

// Step returns the wrapped neighbor of c in direction d
func (b *Board) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return b.Wrap(Cell{X: c.X + dx, Y: c.Y + dy})
}

// Count returns the number of cells holding t
func (b *Board) Count(t Tile) int {
	n := 0
	for _, v := range b.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Clear empties every cell
func (b *Board) Clear() {
	clear(b.tiles)
}

// RandomEmpty picks an empty cell uniformly
//
// Rejection sampling runs for a bounded number of attempts, then falls back to
// choosing among an exhaustive scan of empty cells.
func (b *Board) RandomEmpty(rng *rand.Rand) (Cell, error) {
	for i := 0; i < constants.FoodPlacementAttempts; i++ {
		c := Cell{X: rng.Intn(b.width), Y: rng.Intn(b.height)}
		if b.At(c) == TileEmpty {
			return c, nil
		}
	}

	var empty []Cell
	for i, t := range b.tiles {
		if t == TileEmpty {
			empty = append(empty, Cell{X: i % b.width, Y: i / b.width})
		}
	}
	if len(empty) == 0 {
		return Cell{}, ErrBoardSaturated
	}
	return empty[rng.Intn(len(empty))], nil
}
