package snake

import (
	"golang.org/x/exp/slices"

	"github.com/lixenwraith/launchgrid/pad"
)

// Pad grid regions that steer the snake, in pad coordinates
var gridRegions = [directionCount][]pad.Point{
	Up: {
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}, {X: 6, Y: 1},
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2},
		{X: 3, Y: 3}, {X: 4, Y: 3},
	},
	Down: {
		{X: 3, Y: 6}, {X: 4, Y: 6},
		{X: 2, Y: 7}, {X: 3, Y: 7}, {X: 4, Y: 7}, {X: 5, Y: 7},
		{X: 1, Y: 8}, {X: 2, Y: 8}, {X: 3, Y: 8}, {X: 4, Y: 8}, {X: 5, Y: 8}, {X: 6, Y: 8},
	},
	Left: {
		{X: 0, Y: 2},
		{X: 0, Y: 3}, {X: 1, Y: 3},
		{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4},
		{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5},
		{X: 0, Y: 6}, {X: 1, Y: 6},
		{X: 0, Y: 7},
	},
	Right: {
		{X: 7, Y: 2},
		{X: 6, Y: 3}, {X: 7, Y: 3},
		{X: 5, Y: 4}, {X: 6, Y: 4}, {X: 7, Y: 4},
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5},
		{X: 6, Y: 6}, {X: 7, Y: 6},
		{X: 7, Y: 7},
	},
}

// Top-row arrow buttons
var arrowButtons = [directionCount]pad.Point{
	Up:    {X: 0, Y: 0},
	Down:  {X: 1, Y: 0},
	Left:  {X: 2, Y: 0},
	Right: {X: 3, Y: 0},
}

// Side buttons
var (
	RestartButton = pad.Point{X: 8, Y: 7}
	QuitButton    = pad.Point{X: 8, Y: 8}
)

// Colors
var (
	ColorArrow     = pad.Red
	ColorGrid      = pad.Yellow
	ColorQuit      = pad.Red
	ColorRestart   = pad.Green
	ColorFood      = pad.Green
	ColorDeadSnake = pad.RGB(3, 1)

	// snakeGradient shades the body from head to tail
	snakeGradient = [...]pad.Color{pad.RGB(3, 0), pad.RGB(2, 0), pad.RGB(1, 0)}
)

// GridRegion returns the pad cells that steer toward d
func GridRegion(d Direction) []pad.Point {
	if d < 0 || d >= directionCount {
		return nil
	}
	return gridRegions[d]
}

// ArrowButton returns the round button for d
func ArrowButton(d Direction) pad.Point {
	return arrowButtons[d]
}

// DirectionAt maps a pad button to the direction it steers, if any
func DirectionAt(x, y int) (Direction, bool) {
	p := pad.Point{X: x, Y: y}
	for _, d := range Directions {
		if arrowButtons[d] == p || slices.Contains(gridRegions[d], p) {
			return d, true
		}
	}
	return 0, false
}

// gradientColor returns the body shade of segment i in a body of n cells
func gradientColor(i, n int) pad.Color {
	if n <= 0 {
		return snakeGradient[0]
	}
	idx := i * len(snakeGradient) / n
	if idx >= len(snakeGradient) {
		idx = len(snakeGradient) - 1
	}
	return snakeGradient[idx]
}
