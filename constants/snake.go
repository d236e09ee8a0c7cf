package constants

import "time"

// Board geometry
// The snake board occupies the 8x8 grid; board row y is drawn on pad row y+1
const (
	BoardWidth     = 8
	BoardHeight    = 8
	BoardRowOffset = 1
)

// Snake defaults
const (
	// SnakeSpeed is movement speed in cells per second
	SnakeSpeed = 3.2

	SnakeInitialLength = 5
	FoodValue          = 1

	// InitialSnakeX/Y is the entry point below the bottom edge; first move up lands on row 7
	InitialSnakeX = 1
	InitialSnakeY = BoardHeight

	InitialFoodX = 5
	InitialFoodY = 5
)

// Snake animation timing
const (
	// GridButtonFlash is how long a pressed direction region stays lit
	GridButtonFlash = 60 * time.Millisecond

	// StartupDelay precedes the tutorial animation after setup
	StartupDelay = 500 * time.Millisecond

	// TutorialFlash is the on-time of each direction during the input tutorial
	TutorialFlash = 1200 * time.Millisecond

	// TutorialStep is the movement period of the tutorial snake
	TutorialStep = 110 * time.Millisecond

	// DeathFlash is the per-cell interval of the death animation
	DeathFlash = 75 * time.Millisecond

	// ScoreFill is the per-cell interval of the score fill animation
	ScoreFill = 40 * time.Millisecond
)

// Tutorial choreography
const (
	TutorialStepsBeforeTurn = 7
	TutorialStepsAfterTurn  = 2

	// DeathHold multiplies DeathFlash for the pause before the score display
	DeathHold = 5

	// ScoreLead multiplies ScoreFill for the blank lead-in of each score loop
	ScoreLead = 8
)

// FoodPlacementAttempts bounds rejection sampling before falling back to a full scan
const FoodPlacementAttempts = 4 * BoardWidth * BoardHeight
