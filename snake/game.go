// Package snake is the Snake game: a toroidal board model and the state machine that plays it on a pad.
package snake

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/launchgrid/audio"
	"github.com/lixenwraith/launchgrid/constants"
	"github.com/lixenwraith/launchgrid/engine"
	"github.com/lixenwraith/launchgrid/pad"
	"github.com/lixenwraith/launchgrid/status"
)

// Game plays Snake on a GameContext
//
// Controls: tap a grid region on the side of the board the snake should turn toward,
// or one of the four top-left arrow buttons. The red side button quits; after death
// the green one above it restarts.
type Game struct {
	ctx   *engine.GameContext
	cfg   Config
	model *Model
	state State

	moveTimer    engine.TimerKey
	tutorialKeys []engine.TimerKey
	deathKeys    []engine.TimerKey
	scoreKeys    []engine.TimerKey

	// Cached metric pointers
	statLength   *atomic.Int64
	statFoods    *atomic.Int64
	statRestarts *atomic.Int64
	statState    *status.AtomicString
}

// NewGame creates a game drawing to ctx
func NewGame(ctx *engine.GameContext, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		ctx:          ctx,
		cfg:          cfg,
		model:        NewModel(constants.BoardWidth, constants.BoardHeight, cfg.FoodValue, rand.New(rand.NewSource(seed))),
		statLength:   ctx.Status.Ints.Get("snake.length"),
		statFoods:    ctx.Status.Ints.Get("snake.foods"),
		statRestarts: ctx.Status.Ints.Get("snake.restarts"),
		statState:    ctx.Status.Strings.Get("snake.state"),
	}, nil
}

// State returns the active state
func (g *Game) State() State {
	return g.state
}

// Model returns the board model
func (g *Game) Model() *Model {
	return g.model
}

// Setup starts a new game with the full tutorial
func (g *Game) Setup() {
	g.reset(false)
}

// reset clears the pad and timers and starts over; a restart skips the input tutorial
func (g *Game) reset(restart bool) {
	g.ctx.Timers.CancelAll()
	g.ctx.Pad.Reset()

	g.model.Spawn(
		Cell{X: constants.InitialSnakeX, Y: constants.InitialSnakeY},
		Up,
		g.cfg.InitialLength,
		Cell{X: constants.InitialFoodX, Y: constants.InitialFoodY},
	)
	g.moveTimer = engine.NoTimer
	g.tutorialKeys, g.deathKeys, g.scoreKeys = nil, nil, nil

	g.changeState(StateTutorial)
	g.ctx.After(constants.StartupDelay, func() {
		g.playTutorial(!restart)
	})
}

func (g *Game) HandleInput(ev pad.ButtonEvent) {
	switch g.state {
	case StateStarting, StateSnaking:
		if ev.Pressed {
			if d, ok := DirectionAt(ev.X, ev.Y); ok {
				g.steer(d)
			}
			return
		}
		if ev.Is(QuitButton.X, QuitButton.Y) {
			g.ctx.Quit()
		}

	case StateShowScore:
		if ev.Pressed {
			return
		}
		switch {
		case ev.Is(QuitButton.X, QuitButton.Y):
			g.ctx.Quit()
		case ev.Is(RestartButton.X, RestartButton.Y):
			g.statRestarts.Add(1)
			g.reset(true)
		}
	}
}

// steer buffers a turn and flashes the direction's buttons
func (g *Game) steer(d Direction) {
	if g.model.Snake.Turn(d) {
		g.ctx.PlaySound(audio.SoundTurn)
	}

	g.drawRegion(d, true)
	g.drawArrow(d, true)
	g.ctx.After(constants.GridButtonFlash, func() {
		g.drawRegion(d, false)
		g.drawArrow(d, false)
	})

	if g.state == StateStarting && !d.IsOpposite(g.model.Snake.Heading()) {
		g.changeState(StateSnaking)
	}
}

func (g *Game) Update(dt time.Duration) {}

// FixedUpdate publishes game metrics
func (g *Game) FixedUpdate() {
	g.statLength.Store(int64(g.model.Snake.Len()))
	g.statFoods.Store(int64(g.model.Eaten()))
	g.statState.Store(g.state.String())
}

// Cleanup leaves the pad dark with no pending input
func (g *Game) Cleanup() {
	g.ctx.Pad.ClearInput()
	g.ctx.Timers.CancelAll()
	g.ctx.Pad.Reset()
}

// step moves the snake once and draws the result
func (g *Game) step() {
	res, err := g.model.Step()

	switch res.Outcome {
	case Collided:
		g.changeState(StateDying)
		return
	case Ate:
		g.setCell(res.OldFood, pad.Off)
		if food, ok := g.model.Food(); ok {
			g.setCell(food, ColorFood)
		}
		g.ctx.PlaySound(audio.SoundEat)
	}

	if res.TailCleared {
		g.setCell(res.Tail, pad.Off)
	}
	g.drawSnake()

	if err != nil {
		log.Printf("Snake: %v", err)
		g.changeState(StateShowScore)
	}
}

// String identifies the game in logs
func (g *Game) String() string {
	return fmt.Sprintf("snake[%v len=%d]", g.state, g.model.Snake.Len())
}
