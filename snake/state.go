package snake

import (
	"fmt"

	"github.com/lixenwraith/launchgrid/audio"
	"github.com/lixenwraith/launchgrid/engine"
)

// State is the phase of a game
type State int

const (
	StateTutorial State = iota
	StateStarting
	StateSnaking
	StateDying
	StateShowScore
	stateCount
)

var stateNames = [stateCount]string{
	StateTutorial:  "tutorial",
	StateStarting:  "starting",
	StateSnaking:   "snaking",
	StateDying:     "dying",
	StateShowScore: "show_score",
}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// changeState enters next, running its entry actions even when next is already active
// Returns whether the state actually changed
func (g *Game) changeState(next State) bool {
	changed := g.state != next
	g.state = next

	switch next {
	case StateTutorial:
		// Entered from reset, which schedules the tutorial itself

	case StateStarting:
		g.setLight(QuitButton, ColorQuit)

	case StateSnaking:
		g.ctx.Timers.Cancel(g.moveTimer)
		g.moveTimer = g.ctx.Every(g.cfg.MovePeriod(), g.step)

	case StateDying:
		g.ctx.Timers.Cancel(g.moveTimer)
		g.moveTimer = engine.NoTimer
		g.ctx.PlaySound(audio.SoundDeath)
		g.playDeath()

	case StateShowScore:
		g.showScore()

	default:
		panic(fmt.Sprintf("snake: unhandled state %v", next))
	}

	return changed
}
