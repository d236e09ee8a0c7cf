package snake

import (
	"github.com/lixenwraith/launchgrid/audio"
	"github.com/lixenwraith/launchgrid/constants"
	"github.com/lixenwraith/launchgrid/engine"
	"github.com/lixenwraith/launchgrid/pad"
)

// playTutorial shows the controls, slithers the snake in, reveals the food, then enters Starting
func (g *Game) playTutorial(inputTutorial bool) {
	anim := engine.NewAnimation()

	if inputTutorial {
		for _, d := range Directions {
			anim.Then(0, func() { g.drawRegion(d, true) }).
				Then(0, func() { g.drawArrow(d, true) }).
				Then(constants.TutorialFlash, func() { g.drawRegion(d, false) }).
				Then(0, func() { g.drawArrow(d, false) })
		}

		anim.Wait(constants.TutorialFlash / 2)
		for _, d := range Directions {
			anim.Then(0, func() { g.drawRegion(d, true) }).
				Then(0, func() { g.drawArrow(d, true) })
		}

		anim.Wait(constants.TutorialFlash * 4 / 10)
		for _, d := range Directions {
			anim.Then(0, func() { g.drawRegion(d, false) }).
				Then(0, func() { g.drawArrow(d, false) })
		}
	}

	for i := 0; i < constants.TutorialStepsBeforeTurn; i++ {
		anim.Then(constants.TutorialStep, g.step)
	}
	anim.Then(0, g.drawFood).
		Then(0, func() { g.model.Snake.Turn(Right) })
	for i := 0; i < constants.TutorialStepsAfterTurn; i++ {
		anim.Then(constants.TutorialStep, g.step)
	}
	anim.Then(g.cfg.MovePeriod(), func() { g.changeState(StateStarting) })

	g.tutorialKeys = g.ctx.Animate(anim, false)
}

// playDeath flashes every body cell in turn, then shows the score
func (g *Game) playDeath() {
	anim := engine.NewAnimation().Wait(constants.DeathFlash)
	for _, c := range g.model.Snake.Body() {
		anim.Then(0, func() { g.setCell(c, pad.Off) }).
			Then(constants.DeathFlash, func() { g.setCell(c, ColorDeadSnake) })
	}
	anim.Then(constants.DeathHold*constants.DeathFlash, func() { g.changeState(StateShowScore) })

	g.deathKeys = g.ctx.Animate(anim, false)
}

// showScore clears the pad and loops a fill of one cell per unit of final length
func (g *Game) showScore() {
	g.ctx.Pad.Reset()
	g.ctx.Timers.CancelAll()
	g.moveTimer = engine.NoTimer

	g.setLight(RestartButton, ColorRestart)
	g.setLight(QuitButton, ColorQuit)
	g.ctx.PlaySound(audio.SoundScore)

	width := g.model.Board.Width()
	anim := engine.NewAnimation().Wait(constants.ScoreLead * constants.ScoreFill)
	for i := 0; i < g.model.Score(); i++ {
		p := pad.Point{X: i % width, Y: i/width + constants.BoardRowOffset}
		anim.Then(0, func() { g.setLight(p, ColorFood) }).
			Then(constants.ScoreFill, func() { g.setLight(p, snakeGradient[0]) })
	}

	g.scoreKeys = g.ctx.Animate(anim, true)
}
