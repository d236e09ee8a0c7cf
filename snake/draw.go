package snake

import "github.com/lixenwraith/launchgrid/pad"

func (g *Game) setLight(p pad.Point, c pad.Color) {
	g.ctx.Pad.SetLight(p.X, p.Y, c)
}

func (g *Game) setCell(c Cell, col pad.Color) {
	x, y := c.Light()
	g.ctx.Pad.SetLight(x, y, col)
}

// drawSnake paints the body with the head-to-tail gradient
func (g *Game) drawSnake() {
	body := g.model.Snake.Body()
	for i, c := range body {
		g.setCell(c, gradientColor(i, len(body)))
	}
}

// drawFood paints the food cell if food is on the board
func (g *Game) drawFood() {
	if food, ok := g.model.Food(); ok {
		g.setCell(food, ColorFood)
	}
}

// drawRegion lights d's grid region, or repaints the board underneath it
func (g *Game) drawRegion(d Direction, on bool) {
	region := GridRegion(d)
	if on {
		for _, p := range region {
			g.setLight(p, ColorGrid)
		}
		return
	}

	g.drawSnake()
	for _, p := range region {
		switch g.model.Board.At(CellAt(p.X, p.Y)) {
		case TileFood:
			g.setLight(p, ColorFood)
		case TileEmpty:
			g.setLight(p, pad.Off)
		}
	}
}

func (g *Game) drawArrow(d Direction, on bool) {
	if on {
		g.setLight(ArrowButton(d), ColorArrow)
	} else {
		g.setLight(ArrowButton(d), pad.Off)
	}
}
