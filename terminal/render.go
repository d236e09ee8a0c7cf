package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/launchgrid/pad"
)

const (
	glyphLit    = '█'
	glyphGrid   = '·'
	glyphRound  = '○'
	glyphBorder = ' '
)

var (
	styleOff    = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// colorOf maps pad intensities onto a red/green terminal color
func colorOf(c pad.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red)*85, int32(c.Green)*85, 0)
}

// drawAll redraws every button from the flushed light state
func (p *Pad) drawAll() {
	for x := 0; x < pad.Width; x++ {
		for y := 0; y < pad.Height; y++ {
			if pad.InBounds(x, y) {
				p.drawButton(x, y)
			}
		}
	}
}

// drawButton fills one button's block; the last column stays blank as a gutter
func (p *Pad) drawButton(x, y int) {
	c := p.lights[x][y]

	glyph, style := glyphLit, tcell.StyleDefault.Foreground(colorOf(c))
	if c.IsOff() {
		glyph, style = glyphGrid, styleOff
		if pad.IsRound(x, y) {
			glyph = glyphRound
		}
	}

	ox, oy := x*p.cfg.CellWidth, y*p.cfg.CellHeight
	for dy := 0; dy < p.cfg.CellHeight; dy++ {
		for dx := 0; dx < p.cfg.CellWidth; dx++ {
			r := glyph
			if dx == p.cfg.CellWidth-1 && p.cfg.CellWidth > 1 {
				r = glyphBorder
			}
			p.screen.SetContent(ox+dx, oy+dy, r, nil, style)
		}
	}
}

// drawStatus writes the metrics snapshot on the line below the pad
func (p *Pad) drawStatus() {
	width, height := p.screen.Size()
	row := pad.Height*p.cfg.CellHeight + 1
	if row >= height {
		return
	}

	var sb strings.Builder
	for i, m := range p.status.Snapshot() {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(m.Key)
		sb.WriteByte('=')
		sb.WriteString(m.Value)
	}

	line := []rune(sb.String())
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		p.screen.SetContent(x, row, r, nil, styleStatus)
	}
}
