package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/launchgrid/pad"
)

// Keyboard stand-ins for pad buttons
var (
	keyButtons = map[tcell.Key]pad.Point{
		tcell.KeyUp:     {X: 0, Y: 0},
		tcell.KeyDown:   {X: 1, Y: 0},
		tcell.KeyLeft:   {X: 2, Y: 0},
		tcell.KeyRight:  {X: 3, Y: 0},
		tcell.KeyEnter:  {X: 8, Y: 7},
		tcell.KeyEscape: {X: 8, Y: 8},
		tcell.KeyCtrlC:  {X: 8, Y: 8},
	}
	runeButtons = map[rune]pad.Point{
		'k': {X: 0, Y: 0},
		'j': {X: 1, Y: 0},
		'h': {X: 2, Y: 0},
		'l': {X: 3, Y: 0},
		'r': {X: 8, Y: 7},
		'q': {X: 8, Y: 8},
	}
)

// translate maps one screen event to zero or more button events
// Runs on the input goroutine
func (p *Pad) translate(ev tcell.Event) []pad.ButtonEvent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.translateKey(ev)

	case *tcell.EventMouse:
		return p.translateMouse(ev)

	case *tcell.EventResize:
		p.resized.Store(true)
	}
	return nil
}

// translateKey turns a key into a tap of its button; hotkeys take precedence over buttons
func (p *Pad) translateKey(ev *tcell.EventKey) []pad.ButtonEvent {
	var (
		btn pad.Point
		ok  bool
	)

	if ev.Key() == tcell.KeyRune {
		p.hotkeyMu.RLock()
		fn := p.hotkeys[ev.Rune()]
		p.hotkeyMu.RUnlock()
		if fn != nil {
			fn()
			return nil
		}
		btn, ok = runeButtons[ev.Rune()]
	} else {
		btn, ok = keyButtons[ev.Key()]
	}

	if !ok {
		return nil
	}
	return []pad.ButtonEvent{
		{X: btn.X, Y: btn.Y, Pressed: true},
		{X: btn.X, Y: btn.Y, Pressed: false},
	}
}

// translateMouse tracks the primary button: press on a pad button, release where it was pressed
func (p *Pad) translateMouse(ev *tcell.EventMouse) []pad.ButtonEvent {
	down := ev.Buttons()&tcell.Button1 != 0

	if !down {
		if !p.holding {
			return nil
		}
		p.holding = false
		return []pad.ButtonEvent{{X: p.held.X, Y: p.held.Y, Pressed: false}}
	}

	// Drags keep the first pressed button held
	if p.holding {
		return nil
	}

	sx, sy := ev.Position()
	x, y, ok := p.buttonAt(sx, sy)
	if !ok {
		return nil
	}
	p.held = pad.Point{X: x, Y: y}
	p.holding = true
	return []pad.ButtonEvent{{X: x, Y: y, Pressed: true}}
}

// buttonAt maps a screen position to the pad button drawn there
func (p *Pad) buttonAt(sx, sy int) (x, y int, ok bool) {
	if sx < 0 || sy < 0 {
		return 0, 0, false
	}
	x, y = sx/p.cfg.CellWidth, sy/p.cfg.CellHeight
	return x, y, pad.InBounds(x, y)
}
