package terminal

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/launchgrid/pad"
	"github.com/lixenwraith/launchgrid/status"
)

// ErrNotOpen is returned when flushing a pad that was never opened or is closed
var ErrNotOpen = errors.New("terminal pad not open")

const eventBufferSize = 256

// Pad is a pad.Device drawn on a tcell screen
type Pad struct {
	screen tcell.Screen
	cfg    Config
	status *status.Registry

	buffer *pad.DrawBuffer
	lights [pad.Width][pad.Height]pad.Color

	eventCh chan pad.ButtonEvent
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool

	// Input goroutine state
	held     pad.Point
	holding  bool
	hotkeys  map[rune]func()
	hotkeyMu sync.RWMutex

	resized atomic.Bool
	dropped atomic.Int64
}

// New creates a pad on screen; reg may be nil to skip the status line
func New(screen tcell.Screen, cfg Config, reg *status.Registry) *Pad {
	if cfg.CellWidth < 1 {
		cfg.CellWidth = 1
	}
	if cfg.CellHeight < 1 {
		cfg.CellHeight = 1
	}
	return &Pad{
		screen:  screen,
		cfg:     cfg,
		status:  reg,
		buffer:  pad.NewDrawBuffer(),
		eventCh: make(chan pad.ButtonEvent, eventBufferSize),
		hotkeys: make(map[rune]func()),
	}
}

// NewScreenPad creates a pad on the real terminal
func NewScreenPad(cfg Config, reg *status.Registry) (*Pad, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return New(screen, cfg, reg), nil
}

// Bind runs fn when key r is typed
// fn runs on the input goroutine and must be safe for concurrent use
func (p *Pad) Bind(r rune, fn func()) {
	p.hotkeyMu.Lock()
	p.hotkeys[r] = fn
	p.hotkeyMu.Unlock()
}

// Open initializes the screen and starts reading input
func (p *Pad) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}

	if err := p.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	p.screen.EnableMouse()
	p.screen.HideCursor()
	p.screen.Clear()

	p.stopCh = make(chan struct{})
	p.doneCh = make(chan struct{})
	p.running = true

	p.drawAll()
	p.screen.Show()

	go p.pollLoop()
	return nil
}

// Close stops the input goroutine and restores the terminal; safe to call twice
func (p *Pad) Close() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.mu.Unlock()

	close(p.stopCh)
	// Fini unblocks PollEvent
	p.screen.Fini()
	<-p.doneCh
	return nil
}

// pollLoop translates screen events into button events until stopped
func (p *Pad) pollLoop() {
	defer close(p.doneCh)

	defer func() {
		if r := recover(); r != nil {
			p.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPAD INPUT CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}

		for _, be := range p.translate(ev) {
			select {
			case p.eventCh <- be:
			case <-p.stopCh:
				return
			default:
				p.dropped.Add(1)
			}
		}
	}
}

// SetLight buffers a light change until Flush
func (p *Pad) SetLight(x, y int, c pad.Color) {
	p.buffer.Set(x, y, c)
}

// Flush draws buffered light changes and the status line
func (p *Pad) Flush() error {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if !running {
		return ErrNotOpen
	}

	writes := p.buffer.Drain()
	for _, w := range writes {
		p.lights[w.X][w.Y] = w.Color
	}

	if p.resized.Swap(false) {
		p.screen.Clear()
		p.drawAll()
		p.screen.Sync()
	} else {
		for _, w := range writes {
			p.drawButton(w.X, w.Y)
		}
	}

	if p.cfg.ShowStatus && p.status != nil {
		p.drawStatus()
	}

	p.screen.Show()
	return nil
}

// Reset turns every light off at once and drops buffered writes and pending input
func (p *Pad) Reset() {
	p.lights = [pad.Width][pad.Height]pad.Color{}
	p.buffer.Clear()
	p.ClearInput()

	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if running {
		p.drawAll()
		p.screen.Show()
	}
}

// PollEvent returns the oldest pending button event without blocking
func (p *Pad) PollEvent() (pad.ButtonEvent, bool) {
	select {
	case ev := <-p.eventCh:
		return ev, true
	default:
		return pad.ButtonEvent{}, false
	}
}

// ClearInput drops every pending button event
func (p *Pad) ClearInput() {
	for {
		select {
		case <-p.eventCh:
		default:
			return
		}
	}
}

// Light returns the flushed color of a button
func (p *Pad) Light(x, y int) pad.Color {
	if !pad.InBounds(x, y) {
		return pad.Off
	}
	return p.lights[x][y]
}

// Dropped returns how many input events were lost to a full queue
func (p *Pad) Dropped() int64 {
	return p.dropped.Load()
}
