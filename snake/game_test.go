package snake

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lixenwraith/launchgrid/audio"
	"github.com/lixenwraith/launchgrid/engine"
	"github.com/lixenwraith/launchgrid/pad"
)

// recordingAudio stands in for the sound manager
type recordingAudio struct {
	played []audio.SoundType
	muted  bool
}

func (a *recordingAudio) Play(s audio.SoundType) bool {
	a.played = append(a.played, s)
	return true
}

func (a *recordingAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *recordingAudio) IsMuted() bool { return a.muted }

type testGame struct {
	*Game
	ctx   *engine.GameContext
	mem   *pad.MemoryPad
	sound *recordingAudio
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()
	mem := pad.NewMemoryPad()
	ctx := engine.NewGameContext(mem)
	sound := &recordingAudio{}
	ctx.Audio = sound

	cfg := DefaultConfig()
	cfg.Seed = 1
	g, err := NewGame(ctx, cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	ctx.Play()
	return &testGame{Game: g, ctx: ctx, mem: mem, sound: sound}
}

// run advances timers in 10ms ticks, flushing the pad each tick like the loop does
func (tg *testGame) run(t *testing.T, d time.Duration) {
	t.Helper()
	const tick = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		tg.ctx.Timers.Advance(tick)
		if err := tg.mem.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
	}
}

func (tg *testGame) press(x, y int) {
	tg.HandleInput(pad.ButtonEvent{X: x, Y: y, Pressed: true})
}

func (tg *testGame) release(x, y int) {
	tg.HandleInput(pad.ButtonEvent{X: x, Y: y, Pressed: false})
}

// snaking puts the game straight into Snaking with the given body
func (tg *testGame) snaking(heading Direction, target int, cells ...Cell) {
	tg.Setup()
	tg.ctx.Timers.CancelAll()
	layBody(tg.model, heading, target, cells...)
	tg.changeState(StateSnaking)
}

func TestNewGame_RejectsBadConfig(t *testing.T) {
	ctx := engine.NewGameContext(pad.NewMemoryPad())
	cfg := DefaultConfig()
	cfg.Speed = 0
	if _, err := NewGame(ctx, cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewGame(speed 0) = %v, want ErrInvalidConfig", err)
	}
}

func TestGame_SetupEntersTutorial(t *testing.T) {
	tg := newTestGame(t)
	tg.Setup()

	if tg.State() != StateTutorial {
		t.Fatalf("state = %v, want tutorial", tg.State())
	}
	if tg.mem.Resets() != 1 {
		t.Errorf("pad resets = %d, want 1", tg.mem.Resets())
	}
	if tg.ctx.Timers.Len() != 1 {
		t.Errorf("timers = %d, want only the startup delay", tg.ctx.Timers.Len())
	}
	if food, ok := tg.model.Food(); !ok || food != (Cell{X: 5, Y: 5}) {
		t.Errorf("food = %v %v, want (5,5)", food, ok)
	}
}

func TestGame_TutorialReachesStarting(t *testing.T) {
	tg := newTestGame(t)
	tg.Setup()

	tg.run(t, 7*time.Second)
	if tg.State() != StateTutorial {
		t.Fatalf("state at 7s = %v, want tutorial", tg.State())
	}

	tg.run(t, time.Second)
	if tg.State() != StateStarting {
		t.Fatalf("state at 8s = %v, want starting", tg.State())
	}

	wantBody := []Cell{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}
	if got := tg.model.Snake.Body(); !slices.Equal(got, wantBody) {
		t.Errorf("body = %v, want %v", got, wantBody)
	}
	if tg.model.Snake.Heading() != Right {
		t.Errorf("heading = %v, want right", tg.model.Snake.Heading())
	}

	wantLit := []pad.Point{
		{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
		{X: 1, Y: 3},
		{X: 1, Y: 4},
		{X: 5, Y: 6},
		{X: 8, Y: 8},
	}
	if got := tg.mem.Lit(); !slices.Equal(got, wantLit) {
		t.Errorf("lit = %v, want %v", got, wantLit)
	}
	if tg.mem.Light(3, 2) != pad.RGB(3, 0) || tg.mem.Light(1, 4) != pad.RGB(1, 0) {
		t.Error("snake not drawn with head-to-tail gradient")
	}
	if tg.mem.Light(5, 6) != ColorFood {
		t.Error("food not revealed")
	}
	if tg.mem.Light(8, 8) != ColorQuit {
		t.Error("quit button not lit")
	}
	if tg.ctx.Timers.Len() != 0 {
		t.Errorf("timers = %d after tutorial, want 0", tg.ctx.Timers.Len())
	}
}

func TestGame_RestartSkipsInputTutorial(t *testing.T) {
	full := newTestGame(t)
	full.Setup()
	full.run(t, 1900*time.Millisecond)
	if full.State() != StateTutorial {
		t.Errorf("first game state at 1.9s = %v, want tutorial", full.State())
	}

	restarted := newTestGame(t)
	restarted.reset(true)
	restarted.run(t, 1900*time.Millisecond)
	if restarted.State() != StateStarting {
		t.Errorf("restarted game state at 1.9s = %v, want starting", restarted.State())
	}
}

func TestGame_TutorialIgnoresInput(t *testing.T) {
	tg := newTestGame(t)
	tg.Setup()

	tg.press(3, 1)
	tg.release(QuitButton.X, QuitButton.Y)

	if tg.State() != StateTutorial || !tg.ctx.Playing() {
		t.Error("input acted on during tutorial")
	}
}

func TestGame_StartingWaitsForValidDirection(t *testing.T) {
	tg := newTestGame(t)
	tg.reset(true)
	tg.run(t, 2*time.Second)
	if tg.State() != StateStarting {
		t.Fatalf("state = %v, want starting", tg.State())
	}

	// Heading right after the tutorial; left reverses it
	tg.press(0, 4)
	if tg.State() != StateStarting {
		t.Fatalf("opposite press started the game")
	}
	tg.mem.Flush()
	if tg.mem.Light(0, 4) != ColorGrid || tg.mem.Light(2, 0) != ColorArrow {
		t.Error("pressed region not flashed")
	}
	tg.run(t, 70*time.Millisecond)
	if tg.mem.Light(0, 4) != pad.Off || tg.mem.Light(2, 0) != pad.Off {
		t.Error("flash not cleared")
	}

	tg.press(4, 7)
	if tg.State() != StateSnaking {
		t.Fatalf("state = %v after down press, want snaking", tg.State())
	}
	if d, ok := tg.model.Snake.Pending(); !ok || d != Down {
		t.Errorf("pending = %v %v, want down", d, ok)
	}
	if !slices.Contains(tg.sound.played, audio.SoundTurn) {
		t.Error("turn cue not played")
	}

	tg.run(t, tg.cfg.MovePeriod()+10*time.Millisecond)
	if head := tg.model.Snake.Head(); head != (Cell{X: 3, Y: 2}) {
		t.Errorf("head = %v, want (3,2)", head)
	}
}

func TestGame_StartingSameDirectionStarts(t *testing.T) {
	tg := newTestGame(t)
	tg.reset(true)
	tg.run(t, 2*time.Second)

	tg.press(ArrowButton(Right).X, ArrowButton(Right).Y)
	if tg.State() != StateSnaking {
		t.Errorf("state = %v after pressing the heading, want snaking", tg.State())
	}
	if _, ok := tg.model.Snake.Pending(); ok {
		t.Error("heading buffered as a turn")
	}
}

func TestGame_EatingDrawsNewFood(t *testing.T) {
	tg := newTestGame(t)
	tg.snaking(Right, 2, Cell{X: 4, Y: 5}, Cell{X: 3, Y: 5})

	tg.run(t, tg.cfg.MovePeriod())
	food, ok := tg.model.Food()
	if !ok || food == (Cell{X: 5, Y: 5}) {
		t.Fatalf("food = %v %v, want relocated", food, ok)
	}
	x, y := food.Light()
	if tg.mem.Light(x, y) != ColorFood {
		t.Errorf("new food at %v not drawn", food)
	}
	if tg.mem.Light(5, 6) != pad.RGB(3, 0) {
		t.Errorf("eaten cell shows %v, want snake head", tg.mem.Light(5, 6))
	}
	if !slices.Contains(tg.sound.played, audio.SoundEat) {
		t.Error("eat cue not played")
	}
}

func TestGame_SelfCollisionDies(t *testing.T) {
	tg := newTestGame(t)
	body := []Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}
	tg.snaking(Down, 3, body...)
	moveTimer := tg.moveTimer

	tg.ctx.Timers.Advance(tg.cfg.MovePeriod())

	if tg.State() != StateDying {
		t.Fatalf("state = %v, want dying", tg.State())
	}
	if got := tg.model.Snake.Body(); !slices.Equal(got, body) {
		t.Errorf("body = %v, want %v unchanged", got, body)
	}
	if tg.ctx.Timers.Active(moveTimer) {
		t.Error("move timer still active while dying")
	}
	// Lead wait, two keyframes per cell, hold
	if len(tg.deathKeys) != 1+2*len(body)+1 {
		t.Errorf("death animation has %d keyframes, want %d", len(tg.deathKeys), 2+2*len(body))
	}
	if !slices.Contains(tg.sound.played, audio.SoundDeath) {
		t.Error("death cue not played")
	}

	tg.run(t, 300*time.Millisecond)
	if tg.mem.Light(1, 2) != ColorDeadSnake {
		t.Errorf("head cell shows %v, want dead color", tg.mem.Light(1, 2))
	}
}

func TestGame_DeathLeadsToScore(t *testing.T) {
	tg := newTestGame(t)
	tg.snaking(Down, 3, Cell{X: 1, Y: 1}, Cell{X: 1, Y: 2}, Cell{X: 1, Y: 3})
	tg.ctx.Timers.Advance(tg.cfg.MovePeriod())

	tg.run(t, 700*time.Millisecond)
	if tg.State() != StateShowScore {
		t.Fatalf("state = %v, want show_score", tg.State())
	}
	if tg.mem.Light(RestartButton.X, RestartButton.Y) != ColorRestart {
		t.Error("restart button not lit")
	}
	if tg.mem.Light(QuitButton.X, QuitButton.Y) != ColorQuit {
		t.Error("quit button not lit")
	}
	if len(tg.scoreKeys) != 1+2*3 {
		t.Errorf("score animation has %d keyframes, want 7", len(tg.scoreKeys))
	}

	tg.run(t, 450*time.Millisecond)
	for x := 0; x < 3; x++ {
		if tg.mem.Light(x, 1) != snakeGradient[0] {
			t.Errorf("score cell (%d,1) = %v, want filled", x, tg.mem.Light(x, 1))
		}
	}
	if !tg.mem.Light(3, 1).IsOff() {
		t.Error("score fill exceeded final length")
	}
	for _, key := range tg.scoreKeys {
		if !tg.ctx.Timers.Active(key) {
			t.Fatal("score animation did not loop")
		}
	}
}

func TestGame_ShowScoreReentryReschedules(t *testing.T) {
	tg := newTestGame(t)
	tg.Setup()

	if !tg.changeState(StateShowScore) {
		t.Error("first transition reported no change")
	}
	first := slices.Clone(tg.scoreKeys)

	if tg.changeState(StateShowScore) {
		t.Error("re-entry reported a change")
	}
	second := tg.scoreKeys

	if len(second) == 0 || slices.Equal(first, second) {
		t.Fatalf("re-entry did not schedule a fresh group: %v then %v", first, second)
	}
	for _, key := range first {
		if tg.ctx.Timers.Active(key) {
			t.Errorf("old score key %d still active", key)
		}
	}
	if tg.ctx.Timers.Len() != len(second) {
		t.Errorf("timers = %d, want only the new group of %d", tg.ctx.Timers.Len(), len(second))
	}
	if tg.mem.Resets() != 3 {
		t.Errorf("pad resets = %d, want 3", tg.mem.Resets())
	}
}

func TestGame_ShowScoreButtons(t *testing.T) {
	tg := newTestGame(t)
	tg.Setup()
	tg.changeState(StateShowScore)

	// Press alone does nothing
	tg.press(RestartButton.X, RestartButton.Y)
	if tg.State() != StateShowScore {
		t.Fatal("restart acted on press")
	}

	tg.release(RestartButton.X, RestartButton.Y)
	if tg.State() != StateTutorial {
		t.Fatalf("state = %v after restart, want tutorial", tg.State())
	}
	if tg.statRestarts.Load() != 1 {
		t.Errorf("restarts = %d, want 1", tg.statRestarts.Load())
	}

	tg.changeState(StateShowScore)
	tg.release(QuitButton.X, QuitButton.Y)
	if tg.ctx.Playing() {
		t.Error("quit release did not stop the game")
	}
}

func TestGame_QuitWhileSnaking(t *testing.T) {
	tg := newTestGame(t)
	tg.snaking(Up, 3, Cell{X: 4, Y: 4})

	tg.press(QuitButton.X, QuitButton.Y)
	if !tg.ctx.Playing() {
		t.Fatal("quit acted on press")
	}
	tg.release(QuitButton.X, QuitButton.Y)
	if tg.ctx.Playing() {
		t.Error("quit release did not stop the game")
	}
}

func TestGame_EveryStateHasEntry(t *testing.T) {
	for s := State(0); s < stateCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			tg := newTestGame(t)
			tg.snaking(Up, 3, Cell{X: 4, Y: 4})
			tg.changeState(s)
			if tg.State() != s {
				t.Errorf("state = %v, want %v", tg.State(), s)
			}
		})
	}

	defer func() {
		if recover() == nil {
			t.Error("unknown state did not panic")
		}
	}()
	tg := newTestGame(t)
	tg.changeState(stateCount)
}

func TestGame_FixedUpdatePublishesMetrics(t *testing.T) {
	tg := newTestGame(t)
	tg.snaking(Up, 3, Cell{X: 4, Y: 4}, Cell{X: 4, Y: 5})
	tg.FixedUpdate()

	if got := tg.ctx.Status.Ints.Get("snake.length").Load(); got != 2 {
		t.Errorf("snake.length = %d, want 2", got)
	}
	if got := tg.ctx.Status.Strings.Get("snake.state").Load(); got != "snaking" {
		t.Errorf("snake.state = %q, want snaking", got)
	}
	if got := tg.ctx.Status.Ints.Get("snake.foods").Load(); got != 0 {
		t.Errorf("snake.foods = %d, want 0", got)
	}
}

func TestGame_CleanupLeavesPadDark(t *testing.T) {
	tg := newTestGame(t)
	tg.snaking(Up, 3, Cell{X: 4, Y: 4})
	tg.mem.Flush()
	tg.mem.Push(pad.ButtonEvent{X: 1, Y: 1, Pressed: true})

	tg.Cleanup()

	if tg.ctx.Timers.Len() != 0 {
		t.Errorf("timers = %d after cleanup", tg.ctx.Timers.Len())
	}
	if tg.mem.PendingEvents() != 0 {
		t.Error("input not cleared")
	}
	if len(tg.mem.Lit()) != 0 {
		t.Errorf("lit after cleanup: %v", tg.mem.Lit())
	}
}

func TestGame_RunsOnLoop(t *testing.T) {
	mem := pad.NewMemoryPad()
	ctx := engine.NewGameContext(mem)
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	ctx.TimeProvider = clock

	cfg := DefaultConfig()
	cfg.Seed = 3
	g, err := NewGame(ctx, cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	loop, err := engine.NewLoop(ctx, engine.LoopConfig{FixedPeriod: 30 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	ctx.Play()
	g.Setup()
	for i := 0; i < 1000 && g.State() != StateStarting; i++ {
		clock.Advance(10 * time.Millisecond)
		if err := loop.Tick(g); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if g.State() != StateStarting {
		t.Fatalf("state = %v after 10s of ticks, want starting", g.State())
	}
	if got := ctx.Status.Strings.Get("snake.state").Load(); got == "" {
		t.Error("loop did not run FixedUpdate")
	}
}
