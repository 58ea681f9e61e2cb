package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// Options configure a desktop session.
type Options struct {
	Scale  float64 // Window size multiplier over the playfield
	TPS    int     // Steps per second
	Logger *log.Logger
	Sink   core.EventSink // May be nil
}

// keyState is the keyboard, mouse and touch input sampled for one tick.
type keyState struct {
	left, right bool // Held
	launch      bool // Just pressed
	pause       bool
	restart     bool
	next        bool
	quit        bool

	cursorX     int
	cursorMoved bool
	click       bool
}

// frame maps sampled input to semantic actions.
func (k keyState) frame() core.InputFrame {
	in := core.NewInputFrame()
	if k.left {
		in.Set(core.ActionLeft)
	}
	if k.right {
		in.Set(core.ActionRight)
	}
	if k.launch || k.click {
		in.Set(core.ActionLaunch)
	}
	if k.pause {
		in.Set(core.ActionPause)
	}
	if k.restart {
		in.Set(core.ActionRestart)
	}
	if k.next {
		in.Set(core.ActionNextLevel)
	}
	if k.cursorMoved || k.click {
		in.SetPointer(float64(k.cursorX))
	}
	return in
}

// titleBar is the core.Labels sink that mirrors the counters into the
// window title.
type titleBar struct {
	title               string
	score, lives, level int
	set                 func(string)
}

func (t *titleBar) SetScore(v int) { t.score = v; t.update() }
func (t *titleBar) SetLives(v int) { t.lives = v; t.update() }
func (t *titleBar) SetLevel(v int) { t.level = v; t.update() }

func (t *titleBar) String() string {
	return fmt.Sprintf("%s - Score %d  Lives %d  Level %d", t.title, t.score, t.lives, t.level)
}

func (t *titleBar) update() {
	if t.set != nil {
		t.set(t.String())
	}
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game   registry.Game
	sink   core.EventSink
	logger *log.Logger

	lastCursorX int
	state       core.GameState
}

// NewGame wraps game for Ebitengine.
func NewGame(game registry.Game, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		game:        game,
		sink:        opts.Sink,
		logger:      logger,
		lastCursorX: -1,
		state:       game.State(),
	}
}

// sample reads this tick's input from Ebitengine.
func (g *Game) sample() keyState {
	k := keyState{
		left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		launch:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		next:    inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	x, _ := ebiten.CursorPosition()
	if x != g.lastCursorX {
		k.cursorX, k.cursorMoved = x, true
		g.lastCursorX = x
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		k.cursorX, k.click = x, true
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, _ := ebiten.TouchPosition(id)
		k.cursorX, k.cursorMoved = tx, true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		k.click = true
	}
	return k
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	k := g.sample()
	if k.quit {
		return ebiten.Termination
	}

	g.game.Apply(k.frame())
	res := g.game.Step()

	if res.State.Phase != g.state.Phase {
		g.logger.Debug("phase", "to", res.State.Phase, "score", res.State.Score)
	}
	g.state = res.State
	if g.sink != nil && len(res.Events) > 0 {
		g.sink.HandleEvents(res.Events)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Render(imageSurface{img: screen})
}

// Layout implements ebiten.Game. The logical screen is the playfield.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.game.Size()
	return int(w), int(h)
}

// State returns the game state after the last update.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens a window and plays game until it is closed or the user quits.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	g := NewGame(game, opts)
	game.SetLabels(&titleBar{title: game.Title(), set: ebiten.SetWindowTitle})

	w, h := game.Size()
	ebiten.SetWindowSize(int(w*opts.Scale), int(h*opts.Scale))
	ebiten.SetTPS(opts.TPS)

	g.logger.Info("window opened", "variant", game.ID(), "scale", opts.Scale, "tps", opts.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return g.State(), err
	}
	return g.State(), nil
}
