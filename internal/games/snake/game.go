package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game implements core.Game for the snake.
type Game struct {
	cfg   config.SnakeConfig
	theme Theme
	rng   *rand.Rand
	tick  uint64
	state State
}

// New creates a snake game for a validated config. Call Reset before use.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:   cfg,
		theme: NewTheme(cfg),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Rules returns the rules derived from the config.
func (g *Game) Rules() Rules {
	return Rules{
		Width:       g.cfg.Board.Width,
		Height:      g.cfg.Board.Height,
		FruitPoints: g.cfg.Scoring.FruitPoints,
	}
}

// Reset runs Setup with an RNG seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.state = Setup(g.Rules(), g.rng)
}

// Step applies at most one action and advances the game by one tick.
// A quit ends the game before any movement happens.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.state.Steer(actionOf(input))
	g.state.Advance(g.rng)

	return core.StepResult{State: g.State()}
}

// actionOf picks the action of a frame. Quit wins over movement.
func actionOf(input core.InputFrame) core.Action {
	if input.Empty() {
		return core.ActionNone
	}
	switch {
	case input.Has(core.ActionQuit):
		return core.ActionQuit
	case input.Has(core.ActionUp):
		return core.ActionUp
	case input.Has(core.ActionDown):
		return core.ActionDown
	case input.Has(core.ActionLeft):
		return core.ActionLeft
	case input.Has(core.ActionRight):
		return core.ActionRight
	default:
		return core.ActionNone
	}
}

// Render draws the board and score into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(&g.state, g.theme, dst)
}

// FrameSize returns the screen size Render needs.
func (g *Game) FrameSize() (w, h int) {
	return FrameSize(g.Rules())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Reason:   string(g.state.Reason),
	}
}
