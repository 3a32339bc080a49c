package core

import "time"

// DefaultTickInterval is the fixed pacing delay between ticks.
const DefaultTickInterval = 100 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters (0 if unknown)
	ScreenH      int           // Terminal height in characters (0 if unknown)
	TickInterval time.Duration // Fixed delay between ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Reason   string // Why the game ended; empty while running
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is what the platform drives. Games contain pure logic; the platform
// handles input, timing, and presentation.
type Game interface {
	// ID returns a stable identifier, used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state. Called once before the loop starts.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick with at most one action.
	Step(in InputFrame) StepResult

	// Render draws the current frame into dst. It must not mutate game state.
	Render(dst *Screen)

	// FrameSize returns the screen size Render needs.
	FrameSize() (w, h int)

	// State returns the current game state.
	State() GameState
}
