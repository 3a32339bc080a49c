package core

import (
	"context"
	"time"
)

// Presenter shows a rendered frame. Implementations decide how: the TUI
// hands a styled string to Bubble Tea, the plain driver clears the terminal
// and writes the rows.
type Presenter interface {
	Present(s *Screen) error
}

// Scheduler is the game loop: draw, poll one key, step, wait out the tick.
// It is single-threaded; the only suspension point is the pacing delay.
type Scheduler struct {
	game     Game
	keys     KeySource
	interval time.Duration
	screen   *Screen
	ticks    uint64

	// sleep waits for d or until ctx is done. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewScheduler creates a scheduler for an already Reset game.
func NewScheduler(game Game, keys KeySource, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	w, h := game.FrameSize()
	return &Scheduler{
		game:     game,
		keys:     keys,
		interval: interval,
		screen:   NewScreen(w, h),
		sleep:    sleepContext,
	}
}

// Interval returns the pacing delay between ticks.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Ticks returns how many ticks have been stepped.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick polls at most one pending key and advances the game by one step.
// It never blocks waiting for input.
func (s *Scheduler) Tick() GameState {
	if st := s.game.State(); st.GameOver {
		return st
	}

	a, _ := s.keys.Poll()
	s.ticks++
	return s.game.Step(FrameOf(a)).State
}

// Frame renders the current game state into the scheduler's screen buffer.
func (s *Scheduler) Frame() *Screen {
	s.screen.Clear()
	s.game.Render(s.screen)
	return s.screen
}

// Run drives the loop until the game is over or ctx is cancelled.
// Once the game is over no further frame is presented; the caller prints
// the final summary.
func (s *Scheduler) Run(ctx context.Context, out Presenter) (GameState, error) {
	for {
		if st := s.game.State(); st.GameOver {
			return st, nil
		}

		if err := out.Present(s.Frame()); err != nil {
			return s.game.State(), err
		}

		if st := s.Tick(); st.GameOver {
			return st, nil
		}

		if err := s.sleep(ctx, s.interval); err != nil {
			return s.game.State(), err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
