// Package plain runs the game straight on a raw-mode terminal without
// Bubble Tea: a reader goroutine feeds a key queue and core.Scheduler
// clears and redraws the screen every tick.
package plain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/input"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Presenter clears the terminal and writes each frame as CRLF rows.
type Presenter struct {
	w io.Writer
}

// NewPresenter creates a presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Present implements core.Presenter.
func (p *Presenter) Present(s *core.Screen) error {
	if _, err := io.WriteString(p.w, clearScreen+s.CRLF()+"\r\n"); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// ReadKeys decodes raw terminal bytes from r and queues the bound actions
// until r fails or ctx is done.
func ReadKeys(ctx context.Context, r io.Reader, km input.KeyMap, q *core.KeyQueue) error {
	var dec input.Decoder
	push := func(keys []input.Key) {
		for _, k := range keys {
			if a := km.Action(k); a != core.ActionNone {
				q.Push(a)
			}
		}
	}

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		push(dec.Decode(buf[:n]))
		if err != nil {
			push(dec.Flush())
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Run puts stdin into raw mode and runs the game until it ends or ctx is
// cancelled. The terminal is restored before returning.
func Run(ctx context.Context, game core.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return game.State(), ErrNotTerminal
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return game.State(), fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, old); err != nil {
			logger.Warn("failed to restore terminal", "error", err)
		}
	}()

	fmt.Fprint(os.Stdout, hideCursor)
	defer fmt.Fprint(os.Stdout, showCursor+clearScreen)

	return run(ctx, game, cfg, os.Stdin, os.Stdout, logger)
}

// run wires the game to the given streams. It is what Run does once the
// terminal is prepared.
func run(ctx context.Context, game core.Game, cfg core.RuntimeConfig, in io.Reader, out io.Writer, logger *log.Logger) (core.GameState, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := core.NewKeyQueue(core.DefaultKeyQueueSize)
	// The reader stays blocked in Read until the next key or EOF; it is
	// abandoned when the game ends.
	go func() {
		err := ReadKeys(ctx, in, input.DefaultKeyMap(), queue)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
			logger.Debug("key reader stopped", "error", err)
		}
	}()

	sched := core.NewScheduler(game, queue, cfg.TickInterval)
	st, err := sched.Run(ctx, NewPresenter(out))
	logger.Debug("plain loop stopped", "ticks", sched.Ticks(), "reason", st.Reason)
	return st, err
}
