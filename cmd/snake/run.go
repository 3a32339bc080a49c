package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/plain"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// newLogger builds the stderr logger. Output stays quiet at the default
// level so it does not mix with the game screen.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, nil
}

// finalMessage is the line printed after the game ends.
func finalMessage(score int) string {
	return fmt.Sprintf("Game Over! Your final score was: %d", score)
}

func runSnake(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		TickInterval: cfg.TickInterval(),
		Seed:         seed,
	}

	game := snake.New(cfg)

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
		if fw, fh := game.FrameSize(); w < fw || h < fh {
			logger.Warn("terminal is smaller than the board", "need", fmt.Sprintf("%dx%d", fw, fh), "have", fmt.Sprintf("%dx%d", w, h))
		}
	}

	logger.Info("starting game",
		"seed", seed,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"tick", rc.TickInterval,
		"plain", flagPlain,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st core.GameState
	if flagPlain {
		st, err = plain.Run(ctx, game, rc, logger)
	} else {
		st, err = tui.Run(game, rc, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run game: %w", err)
	}

	snap := game.Snapshot()
	logger.Info("game ended", "reason", snap.Reason, "score", snap.Score, "ticks", snap.Tick, "tail", snap.TailLen)

	fmt.Fprintln(cmd.OutOrStdout(), finalMessage(st.Score))
	return nil
}
