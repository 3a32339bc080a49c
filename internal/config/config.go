// Package config provides the YAML-backed settings of the snake game.
// The settings are compiled in; there is no user-facing config file.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Glyphs  GlyphConfig   `yaml:"glyphs"`
	Colors  ColorConfig   `yaml:"colors"`
}

// BoardConfig is the size of the playfield, walls excluded.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig controls loop pacing.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// ScoringConfig controls how points are awarded.
type ScoringConfig struct {
	FruitPoints int `yaml:"fruit_points"`
}

// GlyphConfig holds the single-character glyphs of the board.
type GlyphConfig struct {
	Wall  string `yaml:"wall"`
	Head  string `yaml:"head"`
	Tail  string `yaml:"tail"`
	Fruit string `yaml:"fruit"`
	Empty string `yaml:"empty"`
}

// ColorConfig holds color names (see core.ParseColor) for the glyphs.
type ColorConfig struct {
	Wall  string `yaml:"wall"`
	Head  string `yaml:"head"`
	Tail  string `yaml:"tail"`
	Fruit string `yaml:"fruit"`
	Score string `yaml:"score"`
}

// TickInterval returns the pacing delay as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// MaxTail is the longest tail the board can hold: every cell but the head's.
func (c SnakeConfig) MaxTail() int {
	return core.NewRect(0, 0, c.Board.Width, c.Board.Height).Area() - 1
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.MaxTail() < 1 {
		return fmt.Errorf("%w: board %dx%d leaves no room for a tail", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.Timing.TickMS)
	}
	if c.Scoring.FruitPoints < 0 {
		return fmt.Errorf("%w: fruit_points must not be negative, got %d", ErrInvalid, c.Scoring.FruitPoints)
	}

	glyphs := []struct {
		name  string
		value string
	}{
		{"wall", c.Glyphs.Wall},
		{"head", c.Glyphs.Head},
		{"tail", c.Glyphs.Tail},
		{"fruit", c.Glyphs.Fruit},
		{"empty", c.Glyphs.Empty},
	}
	seen := make(map[string]string, len(glyphs))
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: glyph %s must be exactly one character, got %q", ErrInvalid, g.name, g.value)
		}
		if other, dup := seen[g.value]; dup {
			return fmt.Errorf("%w: glyphs %s and %s are both %q", ErrInvalid, other, g.name, g.value)
		}
		seen[g.value] = g.name
	}

	for name, value := range map[string]string{
		"wall":  c.Colors.Wall,
		"head":  c.Colors.Head,
		"tail":  c.Colors.Tail,
		"fruit": c.Colors.Fruit,
		"score": c.Colors.Score,
	} {
		if _, err := core.ParseColor(value); err != nil {
			return fmt.Errorf("%w: color %s: %v", ErrInvalid, name, err)
		}
	}

	return nil
}

// Glyph returns the rune of a validated glyph string.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
