package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file is unusable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  20,
			Height: 17,
		},
		Timing: TimingConfig{
			TickMS: 100,
		},
		Scoring: ScoringConfig{
			FruitPoints: 10,
		},
		Glyphs: GlyphConfig{
			Wall:  "#",
			Head:  "O",
			Tail:  "o",
			Fruit: "F",
			Empty: " ",
		},
		Colors: ColorConfig{
			Wall:  "gray",
			Head:  "bright_green",
			Tail:  "green",
			Fruit: "bright_red",
			Score: "bright_yellow",
		},
	}
}
