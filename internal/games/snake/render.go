package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme is the glyph set used by Draw.
type Theme struct {
	Wall, Head, Tail, Fruit, Empty rune

	WallColor, HeadColor, TailColor, FruitColor, ScoreColor core.Color
}

// NewTheme builds a Theme from a validated config.
func NewTheme(cfg config.SnakeConfig) Theme {
	color := func(name string) core.Color {
		c, _ := core.ParseColor(name) // validated by config.Validate
		return c
	}
	return Theme{
		Wall:  config.Glyph(cfg.Glyphs.Wall),
		Head:  config.Glyph(cfg.Glyphs.Head),
		Tail:  config.Glyph(cfg.Glyphs.Tail),
		Fruit: config.Glyph(cfg.Glyphs.Fruit),
		Empty: config.Glyph(cfg.Glyphs.Empty),

		WallColor:  color(cfg.Colors.Wall),
		HeadColor:  color(cfg.Colors.Head),
		TailColor:  color(cfg.Colors.Tail),
		FruitColor: color(cfg.Colors.Fruit),
		ScoreColor: color(cfg.Colors.Score),
	}
}

// CellKind classifies a board cell for drawing.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellHead
	CellFruit
	CellTail
)

// scoreLineWidth fits "Score: " and nine digits.
const scoreLineWidth = 16

// FrameSize returns the screen size Draw needs for a board: the walls
// around it plus the score line.
func FrameSize(r Rules) (w, h int) {
	return max(r.Width+2, scoreLineWidth), r.Height + 3
}

// Draw renders a full frame of s into dst: walls, board cells, then the
// score line under the bottom wall. It clears dst first and never mutates s.
func Draw(s *State, theme Theme, dst *core.Screen) {
	dst.Clear()

	w, h := s.Rules.Width, s.Rules.Height
	dst.DrawFrame(core.NewRect(0, 0, w+2, h+2), theme.Wall, theme.WallColor)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x+1, y+1
			switch s.CellAt(core.Point{X: x, Y: y}) {
			case CellHead:
				dst.SetColored(sx, sy, theme.Head, theme.HeadColor)
			case CellFruit:
				dst.SetColored(sx, sy, theme.Fruit, theme.FruitColor)
			case CellTail:
				dst.SetColored(sx, sy, theme.Tail, theme.TailColor)
			default:
				dst.Set(sx, sy, theme.Empty)
			}
		}
	}

	dst.DrawText(0, h+2, fmt.Sprintf("Score: %d", s.Score), theme.ScoreColor)
}

// CellAt classifies a single board cell. Head is checked first, then fruit,
// then tail, so head and fruit win over a tail segment on the same cell.
func (s *State) CellAt(p core.Point) CellKind {
	switch {
	case p == s.Head:
		return CellHead
	case p == s.Fruit:
		return CellFruit
	case s.tailAt(p):
		return CellTail
	default:
		return CellEmpty
	}
}
