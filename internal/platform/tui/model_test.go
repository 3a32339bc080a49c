package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	g := snake.New(config.DefaultSnakeConfig())
	m := NewModel(g, core.RuntimeConfig{Seed: 7, TickInterval: core.DefaultTickInterval})
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelResetsGame(t *testing.T) {
	m, g := newTestModel(t)

	snap := g.Snapshot()
	if snap.HeadX != 10 || snap.HeadY != 8 || snap.Dir != snake.DirNone {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestKeyAppliedOnTick(t *testing.T) {
	m, g := newTestModel(t)

	m, cmd := update(t, m, runeKey('d'))
	if cmd != nil {
		t.Error("a key alone should not produce a command")
	}
	if g.Snapshot().Tick != 0 {
		t.Fatal("key press should not step the game")
	}

	m, cmd = update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	snap := g.Snapshot()
	if snap.Dir != snake.DirRight || snap.HeadX != 11 {
		t.Errorf("after tick: dir=%v head=(%d, %d), expected right at x=11", snap.Dir, snap.HeadX, snap.HeadY)
	}
	if m.State().GameOver {
		t.Error("game should still be running")
	}
}

func TestOneKeyPerTick(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})
	if g.Snapshot().Dir != snake.DirUp {
		t.Fatalf("dir = %v after first tick, expected up", g.Snapshot().Dir)
	}

	update(t, m, TickMsg{})
	if g.Snapshot().Dir != snake.DirLeft {
		t.Errorf("dir = %v after second tick, expected left", g.Snapshot().Dir)
	}
}

func TestQuitKeyEndsProgram(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, runeKey('x'))
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command produced %T, expected tea.QuitMsg", cmd())
	}
	if !m.State().GameOver || m.State().Reason != string(snake.EndQuit) {
		t.Errorf("state = %+v, expected quit", m.State())
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected 1", g.Snapshot().Tick)
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}

	// Late ticks are ignored
	_, cmd = update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("no further ticks after game over")
	}
}

func TestTooSmallHoldsGame(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("view = %q, expected too-small notice", m.View())
	}

	m, _ = update(t, m, runeKey('d'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("ticking should continue while held")
	}
	if g.Snapshot().Tick != 0 {
		t.Error("game advanced while the terminal was too small")
	}

	// Growing the window resumes with the queued key
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	update(t, m, TickMsg{})
	if snap := g.Snapshot(); snap.Tick != 1 || snap.Dir != snake.DirRight {
		t.Errorf("after resume: %+v", snap)
	}
}

func TestQuitWhileTooSmall(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.State().GameOver {
		t.Error("quit should end the game even while held")
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view missing score line:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("view missing help footer:\n%s", view)
	}
	if !strings.Contains(view, "####################") {
		t.Errorf("view missing top wall:\n%s", view)
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, '#', core.ColorGray)
	s.SetColored(1, 0, 'O', core.ColorBrightGreen)
	s.SetColored(2, 0, 'o', core.ColorGreen)
	s.Set(3, 1, 'x')

	// Styling may add escape codes; the visible text must be unchanged.
	got := stripANSI(RenderScreen(s))
	if got != "#Oo \n   x" {
		t.Errorf("RenderScreen() text = %q", got)
	}
}

func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestRunError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantNil bool
	}{
		{"clean exit", nil, true},
		{"killed", tea.ErrProgramKilled, true},
		{"interrupted", tea.ErrInterrupted, true},
		{"wrapped interrupt", fmt.Errorf("stop: %w", tea.ErrInterrupted), true},
		{"terminal failure", errors.New("open /dev/tty: no such device"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := runError(tc.err)
			if (got == nil) != tc.wantNil {
				t.Errorf("runError(%v) = %v", tc.err, got)
			}
			if got != nil && !errors.Is(got, tc.err) {
				t.Errorf("runError(%v) lost the cause: %v", tc.err, got)
			}
		})
	}
}
