package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota // Not moving yet
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirLeft:
		return core.Point{X: -1}
	case DirRight:
		return core.Point{X: 1}
	case DirUp:
		return core.Point{Y: -1}
	case DirDown:
		return core.Point{Y: 1}
	default:
		return core.Point{}
	}
}

// Opposite returns the 180° reversal of d. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// EndReason records what ended a game.
type EndReason string

const (
	EndNone      EndReason = ""
	EndQuit      EndReason = "quit"
	EndWall      EndReason = "wall"
	EndSelf      EndReason = "self"
	EndBoardFull EndReason = "board_full"
)

// Rules are the fixed parameters a State is played under.
type Rules struct {
	Width       int
	Height      int
	FruitPoints int
}

// State is the complete snapshot of one run: everything Setup creates and
// Steer/Advance mutate in place.
type State struct {
	Rules Rules

	Head core.Point
	Dir  Direction
	Tail []core.Point // Index 0 is nearest the head

	Fruit core.Point
	Score int

	GameOver bool
	Reason   EndReason
}

// Setup returns a fresh state: head centered, not moving, no tail,
// no score, fruit on a random cell.
func Setup(rules Rules, rng *rand.Rand) State {
	s := State{
		Rules: rules,
		Dir:   DirNone,
	}
	s.Head = s.Board().Center()
	s.Tail = make([]core.Point, 0, min(s.MaxTail(), 64))
	s.Fruit = s.randomCell(rng)
	return s
}

// Board returns the playable area in board coordinates.
func (s *State) Board() core.Rect {
	return core.NewRect(0, 0, s.Rules.Width, s.Rules.Height)
}

// MaxTail is the longest tail the board can hold.
func (s *State) MaxTail() int {
	return s.Board().Area() - 1
}

// Steer applies one polled action. Quit ends the game; a movement action
// changes direction unless it is the exact reversal of the current one.
// Anything else is ignored.
func (s *State) Steer(a core.Action) {
	if s.GameOver {
		return
	}

	var d Direction
	switch a {
	case core.ActionQuit:
		s.end(EndQuit)
		return
	case core.ActionLeft:
		d = DirLeft
	case core.ActionRight:
		d = DirRight
	case core.ActionUp:
		d = DirUp
	case core.ActionDown:
		d = DirDown
	default:
		return
	}

	// Prevent instant reversal
	if d == s.Dir.Opposite() {
		return
	}
	s.Dir = d
}

// Advance runs one tick of game logic: shift the tail, move the head,
// check walls, check the tail, then eat.
func (s *State) Advance(rng *rand.Rand) {
	if s.GameOver || s.Dir == DirNone {
		return
	}

	prev := s.Head
	s.shiftTail(prev)
	s.Head = s.Head.Add(s.Dir.Delta())

	if !s.Board().ContainsPoint(s.Head) {
		s.end(EndWall)
		return
	}

	// A fruit under the fatal tail cell is still eaten.
	if s.tailAt(s.Head) {
		s.end(EndSelf)
	}

	if s.Head == s.Fruit {
		s.eat(rng)
	}
}

// shiftTail moves every segment into the slot ahead of it; segment 0 takes
// the head's position from before the move.
func (s *State) shiftTail(prevHead core.Point) {
	if len(s.Tail) == 0 {
		return
	}
	copy(s.Tail[1:], s.Tail[:len(s.Tail)-1])
	s.Tail[0] = prevHead
}

// tailAt reports whether any tail segment occupies p.
func (s *State) tailAt(p core.Point) bool {
	for _, seg := range s.Tail {
		if seg == p {
			return true
		}
	}
	return false
}

// eat scores the fruit, grows the tail, and respawns the fruit.
// The new segment starts under the head and is pulled into place by the
// next shift.
func (s *State) eat(rng *rand.Rand) {
	s.Score += s.Rules.FruitPoints

	if len(s.Tail) < s.MaxTail() {
		s.Tail = append(s.Tail, s.Head)
	}
	if len(s.Tail) >= s.MaxTail() {
		s.end(EndBoardFull)
		return
	}

	// The fruit may land under the tail.
	s.Fruit = s.randomCell(rng)
}

// randomCell picks a uniformly random board cell.
func (s *State) randomCell(rng *rand.Rand) core.Point {
	return core.Point{
		X: rng.Intn(s.Rules.Width),
		Y: rng.Intn(s.Rules.Height),
	}
}

// end moves the state to game over. The first reason sticks.
func (s *State) end(reason EndReason) {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.Reason = reason
}
