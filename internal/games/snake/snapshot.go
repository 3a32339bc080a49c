package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick    uint64
	Score   int
	TailLen int
	HeadX   int
	HeadY   int
	Dir     Direction
	FruitX  int
	FruitY  int
	State   GameStateType
	Reason  EndReason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.state.GameOver {
		state = StateGameOver
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.state.Score,
		TailLen: len(g.state.Tail),
		HeadX:   g.state.Head.X,
		HeadY:   g.state.Head.Y,
		Dir:     g.state.Dir,
		FruitX:  g.state.Fruit.X,
		FruitY:  g.state.Fruit.Y,
		State:   state,
		Reason:  g.state.Reason,
	}
}
