package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionQuit         // X, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf returns a frame holding the single action a.
// ActionNone yields an empty frame.
func FrameOf(a Action) InputFrame {
	f := NewInputFrame()
	if a != ActionNone {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// KeySource is a non-blocking source of key presses.
// Poll returns the next pending action, or false when nothing is pending.
type KeySource interface {
	Poll() (Action, bool)
}

// DefaultKeyQueueSize bounds how many presses can wait between ticks.
const DefaultKeyQueueSize = 16

// KeyQueue is a bounded FIFO of pending actions. It is the hand-off point
// between whatever reads the keyboard and the game loop, so it is safe for
// one producer and one consumer on different goroutines.
type KeyQueue struct {
	mu      sync.Mutex
	pending []Action
	size    int
}

// NewKeyQueue creates a queue holding at most size actions.
// A non-positive size means DefaultKeyQueueSize.
func NewKeyQueue(size int) *KeyQueue {
	if size <= 0 {
		size = DefaultKeyQueueSize
	}
	return &KeyQueue{
		pending: make([]Action, 0, size),
		size:    size,
	}
}

// Push enqueues an action. ActionNone is dropped. Quit jumps the queue so
// it is seen on the very next tick; other actions are dropped when the
// queue is full. Returns whether the action was accepted.
func (q *KeyQueue) Push(a Action) bool {
	if a == ActionNone {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if a == ActionQuit {
		q.pending = append([]Action{ActionQuit}, q.pending...)
		if len(q.pending) > q.size {
			q.pending = q.pending[:q.size]
		}
		return true
	}

	if len(q.pending) >= q.size {
		return false
	}
	q.pending = append(q.pending, a)
	return true
}

// Poll dequeues the oldest pending action without blocking.
func (q *KeyQueue) Poll() (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return ActionNone, false
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a, true
}

// Len returns the number of pending actions.
func (q *KeyQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
