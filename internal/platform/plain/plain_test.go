package plain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/input"
)

func TestPresenter(t *testing.T) {
	var buf bytes.Buffer
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", core.ColorDefault)
	s.DrawText(0, 1, "de", core.ColorDefault)

	if err := NewPresenter(&buf).Present(s); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	want := clearScreen + "abc\r\nde \r\n"
	if buf.String() != want {
		t.Errorf("Present() wrote %q, expected %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPresenterError(t *testing.T) {
	err := NewPresenter(failingWriter{}).Present(core.NewScreen(1, 1))
	if err == nil {
		t.Fatal("expected write error")
	}
}

func TestReadKeys(t *testing.T) {
	q := core.NewKeyQueue(core.DefaultKeyQueueSize)
	in := strings.NewReader("d\x1b[Azp")

	err := ReadKeys(context.Background(), in, input.DefaultKeyMap(), q)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadKeys() error = %v, expected EOF", err)
	}

	want := []core.Action{core.ActionRight, core.ActionUp}
	if q.Len() != len(want) {
		t.Fatalf("queued %d actions, expected %d", q.Len(), len(want))
	}
	for i, w := range want {
		if a, _ := q.Poll(); a != w {
			t.Errorf("action %d = %v, expected %v", i, a, w)
		}
	}
}

// chunkReader returns one chunk per Read, like a terminal delivering an
// escape sequence in pieces.
type chunkReader struct {
	chunks []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func TestReadKeysSplitArrow(t *testing.T) {
	q := core.NewKeyQueue(core.DefaultKeyQueueSize)
	in := &chunkReader{chunks: []string{"\x1b[", "D", "\x1b", "[A"}}

	if err := ReadKeys(context.Background(), in, input.DefaultKeyMap(), q); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadKeys() error = %v, expected EOF", err)
	}

	want := []core.Action{core.ActionLeft, core.ActionUp}
	if q.Len() != len(want) {
		t.Fatalf("queued %d actions, expected %d", q.Len(), len(want))
	}
	for i, w := range want {
		if a, _ := q.Poll(); a != w {
			t.Errorf("action %d = %v, expected %v", i, a, w)
		}
	}
}

func TestRunUntilQuit(t *testing.T) {
	g := snake.New(config.DefaultSnakeConfig())
	var out bytes.Buffer
	cfg := core.RuntimeConfig{Seed: 3, TickInterval: time.Millisecond}

	st, err := run(context.Background(), g, cfg, strings.NewReader("q"), &out, log.New(io.Discard))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !st.GameOver || st.Reason != string(snake.EndQuit) {
		t.Errorf("state = %+v, expected quit", st)
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Errorf("no frame was presented:\n%q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	g := snake.New(config.DefaultSnakeConfig())
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	cfg := core.RuntimeConfig{Seed: 3, TickInterval: time.Millisecond}
	st, err := run(ctx, g, cfg, pr, io.Discard, log.New(io.Discard))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("run() error = %v, expected deadline exceeded", err)
	}
	if st.GameOver {
		t.Error("idle snake should still be playing")
	}
}
