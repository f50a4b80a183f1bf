package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// buildSnake constructs a snake with the given head-first body for collision
// and movement tests.
func buildSnake(dir Direction, body ...core.Point) *Snake {
	s := NewSnake(body[len(body)-1])
	for i := len(body) - 2; i >= 0; i-- {
		s.body.pushFront(body[i])
	}
	s.length = len(body)
	s.dir = dir
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(core.Point{X: 16, Y: 12})

	if s.Len() != 1 {
		t.Errorf("new snake has %d segments, expected 1", s.Len())
	}
	if s.Head() != (core.Point{X: 16, Y: 12}) {
		t.Errorf("head = %v, expected (16, 12)", s.Head())
	}
	if s.Direction() != DirRight {
		t.Errorf("initial direction = %v, expected right", s.Direction())
	}
	if s.Length() != 1 {
		t.Errorf("target length = %d, expected 1", s.Length())
	}
}

func TestSetPendingDirection(t *testing.T) {
	tests := []struct {
		name     string
		current  Direction
		pending  Direction
		expected Direction // Direction after commit
	}{
		{"right to up", DirRight, DirUp, DirUp},
		{"right to down", DirRight, DirDown, DirDown},
		{"right to left rejected", DirRight, DirLeft, DirRight},
		{"left to right rejected", DirLeft, DirRight, DirLeft},
		{"up to down rejected", DirUp, DirDown, DirUp},
		{"down to up rejected", DirDown, DirUp, DirDown},
		{"same direction allowed", DirUp, DirUp, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(core.Point{X: 5, Y: 5})
			s.dir = tc.current

			s.SetPendingDirection(tc.pending)
			s.CommitDirection()

			if s.Direction() != tc.expected {
				t.Errorf("direction after commit = %v, expected %v", s.Direction(), tc.expected)
			}
		})
	}
}

func TestCommitDirectionIsAtomic(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})

	// Queuing without committing leaves the current direction untouched
	s.SetPendingDirection(DirDown)
	if s.Direction() != DirRight {
		t.Errorf("direction changed before commit: %v", s.Direction())
	}

	s.CommitDirection()
	if s.Direction() != DirDown {
		t.Errorf("direction after commit = %v, expected down", s.Direction())
	}

	// A second commit with nothing queued is a no-op
	s.CommitDirection()
	if s.Direction() != DirDown {
		t.Errorf("empty commit changed direction to %v", s.Direction())
	}
}

func TestReversalRejectedMidBody(t *testing.T) {
	// Length-3 snake moving left; pending right must be ignored
	s := buildSnake(DirLeft,
		core.Point{X: 5, Y: 5},
		core.Point{X: 4, Y: 5},
		core.Point{X: 3, Y: 5},
	)

	s.SetPendingDirection(DirRight)
	s.CommitDirection()

	if s.Direction() != DirLeft {
		t.Errorf("direction = %v, expected left after rejected reversal", s.Direction())
	}
}

func TestAdvanceMovesHead(t *testing.T) {
	g := Grid{Width: 32, Height: 24}
	s := NewSnake(core.Point{X: 16, Y: 12})

	s.Advance(g)
	if s.Head() != (core.Point{X: 17, Y: 12}) {
		t.Errorf("head after advance = %v, expected (17, 12)", s.Head())
	}
	if s.Len() != 1 {
		t.Errorf("length-1 snake has %d segments after advance", s.Len())
	}
}

func TestAdvanceWrapsAllEdges(t *testing.T) {
	g := Grid{Width: 32, Height: 24}

	tests := []struct {
		name     string
		start    core.Point
		dir      Direction
		expected core.Point
	}{
		{"right edge wraps to column 0", core.Point{X: 31, Y: 12}, DirRight, core.Point{X: 0, Y: 12}},
		{"left edge wraps to last column", core.Point{X: 0, Y: 12}, DirLeft, core.Point{X: 31, Y: 12}},
		{"bottom edge wraps to row 0", core.Point{X: 16, Y: 23}, DirDown, core.Point{X: 16, Y: 0}},
		{"top edge wraps to last row", core.Point{X: 16, Y: 0}, DirUp, core.Point{X: 16, Y: 23}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(tc.start)
			s.dir = tc.dir
			s.Advance(g)
			if s.Head() != tc.expected {
				t.Errorf("head = %v, expected %v", s.Head(), tc.expected)
			}
		})
	}
}

func TestGrowTakesEffectOnAdvance(t *testing.T) {
	g := Grid{Width: 32, Height: 24}
	s := NewSnake(core.Point{X: 5, Y: 5})

	// Segment count never exceeds target length
	for i := 0; i < 10; i++ {
		s.Advance(g)
		if s.Len() > s.Length() {
			t.Fatalf("segment count %d exceeds target %d", s.Len(), s.Length())
		}
	}

	// Growing by k and advancing k times adds k segments
	const k = 3
	for i := 0; i < k; i++ {
		s.Grow()
	}
	for i := 0; i < k; i++ {
		s.Advance(g)
	}
	if s.Len() != 1+k {
		t.Errorf("after %d grows and advances, %d segments, expected %d", k, s.Len(), 1+k)
	}

	// Further advances keep the count capped at the target
	s.Advance(g)
	if s.Len() != 1+k {
		t.Errorf("segment count drifted to %d, expected %d", s.Len(), 1+k)
	}
}

func TestBodyFollowsHead(t *testing.T) {
	g := Grid{Width: 32, Height: 24}
	s := NewSnake(core.Point{X: 5, Y: 5})
	s.Grow()
	s.Grow()
	s.Advance(g)
	s.Advance(g)

	segs := s.Segments()
	expected := []core.Point{{X: 7, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}}
	if len(segs) != len(expected) {
		t.Fatalf("got %d segments, expected %d", len(segs), len(expected))
	}
	for i := range expected {
		if segs[i] != expected[i] {
			t.Errorf("segment %d = %v, expected %v", i, segs[i], expected[i])
		}
	}
}

func TestHasSelfCollision(t *testing.T) {
	tests := []struct {
		name     string
		body     []core.Point
		expected bool
	}{
		{
			name:     "single segment never collides",
			body:     []core.Point{{X: 5, Y: 5}},
			expected: false,
		},
		{
			name: "straight body does not collide",
			body: []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		},
		{
			name: "head on tail segment",
			body: []core.Point{
				{X: 5, Y: 5},
				{X: 5, Y: 6},
				{X: 5, Y: 5}, // Head duplicated at index 2
				{X: 4, Y: 5},
			},
			expected: true,
		},
		{
			name: "head on last segment",
			body: []core.Point{
				{X: 3, Y: 3},
				{X: 4, Y: 3},
				{X: 4, Y: 4},
				{X: 3, Y: 4},
				{X: 3, Y: 3},
			},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := buildSnake(DirRight, tc.body...)
			if got := s.HasSelfCollision(); got != tc.expected {
				t.Errorf("HasSelfCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestReset(t *testing.T) {
	s := buildSnake(DirUp,
		core.Point{X: 5, Y: 5},
		core.Point{X: 4, Y: 5},
		core.Point{X: 3, Y: 5},
	)
	s.SetPendingDirection(DirLeft)

	s.Reset(core.Point{X: 16, Y: 12})

	if s.Len() != 1 {
		t.Errorf("after reset, %d segments, expected 1", s.Len())
	}
	if s.Head() != (core.Point{X: 16, Y: 12}) {
		t.Errorf("after reset, head = %v, expected (16, 12)", s.Head())
	}
	if s.Direction() != DirRight {
		t.Errorf("after reset, direction = %v, expected right", s.Direction())
	}
	if s.Length() != 1 {
		t.Errorf("after reset, target length = %d, expected 1", s.Length())
	}

	// The pending direction was cleared
	s.CommitDirection()
	if s.Direction() != DirRight {
		t.Errorf("pending direction survived reset: %v", s.Direction())
	}
}

func TestOccupies(t *testing.T) {
	s := buildSnake(DirRight,
		core.Point{X: 5, Y: 5},
		core.Point{X: 4, Y: 5},
	)

	if !s.Occupies(core.Point{X: 5, Y: 5}) || !s.Occupies(core.Point{X: 4, Y: 5}) {
		t.Error("Occupies should cover every segment")
	}
	if s.Occupies(core.Point{X: 6, Y: 5}) {
		t.Error("Occupies reported a free cell")
	}
}

func TestSegmentDequeGrowth(t *testing.T) {
	g := Grid{Width: 100, Height: 100}
	s := NewSnake(core.Point{X: 0, Y: 50})

	// Grow well past the initial ring capacity
	for i := 0; i < 50; i++ {
		s.Grow()
		s.Advance(g)
	}

	if s.Len() != 51 {
		t.Fatalf("snake has %d segments, expected 51", s.Len())
	}

	// Consecutive segments differ by exactly one grid step
	segs := s.Segments()
	for i := 1; i < len(segs); i++ {
		dx := core.Abs(segs[i].X - segs[i-1].X)
		dy := core.Abs(segs[i].Y - segs[i-1].Y)
		if dx+dy != 1 {
			t.Errorf("segments %d and %d are not adjacent: %v -> %v", i-1, i, segs[i-1], segs[i])
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
	}
}
