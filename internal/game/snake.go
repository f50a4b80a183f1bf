package game

import "github.com/vovakirdan/tui-snake/internal/core"

// segmentDeque is a double-ended ring buffer of body cells, head first.
// Advancing the snake is a push at the front and a pop at the back, so a
// ring avoids reallocating the body every tick.
type segmentDeque struct {
	buf  []core.Point
	head int
	n    int
}

func newSegmentDeque(capacity int) segmentDeque {
	if capacity < 1 {
		capacity = 1
	}
	return segmentDeque{buf: make([]core.Point, capacity)}
}

func (d *segmentDeque) len() int {
	return d.n
}

// at returns the i-th segment counting from the head.
func (d *segmentDeque) at(i int) core.Point {
	return d.buf[(d.head+i)%len(d.buf)]
}

func (d *segmentDeque) pushFront(p core.Point) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = core.Mod(d.head-1, len(d.buf))
	d.buf[d.head] = p
	d.n++
}

func (d *segmentDeque) popBack() {
	if d.n > 0 {
		d.n--
	}
}

// grow doubles the buffer, relocating segments to the start.
func (d *segmentDeque) grow() {
	next := make([]core.Point, core.Max(1, len(d.buf)*2))
	for i := 0; i < d.n; i++ {
		next[i] = d.at(i)
	}
	d.buf = next
	d.head = 0
}

// reset discards the body, leaving a single segment at p.
func (d *segmentDeque) reset(p core.Point) {
	d.head = 0
	d.n = 1
	d.buf[0] = p
}

// Snake holds the body segments (head first), the current direction, and an
// optional pending direction queued by input. All operations are synchronous
// and called from the single tick loop.
type Snake struct {
	body    segmentDeque
	dir     Direction
	pending Direction
	queued  bool
	length  int // Target length; Advance trims the tail beyond it
}

// NewSnake creates a single-segment snake at start, moving Right.
func NewSnake(start core.Point) *Snake {
	s := &Snake{body: newSegmentDeque(16)}
	s.Reset(start)
	return s
}

// SetPendingDirection queues d to take effect at the next CommitDirection.
// A reversal of the current direction is rejected as a no-op, so the snake
// can never fold back onto its own neck within one tick.
func (s *Snake) SetPendingDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pending = d
	s.queued = true
}

// CommitDirection promotes the queued direction, if any, to the current one.
// Called once per tick before Advance so a turn applies atomically.
func (s *Snake) CommitDirection() {
	if s.queued {
		s.dir = s.pending
		s.queued = false
	}
}

// Advance moves the snake one cell in the current direction, wrapping around
// grid edges. The new head is prepended; the tail is trimmed when the body
// exceeds the target length (i.e. unless a Grow is pending).
func (s *Snake) Advance(g Grid) {
	newHead := g.Wrap(s.Head().Add(s.dir.Vector()))
	s.body.pushFront(newHead)
	if s.body.len() > s.length {
		s.body.popBack()
	}
}

// Head returns the current head position.
func (s *Snake) Head() core.Point {
	return s.body.at(0)
}

// HasSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for i := 1; i < s.body.len(); i++ {
		if s.body.at(i) == head {
			return true
		}
	}
	return false
}

// Grow increments the target length. The body catches up on the next
// Advance, since tail trimming is conditioned on the target.
func (s *Snake) Grow() {
	s.length++
}

// Reset restores the snake to a single segment at start, moving Right with
// no pending direction.
func (s *Snake) Reset(start core.Point) {
	s.body.reset(start)
	s.dir = DirRight
	s.queued = false
	s.length = 1
}

// Len returns the current segment count.
func (s *Snake) Len() int {
	return s.body.len()
}

// Length returns the target length.
func (s *Snake) Length() int {
	return s.length
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Occupies reports whether any segment sits on p. Used as the food
// relocation exclusion predicate.
func (s *Snake) Occupies(p core.Point) bool {
	for i := 0; i < s.body.len(); i++ {
		if s.body.at(i) == p {
			return true
		}
	}
	return false
}

// Segments returns a head-first copy of the body.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, s.body.len())
	for i := range out {
		out[i] = s.body.at(i)
	}
	return out
}

// Render draws the snake onto the screen, head and body in distinct glyphs.
func (s *Snake) Render(dst *core.Screen, l Layout, th Theme) {
	for i := 0; i < s.body.len(); i++ {
		glyph := th.BodyGlyph
		if i == 0 {
			glyph = th.HeadGlyph
		}
		l.DrawCell(dst, s.body.at(i), glyph, th.SnakeColor)
	}
}
