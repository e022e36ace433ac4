package game

// Snake is the player body: an ordered run of grid cells, head first,
// tail last. Continuous elapsed time accumulates in acc and is spent one
// whole cell at a time, so segments stay exactly one cell apart and land
// on the grid no matter how uneven the caller's frame timing is.
type Snake struct {
	cells []Cell // head first; length >= 1 always
	dir   Direction
	speed float64 // px/s
	acc   float64 // leftover sub-cell distance; 0 <= acc < cell size after Update

	pendingGrowth int // segments still owed by eaten fruit

	cfg Config
}

// NewSnake builds the initial snake for a validated config: head at the
// horizontal center, body stacked upward from it, direction down.
func NewSnake(cfg Config) *Snake {
	s := &Snake{cfg: cfg}
	s.init()
	return s
}

func (s *Snake) init() {
	centerCol := cellOf(s.cfg.PlayWidth/2, s.cfg.CellSize)
	cells := make([]Cell, s.cfg.SnakeLength)
	for i := range cells {
		// Head sits SnakeLength rows down; the body fills the rows above.
		cells[i] = Cell{Col: centerCol, Row: s.cfg.SnakeLength - i}
	}
	s.cells = cells
	s.dir = DirDown
	s.speed = s.cfg.SnakeSpeed
	s.acc = 0
	s.pendingGrowth = 0
}

// Reset restores the initial layout, direction and speed, discarding any
// accumulated motion and pending growth.
func (s *Snake) Reset() {
	s.init()
}

func (s *Snake) Head() Cell {
	s.mustHaveBody()
	return s.cells[0]
}

// Cells returns a copy of the occupied cells, head first. Mutating the
// returned slice does not affect the snake.
func (s *Snake) Cells() []Cell {
	s.mustHaveBody()
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

func (s *Snake) Len() int { return len(s.cells) }

func (s *Snake) Dir() Direction { return s.dir }

// Update advances the snake by dt seconds. The loop may step several
// cells in one call when dt covers them, so a slow frame never loses
// distance. Non-positive dt is a no-op.
func (s *Snake) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.mustHaveBody()
	s.acc += s.speed * dt
	size := float64(s.cfg.CellSize)
	for s.acc >= size {
		s.advance(true)
		s.acc -= size
	}
}

// advance moves the head one cell in the current direction. When
// consumeGrowth is set and growth is pending, the tail is kept and one
// pending segment is consumed; otherwise the tail is dropped.
func (s *Snake) advance(consumeGrowth bool) {
	head := s.cells[0].Add(s.dir)
	if consumeGrowth && s.pendingGrowth > 0 {
		s.pendingGrowth--
		s.cells = append([]Cell{head}, s.cells...)
		return
	}
	s.cells = append([]Cell{head}, s.cells[:len(s.cells)-1]...)
}

// ChangeDirection applies a steering request. A 180° reversal is ignored.
// Repeating the current direction is a boost: one immediate unconditional
// cell step that bypasses the time accumulator and never consumes pending
// growth. Any other direction takes effect on subsequent updates.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	if d == s.dir {
		s.mustHaveBody()
		s.advance(false)
		return
	}
	s.dir = d
}

// Grow adds one segment of pending growth; it materializes on future
// update steps, never retroactively.
func (s *Snake) Grow() {
	s.pendingGrowth++
}

// HitsWall reports whether the head's box extends outside the play field.
func (s *Snake) HitsWall() bool {
	h := s.Head()
	return h.Col < 0 || h.Col > s.cfg.MaxCol() || h.Row < 0 || h.Row > s.cfg.MaxRow()
}

// HitsSelf reports whether the head's box overlaps any other segment's box.
func (s *Snake) HitsSelf() bool {
	if len(s.cells) <= 1 {
		return false
	}
	head := s.cells[0].Rect(s.cfg.CellSize)
	for _, c := range s.cells[1:] {
		if head.Intersects(c.Rect(s.cfg.CellSize)) {
			return true
		}
	}
	return false
}

// mustHaveBody guards the length >= 1 invariant. An empty body is a
// programming defect, not a game condition.
func (s *Snake) mustHaveBody() {
	if len(s.cells) == 0 {
		panic("snake body is empty")
	}
}
