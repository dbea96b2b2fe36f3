package game

// Snake is the player-controlled head. It owns its body and is the only
// thing that moves during a tick.
type Snake struct {
	board Board
	cues  Cues

	pos     Position
	dir     Direction
	alive   bool
	moved   bool // debounce: set once the last accepted turn has been applied
	pending int
	body    Body
}

// NewSnake places a snake in the middle of the top row heading down.
func NewSnake(board Board, cues Cues) *Snake {
	if cues == nil {
		cues = Silent
	}
	return &Snake{
		board: board,
		cues:  cues,
		pos:   Position{board.Cols / 2, 0},
		dir:   Down,
		alive: true,
	}
}

func (s *Snake) Alive() bool          { return s.alive }
func (s *Snake) Position() Position   { return s.pos }
func (s *Snake) Direction() Direction { return s.dir }
func (s *Snake) Body() *Body          { return &s.body }
func (s *Snake) Pending() int         { return s.pending }

// Occupied lists the head followed by every body segment.
func (s *Snake) Occupied() []Position {
	return append([]Position{s.pos}, s.body.segs...)
}

// SetDirection turns the snake. Turns along the current axis and turns made
// before the previous one has moved the head are ignored.
func (s *Snake) SetDirection(d Direction) bool {
	if !s.alive || !s.moved || d.Vertical() == s.dir.Vertical() {
		return false
	}
	s.dir = d
	s.moved = false
	if d.Vertical() {
		s.cues.Play(TurnVertical)
	} else {
		s.cues.Play(TurnHorizontal)
	}
	return true
}

func (s *Snake) Grow() { s.pending++ }

func (s *Snake) Tick() {
	if !s.alive {
		return
	}
	if s.body.Follow(s.pos, s.pending > 0) {
		s.pending--
	}
	s.pos = s.pos.Add(s.dir.Delta())
	s.moved = true
	if !s.board.Contains(s.pos) || s.body.Contains(s.pos) {
		s.alive = false
	}
}
