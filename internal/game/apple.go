package game

import (
	"math/rand"
	"time"
)

const SpawnInterval = 5 * time.Second

// Apple is the single collectible on the board.
type Apple struct {
	board Board
	rng   *rand.Rand
	cues  Cues

	pos     Position
	placed  bool // pos holds a previous spawn
	present bool
	timer   time.Duration
}

func NewApple(board Board, rng *rand.Rand, cues Cues) *Apple {
	if cues == nil {
		cues = Silent
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Apple{board: board, rng: rng, cues: cues, timer: SpawnInterval}
}

func (a *Apple) Present() bool        { return a.present }
func (a *Apple) Position() Position   { return a.pos }
func (a *Apple) Timer() time.Duration { return a.timer }

func (a *Apple) Countdown(dt time.Duration) { a.timer -= dt }

// TrySpawn moves the apple to a random interior cell that is not occupied
// and, when any other cell is free, not the cell it last sat on.
func (a *Apple) TrySpawn(occupied []Position) bool {
	taken := make(map[Position]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}
	cols, rows := a.board.Cols-2, a.board.Rows-2
	if cols <= 0 || rows <= 0 {
		return false
	}
	ok := func(p Position) bool {
		return !taken[p] && !(a.placed && p == a.pos)
	}

	for i := 0; i < 4*cols*rows; i++ {
		p := Position{1 + a.rng.Intn(cols), 1 + a.rng.Intn(rows)}
		if ok(p) {
			return a.spawnAt(p)
		}
	}

	// Crowded board: pick among what is actually free.
	var free []Position
	for y := 1; y <= rows; y++ {
		for x := 1; x <= cols; x++ {
			if p := (Position{x, y}); ok(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) > 0 {
		return a.spawnAt(free[a.rng.Intn(len(free))])
	}
	if a.placed && !taken[a.pos] && a.board.Interior(a.pos) {
		return a.spawnAt(a.pos)
	}
	return false
}

func (a *Apple) spawnAt(p Position) bool {
	a.pos = p
	a.placed = true
	a.present = true
	a.cues.Play(AppleSpawn)
	return true
}

// Update lets the snake eat the apple and respawns it once the timer runs out.
func (a *Apple) Update(s *Snake, score *Score) bool {
	eaten := false
	if a.present && s.Alive() && s.Position() == a.pos {
		s.Grow()
		a.present = false
		a.cues.Play(AppleEaten)
		score.Add(ApplePoints)
		eaten = true
	}
	if a.timer <= 0 {
		if !a.present {
			a.TrySpawn(s.Occupied())
		}
		a.timer = SpawnInterval
	}
	return eaten
}
