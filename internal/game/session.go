package game

import (
	"fmt"
	"math/rand"
	"time"

	"snakearcade/internal/record"
)

type Input int

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputQuit
)

func (in Input) direction() Direction {
	switch in {
	case InputUp:
		return Up
	case InputDown:
		return Down
	case InputLeft:
		return Left
	}
	return Right
}

// Recorder persists the summary of a finished session.
type Recorder interface {
	Save(rec record.Session) error
}

type Options struct {
	Board    Board
	Cues     Cues
	Display  ScoreDisplay
	Recorder Recorder
	Rand     *rand.Rand
	Now      func() time.Time
}

// Session runs one game from a fresh snake until it dies.
type Session struct {
	opts  Options
	snake *Snake
	apple *Apple
	score *Score

	elapsed time.Duration
	bonus   time.Duration
	over    bool
	result  record.Session
}

func NewSession(opts Options) *Session {
	if opts.Cues == nil {
		opts.Cues = Silent
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{
		opts:  opts,
		snake: NewSnake(opts.Board, opts.Cues),
		apple: NewApple(opts.Board, opts.Rand, opts.Cues),
		score: NewScore(opts.Display),
	}
	s.apple.TrySpawn(s.snake.Occupied())
	return s
}

func (s *Session) Snake() *Snake          { return s.snake }
func (s *Session) Apple() *Apple          { return s.apple }
func (s *Session) Score() *Score          { return s.score }
func (s *Session) Elapsed() time.Duration { return s.elapsed }
func (s *Session) Over() bool             { return s.over }
func (s *Session) Result() record.Session { return s.result }

// TickLength is the duration of tick n, counting from 0, at tps ticks per
// second. Consecutive lengths always sum to a whole n/tps seconds, which a
// repeated time.Second/tps does not.
func TickLength(n int64, tps int) time.Duration {
	r := time.Duration(tps)
	return time.Duration(n+1)*time.Second/r - time.Duration(n)*time.Second/r
}

// Step advances the session by one tick of length dt. It reports true once
// the snake has died and the result has been handed to the recorder.
func (s *Session) Step(dt time.Duration, inputs []Input) (bool, error) {
	if s.over {
		return true, nil
	}

	s.apple.Countdown(dt)
	s.apple.Update(s.snake, s.score)

	for _, in := range inputs {
		if in == InputQuit {
			return false, ErrQuit
		}
		s.snake.SetDirection(in.direction())
	}

	s.bonus += dt
	for s.bonus >= BonusInterval {
		s.bonus -= BonusInterval
		if s.snake.Alive() {
			s.score.Add(BonusPoints)
		}
	}

	s.snake.Tick()
	if s.snake.Alive() {
		s.elapsed += dt
		return false, nil
	}
	return true, s.finish()
}

func (s *Session) finish() error {
	s.over = true
	s.result = record.NewSession(s.opts.Now(), s.elapsed, s.score.Total())
	if s.opts.Recorder == nil {
		return nil
	}
	if err := s.opts.Recorder.Save(s.result); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
