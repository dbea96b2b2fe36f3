package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"snakearcade/internal/record"
)

type stubRecorder struct {
	saved []record.Session
	err   error
}

func (r *stubRecorder) Save(rec record.Session) error {
	r.saved = append(r.saved, rec)
	return r.err
}

func newTestSession(rec Recorder) *Session {
	s := NewSession(Options{
		Board:    testBoard,
		Recorder: rec,
		Rand:     rand.New(rand.NewSource(42)),
		Now:      func() time.Time { return time.Date(2024, time.May, 1, 18, 30, 0, 0, time.Local) },
	})
	// Park the first apple away from the snake's path.
	s.apple.spawnAt(Position{1, 11})
	return s
}

func TestSessionEndToEnd(t *testing.T) {
	rec := &stubRecorder{}
	s := newTestSession(rec)
	dt := 100 * time.Millisecond

	steps := [][]Input{nil, {InputRight}, {InputRight}, {InputDown}}
	for _, in := range steps {
		if over, err := s.Step(dt, in); over || err != nil {
			t.Fatalf("early end: %v %v", over, err)
		}
	}
	if s.Snake().Position() != (Position{8, 2}) {
		t.Fatalf("head at %v, want {8 2}", s.Snake().Position())
	}

	s.apple.spawnAt(Position{8, 3})
	s.Step(dt, nil) // head moves onto the apple
	s.Step(dt, nil) // apple is eaten, body materialises
	if got := s.Score().Total(); got != 50 {
		t.Fatalf("score = %d, want 50", got)
	}
	if got := s.Snake().Body().Len(); got != 1 {
		t.Fatalf("body length = %d, want 1", got)
	}

	var over bool
	var err error
	n := 0
	for !over && n < 20 {
		over, err = s.Step(dt, nil)
		n++
	}
	if err != nil {
		t.Fatal(err)
	}
	if !over || s.Snake().Alive() {
		t.Fatal("snake should have hit the bottom wall")
	}
	if n != 9 {
		t.Errorf("died after %d more steps, want 9", n)
	}

	want := record.Session{Date: "2024/05/01", Seconds: 1, Score: 50}
	if len(rec.saved) != 1 || rec.saved[0] != want {
		t.Fatalf("saved %+v, want [%+v]", rec.saved, want)
	}
	if s.Result() != want {
		t.Errorf("Result = %+v", s.Result())
	}

	// Finished sessions stay finished.
	if over, err := s.Step(dt, []Input{InputLeft}); !over || err != nil {
		t.Errorf("Step after end = %v %v", over, err)
	}
	if len(rec.saved) != 1 || s.Score().Total() != 50 {
		t.Error("a finished session kept running")
	}
}

func TestSurvivalBonus(t *testing.T) {
	s := newTestSession(nil)
	dt := 500 * time.Millisecond
	totals := map[int]int{5: 0, 6: 5, 11: 5, 12: 10}
	for i := 1; i <= 12; i++ {
		if over, _ := s.Step(dt, nil); over {
			t.Fatalf("died at step %d", i)
		}
		if want, ok := totals[i]; ok && s.Score().Total() != want {
			t.Errorf("step %d: score %d, want %d", i, s.Score().Total(), want)
		}
	}
	over, _ := s.Step(dt, nil)
	if !over {
		t.Fatal("expected death at the bottom wall")
	}
	if s.Score().Total() != 10 || s.Result().Seconds != 6 {
		t.Errorf("result %+v", s.Result())
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	s := NewSession(Options{Board: testBoard, Rand: rand.New(rand.NewSource(9))})
	rng := rand.New(rand.NewSource(10))
	inputs := []Input{InputUp, InputDown, InputLeft, InputRight}
	last := 0
	for i := 0; i < 200; i++ {
		over, _ := s.Step(250*time.Millisecond, []Input{inputs[rng.Intn(len(inputs))]})
		if s.Score().Total() < last {
			t.Fatalf("score dropped from %d to %d", last, s.Score().Total())
		}
		last = s.Score().Total()
		if over {
			break
		}
	}
}

func TestQuitSkipsPersistence(t *testing.T) {
	rec := &stubRecorder{}
	s := newTestSession(rec)
	_, err := s.Step(100*time.Millisecond, []Input{InputQuit})
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if len(rec.saved) != 0 {
		t.Error("quit must not save")
	}
}

func TestRecorderErrorStillEndsSession(t *testing.T) {
	boom := errors.New("disk full")
	rec := &stubRecorder{err: boom}
	s := newTestSession(rec)
	var err error
	for i := 0; i < 20 && !s.Over(); i++ {
		_, err = s.Step(100*time.Millisecond, nil)
	}
	if !s.Over() {
		t.Fatal("session never ended")
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestFirstAppleAvoidsSnake(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := NewSession(Options{Board: testBoard, Rand: rand.New(rand.NewSource(seed))})
		a := s.Apple()
		if !a.Present() {
			t.Fatalf("seed %d: no apple at start", seed)
		}
		if a.Position() == s.Snake().Position() || !testBoard.Interior(a.Position()) {
			t.Fatalf("seed %d: bad first apple %v", seed, a.Position())
		}
	}
}

func TestTickLengthSumsExactly(t *testing.T) {
	for _, tps := range []int{6, 7, 60} {
		var sum time.Duration
		for n := int64(0); n < int64(tps)*3; n++ {
			sum += TickLength(n, tps)
		}
		if sum != 3*time.Second {
			t.Errorf("%d tps: 3s of ticks sum to %v", tps, sum)
		}
	}
}

// At the default six ticks a second, whole-second marks land on exact ticks.
func TestSessionTimingAtGameRate(t *testing.T) {
	// 37 rows: heading down from row 0 the snake is alive for 36 ticks.
	board := NewBoard(40*49, 37*49, 49)
	s := NewSession(Options{
		Board: board,
		Rand:  rand.New(rand.NewSource(5)),
		Now:   func() time.Time { return time.Date(2024, time.May, 2, 0, 0, 0, 0, time.Local) },
	})
	// Put the apple right under the head so it is eaten on the second tick.
	s.apple.spawnAt(Position{board.Cols / 2, 1})

	const tps = 6
	for n := int64(0); n < 36; n++ {
		tick := n + 1
		if over, err := s.Step(TickLength(n, tps), nil); over || err != nil {
			t.Fatalf("tick %d: over=%v err=%v", tick, over, err)
		}
		switch tick {
		case 17:
			if s.Score().Total() != ApplePoints {
				t.Errorf("tick 17: score %d, want %d", s.Score().Total(), ApplePoints)
			}
		case 18:
			if s.Score().Total() != ApplePoints+BonusPoints {
				t.Errorf("tick 18: score %d, want %d", s.Score().Total(), ApplePoints+BonusPoints)
			}
		case 29:
			if s.Apple().Present() {
				t.Error("apple back before its timer ran out")
			}
		case 30:
			if !s.Apple().Present() || s.Apple().Timer() != SpawnInterval {
				t.Errorf("tick 30: present=%v timer=%v", s.Apple().Present(), s.Apple().Timer())
			}
		}
	}
	if s.Elapsed() != 6*time.Second {
		t.Fatalf("elapsed %v after 36 ticks", s.Elapsed())
	}

	over, err := s.Step(TickLength(36, tps), nil)
	if !over || err != nil {
		t.Fatalf("expected death at the bottom wall, over=%v err=%v", over, err)
	}
	if s.Result().Seconds != 6 {
		t.Errorf("recorded %d seconds, want 6", s.Result().Seconds)
	}
}
