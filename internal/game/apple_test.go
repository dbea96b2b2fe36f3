package game

import (
	"math/rand"
	"testing"
	"time"
)

func TestSpawnAvoidsSnakeEdgeAndPreviousCell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var occupied []Position
	for x := 1; x <= 11; x++ {
		occupied = append(occupied, Position{x, 5})
	}
	a := NewApple(testBoard, rng, nil)
	for i := 0; i < 500; i++ {
		prev, hadPrev := a.Position(), a.placed
		if !a.TrySpawn(occupied) {
			t.Fatal("spawn failed on a mostly empty board")
		}
		p := a.Position()
		if !testBoard.Interior(p) {
			t.Fatalf("spawned on the edge at %v", p)
		}
		for _, o := range occupied {
			if o == p {
				t.Fatalf("spawned on the snake at %v", p)
			}
		}
		if hadPrev && p == prev {
			t.Fatalf("spawned twice in a row at %v", p)
		}
	}
}

func TestSpawnOnCrowdedBoard(t *testing.T) {
	board := Board{Cols: 4, Rows: 4, Cell: 10} // interior is 2x2
	a := NewApple(board, rand.New(rand.NewSource(1)), nil)

	occupied := []Position{{1, 1}, {2, 1}, {1, 2}}
	if !a.TrySpawn(occupied) || a.Position() != (Position{2, 2}) {
		t.Fatalf("expected the only free cell, got %v", a.Position())
	}
	// The previous cell is the only free one: reuse it rather than fail.
	if !a.TrySpawn(occupied) || a.Position() != (Position{2, 2}) {
		t.Fatalf("expected a reuse of {2 2}, got %v", a.Position())
	}
	occupied = append(occupied, Position{2, 2})
	a.present = false
	if a.TrySpawn(occupied) {
		t.Fatal("spawned on a full board")
	}
}

func TestAppleEatenBySnake(t *testing.T) {
	var cues cueLog
	s := NewSnake(testBoard, nil)
	score := NewScore(nil)
	a := NewApple(testBoard, rand.New(rand.NewSource(1)), &cues)
	a.spawnAt(Position{6, 1})
	s.Tick()

	if !a.Update(s, score) {
		t.Fatal("apple under the head was not eaten")
	}
	if a.Present() || score.Total() != ApplePoints || s.Pending() != 1 {
		t.Errorf("present %v score %d pending %d", a.Present(), score.Total(), s.Pending())
	}
	if cues[len(cues)-1] != AppleEaten {
		t.Errorf("last cue %v, want %v", cues[len(cues)-1], AppleEaten)
	}
	if a.Update(s, score) {
		t.Error("eaten twice")
	}
}

func TestDeadSnakeCannotEat(t *testing.T) {
	s := NewSnake(testBoard, nil)
	s.alive = false
	score := NewScore(nil)
	a := NewApple(testBoard, nil, nil)
	a.spawnAt(s.Position())
	if a.Update(s, score) || score.Total() != 0 {
		t.Error("a dead snake ate the apple")
	}
}

func TestRespawnTimer(t *testing.T) {
	s := NewSnake(testBoard, nil)
	score := NewScore(nil)
	a := NewApple(testBoard, rand.New(rand.NewSource(3)), nil)
	if a.Timer() != SpawnInterval {
		t.Fatalf("timer starts at %v", a.Timer())
	}

	step := time.Second
	for i := 0; i < 4; i++ {
		a.Countdown(step)
		a.Update(s, score)
		if a.Present() {
			t.Fatalf("spawned after %v", time.Duration(i+1)*step)
		}
	}
	a.Countdown(step)
	a.Update(s, score)
	if !a.Present() {
		t.Fatal("no spawn once the timer ran out")
	}
	if a.Timer() != SpawnInterval {
		t.Errorf("timer not reset: %v", a.Timer())
	}

	// The timer resets even when an apple is already on the board.
	pos := a.Position()
	for i := 0; i < 5; i++ {
		a.Countdown(step)
		a.Update(s, score)
	}
	if a.Position() != pos || a.Timer() != SpawnInterval {
		t.Errorf("present apple moved to %v or timer %v", a.Position(), a.Timer())
	}
}
