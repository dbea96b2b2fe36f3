package game

import "testing"

func TestScoreRedrawsOnlyOnChange(t *testing.T) {
	var shown []int
	s := NewScore(ScoreDisplayFunc(func(total int) { shown = append(shown, total) }))
	s.Add(0)
	s.Add(-10)
	s.Add(5)
	s.Add(0)
	s.Add(50)
	want := []int{0, 5, 55}
	if len(shown) != len(want) {
		t.Fatalf("redraws = %v, want %v", shown, want)
	}
	for i := range want {
		if shown[i] != want[i] {
			t.Errorf("redraw %d = %d, want %d", i, shown[i], want[i])
		}
	}
	if s.Total() != 55 {
		t.Errorf("total = %d", s.Total())
	}
}

func TestScoreWithoutDisplay(t *testing.T) {
	s := NewScore(nil)
	s.Add(ApplePoints)
	if s.Total() != ApplePoints {
		t.Errorf("total = %d", s.Total())
	}
}
