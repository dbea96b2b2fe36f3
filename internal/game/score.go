package game

import "time"

const (
	ApplePoints   = 50
	BonusPoints   = 5
	BonusInterval = 3 * time.Second
)

// ScoreDisplay redraws the score. Redrawing is expensive, so it is only
// called when the total actually changed.
type ScoreDisplay interface {
	ShowScore(total int)
}

type ScoreDisplayFunc func(total int)

func (f ScoreDisplayFunc) ShowScore(total int) { f(total) }

type Score struct {
	total   int
	shown   int
	display ScoreDisplay
}

func NewScore(display ScoreDisplay) *Score {
	s := &Score{display: display}
	if display != nil {
		display.ShowScore(0)
	}
	return s
}

func (s *Score) Total() int { return s.total }

// Add credits points. Negative deltas are ignored so the score never drops.
func (s *Score) Add(points int) {
	if points < 0 {
		return
	}
	s.total += points
	if s.total == s.shown {
		return
	}
	s.shown = s.total
	if s.display != nil {
		s.display.ShowScore(s.total)
	}
}
