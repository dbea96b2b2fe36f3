// Package record persists finished games: the last session played and the
// top-ten leaderboard, both as flat JSON files.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006/01/02"

// Session summarises one finished game.
type Session struct {
	Date    string `json:"Date"`
	Seconds int    `json:"Time Played (in seconds)"`
	Score   int    `json:"Score"`
}

func NewSession(date time.Time, played time.Duration, score int) Session {
	return Session{
		Date:    date.Format(DateLayout),
		Seconds: int(played / time.Second),
		Score:   score,
	}
}

// Places are the leaderboard keys, best first.
var Places = [10]string{
	"First Place", "Second Place", "Third Place", "Fourth Place", "Fifth Place",
	"Sixth Place", "Seventh Place", "Eighth Place", "Ninth Place", "Tenth Place",
}

var ErrMissingPlace = errors.New("leaderboard: missing place")

// Leaderboard holds the ten ranked entries, index 0 being First Place.
type Leaderboard [10]Session

// MarshalJSON keeps the places in rank order.
func (lb Leaderboard) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, place := range Places {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(place)
		buf.Write(key)
		buf.WriteByte(':')
		entry, err := json.Marshal(lb[i])
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (lb *Leaderboard) UnmarshalJSON(data []byte) error {
	var raw map[string]Session
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var missing []string
	for i, place := range Places {
		entry, ok := raw[place]
		if !ok {
			missing = append(missing, place)
			continue
		}
		lb[i] = entry
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingPlace, strings.Join(missing, ", "))
	}
	return nil
}

// Policy decides what happens to the entry a new score beats.
type Policy int

const (
	// PolicyShift inserts the new entry and pushes lower ranks down.
	PolicyShift Policy = iota
	// PolicyReplace overwrites the beaten entry in place.
	PolicyReplace
)

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shift":
		return PolicyShift, nil
	case "replace":
		return PolicyReplace, nil
	}
	return 0, fmt.Errorf("unknown leaderboard policy %q", s)
}

func (p Policy) String() string {
	if p == PolicyReplace {
		return "replace"
	}
	return "shift"
}

// Update scans from First Place down and stops at the first entry whose
// score rec strictly beats. It returns that rank (0-based) and whether the
// board changed.
func (lb *Leaderboard) Update(rec Session, p Policy) (int, bool) {
	for i := range lb {
		if rec.Score <= lb[i].Score {
			continue
		}
		if p == PolicyShift {
			copy(lb[i+1:], lb[i:len(lb)-1])
		}
		lb[i] = rec
		return i, true
	}
	return -1, false
}
