package term

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gdamore/tcell/v2"

	"snakearcade/internal/asset"
	"snakearcade/internal/flow"
	"snakearcade/internal/game"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	term := New(screen, Options{
		Board:   game.NewBoard(640, 640, 49),
		Rand:    rand.New(rand.NewSource(3)),
		GameTPS: 6,
		MenuTPS: 60,
	})
	return term, screen
}

func line(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestRulesScreen(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.Draw()
	if got := line(screen, 1); !strings.Contains(got, "RULES") {
		t.Errorf("first line %q", got)
	}
	if got := line(screen, 22); !strings.Contains(got, flow.PromptContinue) {
		t.Errorf("prompt line %q", got)
	}
}

func TestKeysAdvanceIntoPlay(t *testing.T) {
	term, screen := newTestTerminal(t)
	for i := 0; i < 3; i++ {
		if quit, err := term.Handle(key('x')); quit || err != nil {
			t.Fatalf("quit=%v err=%v", quit, err)
		}
	}
	if term.Director().Scene().Kind() != flow.KindPlay {
		t.Fatalf("scene %v", term.Director().Scene().Kind())
	}
	term.Draw()

	// The head starts in the middle column of the top row.
	if r, _, _, _ := screen.GetContent(1+6*2, 1); r != glyphSnake {
		t.Errorf("head cell %q", r)
	}
	if got := line(screen, 15); !strings.HasPrefix(got, "Score: 0") {
		t.Errorf("score line %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	term, _ := newTestTerminal(t)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if quit, err := term.Handle(ev); !quit || err != nil {
			t.Errorf("%v: quit=%v err=%v", ev.Name(), quit, err)
		}
	}
}

func TestMapKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want flow.Key
	}{
		{key('w'), flow.KeyUp},
		{key('A'), flow.KeyLeft},
		{key('s'), flow.KeyDown},
		{key('d'), flow.KeyRight},
		{key('q'), flow.KeyOther},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), flow.KeyUp},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), flow.KeyRight},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), flow.KeyOther},
	}
	for _, c := range cases {
		if got := mapKey(c.ev); got != c.want {
			t.Errorf("%s: got %v want %v", c.ev.Name(), got, c.want)
		}
	}
}

func TestGameOverOverlay(t *testing.T) {
	term, screen := newTestTerminal(t)
	for i := 0; i < 3; i++ {
		term.Handle(key(' '))
	}
	for i := 0; i < 100 && term.Director().Scene().Kind() == flow.KindPlay; i++ {
		if err := term.Director().Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if term.Director().Scene().Kind() != flow.KindGameOver {
		t.Fatalf("scene %v", term.Director().Scene().Kind())
	}
	term.Draw()
	found := false
	for y := 0; y < 15; y++ {
		if strings.Contains(line(screen, y), flow.GameOverText) {
			found = true
		}
	}
	if !found {
		t.Error("game over text not drawn")
	}
}

// wavBytes builds a 16-bit mono PCM file of n silent samples.
func wavBytes(rate, n int) []byte {
	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("RIFF")
	binary.Write(&b, le, uint32(36+n*2))
	b.WriteString("WAVEfmt ")
	binary.Write(&b, le, uint32(16))
	binary.Write(&b, le, uint16(1))
	binary.Write(&b, le, uint16(1))
	binary.Write(&b, le, uint32(rate))
	binary.Write(&b, le, uint32(rate*2))
	binary.Write(&b, le, uint16(2))
	binary.Write(&b, le, uint16(16))
	b.WriteString("data")
	binary.Write(&b, le, uint32(n*2))
	b.Write(make([]byte, n*2))
	return b.Bytes()
}

func TestLoadSounds(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, spec := range flow.Sounds {
		fsys[asset.SoundDir+"/"+spec.File] = &fstest.MapFile{Data: wavBytes(22050, 441)}
	}
	s, err := LoadSounds(asset.NewLoader(fsys))
	if err != nil {
		t.Fatal(err)
	}
	for cue, spec := range flow.Sounds {
		c, ok := s.clips[cue]
		if !ok {
			t.Fatalf("%v not loaded", cue)
		}
		if c.buf.Len() != 441 || c.volume != spec.Volume {
			t.Errorf("%v: %d samples at volume %v", cue, c.buf.Len(), c.volume)
		}
	}
	// Without an audio device playing is a no-op.
	s.Play(game.AppleEaten)
}

func TestLoadSoundsRejectsGarbage(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, spec := range flow.Sounds {
		fsys[asset.SoundDir+"/"+spec.File] = &fstest.MapFile{Data: []byte("not a wav")}
	}
	_, err := LoadSounds(asset.NewLoader(fsys))
	if _, ok := err.(*asset.LoadError); !ok {
		t.Fatalf("got %v, want *asset.LoadError", err)
	}
}

func TestTickerRateFollowsScene(t *testing.T) {
	term, _ := newTestTerminal(t)
	if r := term.Director().Scene().TPS(); r != 60 {
		t.Fatalf("menu rate %d", r)
	}
	for i := 0; i < 3; i++ {
		term.Handle(key(' '))
	}
	if r := term.Director().Scene().TPS(); r != 6 {
		t.Fatalf("play rate %d", r)
	}
}

func TestPumpStopsWhenRunReturns(t *testing.T) {
	_, screen := newTestTerminal(t)
	if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatal(err)
	}
	events := make(chan tcell.Event)
	done := make(chan struct{})
	go pump(screen, events, done)
	close(done)

	// Nobody reads events yet, so the pump can only leave through done.
	time.Sleep(50 * time.Millisecond)
	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("event delivered after done")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pump still blocked after done was closed")
	}
}
