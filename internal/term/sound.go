package term

import (
	"bytes"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"

	"snakearcade/internal/asset"
	"snakearcade/internal/flow"
	"snakearcade/internal/game"
)

const sampleRate = beep.SampleRate(44100)

type clip struct {
	buf    *beep.Buffer
	volume float64
}

// Sounds plays the gameplay cues through the beep speaker. Until Init
// succeeds every Play is silent.
type Sounds struct {
	clips map[game.Cue]clip
	live  bool
}

func LoadSounds(loader *asset.Loader) (*Sounds, error) {
	s := &Sounds{clips: make(map[game.Cue]clip, len(flow.Sounds))}
	for cue, spec := range flow.Sounds {
		data, err := loader.Sound(spec.File)
		if err != nil {
			return nil, err
		}
		stream, format, err := wav.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, &asset.LoadError{Kind: "sound", Name: asset.SoundDir + "/" + spec.File, Err: err}
		}
		buf := beep.NewBuffer(format)
		buf.Append(stream)
		stream.Close()
		s.clips[cue] = clip{buf: buf, volume: spec.Volume}
	}
	return s, nil
}

// Init opens the audio device. A failure leaves the game silent.
func (s *Sounds) Init() {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, playing silently")
		return
	}
	s.live = true
}

func (s *Sounds) Close() {
	if s.live {
		speaker.Close()
		s.live = false
	}
}

func (s *Sounds) Play(cue game.Cue) {
	c, ok := s.clips[cue]
	if !ok || !s.live {
		return
	}
	var st beep.Streamer = c.buf.Streamer(0, c.buf.Len())
	if rate := c.buf.Format().SampleRate; rate != sampleRate {
		st = beep.Resample(4, rate, sampleRate, st)
	}
	speaker.Play(volume(st, c.volume))
}

// volume scales s linearly by v in 0..1.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
