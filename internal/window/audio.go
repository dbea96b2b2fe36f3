package window

import (
	"bytes"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog/log"

	"snakearcade/internal/asset"
	"snakearcade/internal/flow"
	"snakearcade/internal/game"
)

const sampleRate = 44100

// cues plays one preloaded player per gameplay cue.
type cues struct {
	players map[game.Cue]*audio.Player
}

func loadCues(ctx *audio.Context, loader *asset.Loader) (*cues, error) {
	c := &cues{players: make(map[game.Cue]*audio.Player, len(flow.Sounds))}
	for cue, spec := range flow.Sounds {
		data, err := loader.Sound(spec.File)
		if err != nil {
			return nil, err
		}
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, &asset.LoadError{Kind: "sound", Name: asset.SoundDir + "/" + spec.File, Err: err}
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, &asset.LoadError{Kind: "sound", Name: asset.SoundDir + "/" + spec.File, Err: err}
		}
		p := ctx.NewPlayerFromBytes(pcm)
		p.SetVolume(spec.Volume)
		c.players[cue] = p
	}
	return c, nil
}

func (c *cues) Play(cue game.Cue) {
	p, ok := c.players[cue]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Debug().Err(err).Stringer("cue", cue).Msg("rewind")
		return
	}
	p.Play()
}
