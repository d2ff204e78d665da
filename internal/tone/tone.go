// Package tone synthesizes the short cue played at each phase transition.
package tone

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.4

	// Envelope: no attack, decay to the sustain level, release at the tail.
	// Output stops at the ceiling regardless of envelope completion.
	decayTime    = 0.25
	sustainLevel = 0.25
	releaseTime  = 0.25
	ceiling      = 1.0
)

// envelopeTone is a beep.Streamer producing an enveloped sine burst. It
// drains itself after the ceiling, so playback is fire-and-forget.
type envelopeTone struct {
	freq  float64
	pos   int
	limit int
}

func newEnvelopeTone(freq float64) *envelopeTone {
	return &envelopeTone{freq: freq, limit: int(ceiling * float64(sampleRate))}
}

func (s *envelopeTone) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.limit {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= s.limit {
			break
		}
		t := float64(s.pos) / float64(sampleRate)
		v := math.Sin(2*math.Pi*s.freq*t) * volume * envelope(t)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *envelopeTone) Err() error { return nil }

func envelope(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t < decayTime:
		return 1 - (1-sustainLevel)*(t/decayTime)
	case t < ceiling-releaseTime:
		return sustainLevel
	case t < ceiling:
		return sustainLevel * (ceiling - t) / releaseTime
	default:
		return 0
	}
}

// Player plays cue tones through the speaker. The audio device is opened
// lazily on the first Play, which only happens after the user has started a
// session. If the device cannot be opened, Play degrades to a silent no-op:
// the cue is non-essential and must never take the session down.
type Player struct {
	log  zerolog.Logger
	once sync.Once
	ok   bool
}

func NewPlayer(log zerolog.Logger) *Player {
	return &Player{log: log}
}

// Play starts a cue at the given frequency and returns immediately.
func (p *Player) Play(freqHz float64) {
	p.once.Do(p.init)
	if !p.ok {
		return
	}
	speaker.Play(newEnvelopeTone(freqHz))
}

func (p *Player) init() {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		p.log.Warn().Err(err).Msg("audio unavailable, phase cues disabled")
		return
	}
	p.ok = true
}
