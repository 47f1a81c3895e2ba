// Package audio plays the collision sound effect. The sound is synthesized
// at startup (a short decaying thump) rather than shipped as an asset.
// Everything here is fire-and-forget: if the speaker cannot be initialized
// the player stays silent and the simulation never notices.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	thumpFreq  = 90.0 // Hz, low impact tone
	thumpLen   = 0.25 // seconds
)

// Player owns the speaker and the pre-rendered collision sound.
type Player struct {
	enabled bool
	thump   [][2]float64
}

// NewPlayer initializes the speaker and renders the collision thump.
// A speaker failure returns a disabled player, not an error.
func NewPlayer(enabled bool) *Player {
	p := &Player{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return p
	}
	p.enabled = true
	p.thump = renderThump()
	return p
}

// PlayCollisionSound plays the thump. No return value: failures are ignored.
func (p *Player) PlayCollisionSound() {
	if !p.enabled {
		return
	}
	speaker.Play(&bufferStreamer{samples: p.thump})
}

// renderThump synthesizes a low sine burst with an exponential decay and a
// pitch drop, which reads as a soft physical impact.
func renderThump() [][2]float64 {
	n := sampleRate.N(time.Duration(thumpLen * float64(time.Second)))
	out := make([][2]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-t * 14)
		freq := thumpFreq * (1 + 0.8*math.Exp(-t*30))
		v := math.Sin(2*math.Pi*freq*t) * env * 0.6
		out[i][0] = v
		out[i][1] = v
	}
	return out
}

// bufferStreamer streams a pre-rendered sample buffer once.
type bufferStreamer struct {
	samples [][2]float64
	pos     int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	n := copy(samples, b.samples[b.pos:])
	b.pos += n
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }
