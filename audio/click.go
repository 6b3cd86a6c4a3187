package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 45 * time.Millisecond
	clickBaseFreq = 660.0

	// decayRate shapes the exponential release; higher dies faster
	decayRate = 90.0
)

// click is a sine burst with exponential decay, one per trigger arrival
type click struct {
	freq     float64
	phase    float64
	duration int
	position int
}

// newClick creates a streamer for one trigger click
func newClick(freq float64) beep.Streamer {
	return &click{
		freq:     freq,
		duration: sampleRate.N(clickDuration),
	}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, false
		}

		t := float64(c.position) / float64(sampleRate)
		val := math.Sin(2*math.Pi*c.phase) * math.Exp(-decayRate*t) * 0.4

		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.freq / float64(sampleRate)
		c.phase -= math.Floor(c.phase) // Keep in [0, 1)
		c.position++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }

// Player emits trigger clicks through the speaker. Initialization failure
// leaves it permanently silent; the visualizer runs fine without sound
type Player struct {
	ready   bool
	enabled bool
}

// NewPlayer creates a player; enable decides whether clicks actually play
func NewPlayer(enable bool) *Player {
	return &Player{enabled: enable}
}

// Init opens the speaker once; later calls are no-ops. Non-fatal on failure
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		p.ready = true
	}
	return err
}

// SetEnabled toggles click playback
func (p *Player) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Enabled reports whether clicks play
func (p *Player) Enabled() bool {
	return p.enabled && p.ready
}

// PlayTrigger emits a click for a row arrival; slower rows click lower so
// overlapping arrivals stay distinguishable
func (p *Player) PlayTrigger(movement int) {
	if !p.Enabled() {
		return
	}
	if movement < 1 {
		movement = 1
	}
	freq := clickBaseFreq / (1 + float64(movement-1)*0.25)
	speaker.Play(newClick(freq))
}
