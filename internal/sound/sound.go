// Package sound plays a short click when a slider is grabbed.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/circle-tutorial/internal/config"
)

// Blip returns a streamer of n stereo samples of a sine at freq Hz with a
// linear fade out. It drains after n samples.
func Blip(sr beep.SampleRate, freq float64, n int) beep.Streamer {
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		filled := 0
		for i := range samples {
			if pos >= n {
				break
			}
			gain := 0.25 * (1 - float64(pos)/float64(n))
			v := gain * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			filled++
		}
		return filled, true
	})
}

// Clicker initializes the speaker lazily on the first click.
type Clicker struct {
	Enabled bool

	sampleRate beep.SampleRate
	initDone   bool

	// speaker hooks; replaced in tests
	init func(sr beep.SampleRate, bufferSize int) error
	play func(s ...beep.Streamer)
}

func NewClicker(enabled bool) *Clicker {
	return &Clicker{
		Enabled:    enabled,
		sampleRate: beep.SampleRate(config.SampleRate),
		init:       speaker.Init,
		play:       speaker.Play,
	}
}

// Click plays one blip. It is a no-op when disabled.
func (c *Clicker) Click() error {
	if c == nil || !c.Enabled {
		return nil
	}
	if !c.initDone {
		bufferSize := c.sampleRate.N(time.Second / 20)
		if err := c.init(c.sampleRate, bufferSize); err != nil {
			// don't retry every frame
			c.Enabled = false
			return fmt.Errorf("sound: init speaker: %w", err)
		}
		c.initDone = true
	}
	c.play(Blip(c.sampleRate, config.ClickFrequency, config.ClickSamples))
	return nil
}
