package sound

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 100)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			if buf[i][0] != buf[i][1] {
				panic("channels differ")
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestBlipLength(t *testing.T) {
	total, peak := drain(Blip(44100, 880, 441))
	if total != 441 {
		t.Errorf("Blip produced %d samples, want 441", total)
	}
	if peak <= 0 || peak > 0.25 {
		t.Errorf("Blip peak = %v, want (0, 0.25]", peak)
	}
}

func TestClickerInitOnce(t *testing.T) {
	c := NewClicker(true)
	inits, plays := 0, 0
	c.init = func(sr beep.SampleRate, bufferSize int) error {
		inits++
		if bufferSize != sr.N(time.Second/20) {
			t.Errorf("bufferSize = %d", bufferSize)
		}
		return nil
	}
	c.play = func(s ...beep.Streamer) { plays += len(s) }

	for i := 0; i < 3; i++ {
		if err := c.Click(); err != nil {
			t.Fatal(err)
		}
	}
	if inits != 1 || plays != 3 {
		t.Errorf("inits=%d plays=%d, want 1 and 3", inits, plays)
	}
}

func TestClickerDisabled(t *testing.T) {
	c := NewClicker(false)
	c.init = func(beep.SampleRate, int) error { t.Fatal("init called"); return nil }
	if err := c.Click(); err != nil {
		t.Fatal(err)
	}
	var nilClicker *Clicker
	if err := nilClicker.Click(); err != nil {
		t.Fatal(err)
	}
}

func TestClickerInitFailureDisables(t *testing.T) {
	c := NewClicker(true)
	boom := errors.New("no audio device")
	c.init = func(beep.SampleRate, int) error { return boom }
	c.play = func(...beep.Streamer) { t.Fatal("play after failed init") }
	if err := c.Click(); !errors.Is(err, boom) {
		t.Errorf("Click err = %v, want wrapped %v", err, boom)
	}
	if c.Enabled {
		t.Error("clicker still enabled after init failure")
	}
}
