package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/palette"
)

const (
	valueWidth = 64 // room for the value text right of a slider track
	charWidth  = 6  // debug font glyph width
)

// Slider binds v to a horizontal track over [lo, hi]. Dragging captures the
// pointer until release; arrow keys step by a fraction of the range while the
// track is hovered. It reports whether v changed.
func (c *Context) Slider(label string, v *float64, lo, hi float64) bool {
	return c.slider(c.id(label), label, v, lo, hi)
}

func (c *Context) slider(id, label string, v *float64, lo, hi float64) bool {
	r := c.row(config.RowHeight)
	trackW := r.Dx() - valueWidth
	track := image.Rect(r.Min.X+config.KnobRadius, r.Min.Y+(config.RowHeight-config.SliderHeight)/2,
		r.Min.X+trackW-config.KnobRadius, r.Min.Y+(config.RowHeight+config.SliderHeight)/2)
	grab := track.Inset(-config.KnobRadius)

	old := *v
	val := old
	if hi < lo {
		hi = lo
	}

	hovered := c.in.over(grab)
	if hovered {
		c.hot = id
	}
	if hovered && c.in.Pressed && c.active == "" {
		c.active = id
		if c.OnGrab != nil {
			c.OnGrab()
		}
	}
	if c.active == id && (c.in.Down || c.in.Released) {
		val = lo + c.fraction(track)*(hi-lo)
	}
	if c.active == id && c.in.Released {
		c.active = ""
	}
	if hovered && c.active == "" && c.in.Nudge != 0 {
		val += float64(c.in.Nudge) * (hi - lo) * config.NudgeFraction
	}
	val = clamp(val, lo, hi)
	*v = val

	t := 0.0
	if hi > lo {
		t = (val - lo) / (hi - lo)
	}
	knobX := track.Min.X + int(t*float64(track.Dx())+0.5)
	c.fillRect(track, config.TrackColor)
	c.fillRect(image.Rect(track.Min.X, track.Min.Y, knobX, track.Max.Y), config.TrackFill)
	knob := config.KnobColor
	if hovered || c.active == id {
		knob = config.KnobHot
	}
	c.circle(knobX, track.Min.Y+track.Dy()/2, config.KnobRadius, knob)
	c.text(fmt.Sprintf("%s %s", label, formatValue(val, hi-lo)), r.Min.X+trackW+4, r.Min.Y+3, labelColor)

	return val != old
}

// fraction is the pointer's horizontal position along track, in [0, 1].
func (c *Context) fraction(track image.Rectangle) float64 {
	if track.Dx() <= 0 {
		return 0
	}
	return clamp01(float64(c.in.X-track.Min.X) / float64(track.Dx()))
}

func formatValue(v, span float64) string {
	if span > 10 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// Button is a full-width push button. It fires when the pointer is released
// over the button it was pressed on.
func (c *Context) Button(label string) bool {
	r := c.row(config.RowHeight + 2)
	return c.button(c.id(label), label, r, false)
}

// Choice lays out one button per option on a single row and returns the
// clicked index, or -1. The selected option is outlined.
func (c *Context) Choice(name string, options []string, selected int) int {
	if len(options) == 0 {
		return -1
	}
	r := c.row(config.RowHeight + 2)
	w := (r.Dx() - 4*(len(options)-1)) / len(options)
	clicked := -1
	for i, opt := range options {
		x := r.Min.X + i*(w+4)
		br := image.Rect(x, r.Min.Y, x+w, r.Max.Y)
		if c.button(c.id(fmt.Sprintf("%s#%d", name, i)), opt, br, i == selected) {
			clicked = i
		}
	}
	return clicked
}

func (c *Context) button(id, label string, r image.Rectangle, selected bool) bool {
	hovered := c.in.over(r)
	if hovered {
		c.hot = id
	}
	if hovered && c.in.Pressed && c.active == "" {
		c.active = id
	}
	fired := false
	if c.active == id && c.in.Released {
		fired = hovered
		c.active = ""
	}

	bg := config.ButtonNormal
	switch {
	case c.active == id:
		bg = config.ButtonPressed
	case hovered:
		bg = config.ButtonHovered
	}
	c.fillRect(r, bg)
	border := config.ButtonBorder
	if selected {
		border = config.SelectedOutline
	}
	c.strokeRect(r, 2, border)
	tw := len(label) * charWidth
	c.text(label, r.Min.X+(r.Dx()-tw)/2, r.Min.Y+(r.Dy()-16)/2, labelColor)
	return fired
}

// ColorEdit shows a swatch that toggles an inline editor: RGBA sliders, a row
// of hue swatches and a button for the platform color dialog. It reports
// whether v changed.
func (c *Context) ColorEdit(label string, v *color.NRGBA) bool {
	id := c.id(label)
	r := c.row(config.RowHeight)
	c.text(label, r.Min.X, r.Min.Y+3, labelColor)
	sw := image.Rect(r.Max.X-3*config.SwatchSize, r.Min.Y+2, r.Max.X, r.Max.Y-2)
	if c.button(id+"#swatch", "", sw, c.open[id]) {
		c.open[id] = !c.open[id]
	}
	c.fillRect(sw.Inset(2), *v)
	if !c.open[id] {
		return false
	}

	old := *v
	ch := [4]float64{float64(v.R), float64(v.G), float64(v.B), float64(v.A)}
	for i, name := range []string{"R", "G", "B", "A"} {
		c.slider(id+"/"+name, name, &ch[i], 0, 255)
	}
	v.R, v.G, v.B, v.A = uint8(ch[0]+0.5), uint8(ch[1]+0.5), uint8(ch[2]+0.5), uint8(ch[3]+0.5)

	row := c.row(config.SwatchSize)
	step := row.Dx() / config.HueSwatches
	for i := 0; i < config.HueSwatches; i++ {
		hr := image.Rect(row.Min.X+i*step, row.Min.Y, row.Min.X+(i+1)*step-2, row.Max.Y)
		hue := palette.Wheel(i, config.HueSwatches, v.A)
		if c.button(fmt.Sprintf("%s#hue%d", id, i), "", hr, false) {
			*v = hue
		}
		c.fillRect(hr.Inset(1), hue)
	}

	pr := c.row(config.RowHeight + 2)
	if c.button(id+"#system", "System picker...", pr, false) {
		if picked, ok := c.pick(label, *v); ok {
			*v = picked
		}
	}
	return *v != old
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }
