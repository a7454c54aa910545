// Package ui is a small immediate-mode widget set on top of ebiten.
//
// Widgets are declared every frame from Update. Each call handles its own
// input immediately and records the shapes it needs; Draw replays them onto
// the screen. Nothing about a widget survives a frame except the hot/active
// bookkeeping and which color editors are open.
package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/circle-tutorial/internal/config"
)

// Context carries the widget state between frames.
type Context struct {
	Picker ColorPicker

	// OnGrab runs when a slider is grabbed with the pointer.
	OnGrab func()

	in     Input
	hot    string
	active string
	open   map[string]bool

	scope   string
	cursor  image.Point
	width   int
	regions []image.Rectangle

	// open region; a window grows to fit what was laid out in it
	panel   image.Rectangle
	panelBG int
	grow    bool

	cmds    []command
	lastErr error
}

func NewContext(picker ColorPicker) *Context {
	return &Context{Picker: picker, open: map[string]bool{}}
}

// Begin starts a frame with the given input and discards last frame's shapes.
func (c *Context) Begin(in Input) {
	c.in = in
	c.hot = ""
	c.scope = ""
	c.regions = c.regions[:0]
	c.cmds = c.cmds[:0]
	c.panel = image.Rectangle{}
}

// End finishes the frame. A capture is dropped once the button is up, even if
// the release happened outside every widget.
func (c *Context) End() {
	c.closeRegion()
	if !c.in.Down {
		c.active = ""
	}
}

// Captured reports whether the pointer is over a UI region or dragging a widget.
func (c *Context) Captured() bool {
	if c.active != "" {
		return true
	}
	for _, r := range c.regions {
		if c.in.over(r) {
			return true
		}
	}
	return false
}

// Hot is the ID of the widget under the pointer this frame.
func (c *Context) Hot() string { return c.hot }

// Active is the ID of the widget holding the pointer capture.
func (c *Context) Active() string { return c.active }

// LastError returns the most recent picker failure and clears it.
func (c *Context) LastError() error {
	err := c.lastErr
	c.lastErr = nil
	return err
}

// Window starts a floating window with a title bar; widgets that follow are
// laid out top to bottom inside it. r.Max.Y is a minimum: the window grows
// to fit its content when the region closes.
func (c *Context) Window(title string, r image.Rectangle) {
	c.begin(title, r, true)
	bar := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+config.TitleBarH)
	c.fillRect(bar, config.TitleBG)
	c.title(title, bar.Min.X+config.PanelPadding, bar.Min.Y+4)
	c.cursor.Y = bar.Max.Y + config.PanelPadding
}

// SidePanel starts a fixed panel docked to an edge.
func (c *Context) SidePanel(title string, r image.Rectangle) {
	c.begin(title, r, false)
	c.title(title, c.cursor.X, r.Min.Y+config.PanelPadding)
	c.line(r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y, config.PanelBorder)
	c.cursor.Y = r.Min.Y + config.PanelPadding + config.TitleBarH + 4
}

func (c *Context) begin(scope string, r image.Rectangle, grow bool) {
	c.closeRegion()
	c.scope = scope
	c.regions = append(c.regions, r)
	c.panel = r
	c.panelBG = len(c.cmds)
	c.grow = grow
	c.fillRect(r, config.PanelBG)
	c.cursor = image.Pt(r.Min.X+config.PanelPadding, r.Min.Y)
	c.width = r.Dx() - 2*config.PanelPadding
}

// closeRegion fits a growing window around its content and outlines it.
func (c *Context) closeRegion() {
	if c.panel.Empty() {
		return
	}
	if c.grow {
		if bottom := c.cursor.Y + config.PanelPadding - 4; bottom > c.panel.Max.Y {
			c.panel.Max.Y = bottom
			c.cmds[c.panelBG].rect = c.panel
			c.regions[len(c.regions)-1] = c.panel
		}
		c.strokeRect(c.panel, 1, config.PanelBorder)
	}
	c.panel = image.Rectangle{}
}

// row reserves a layout row of height h and returns its rectangle.
func (c *Context) row(h int) image.Rectangle {
	r := image.Rect(c.cursor.X, c.cursor.Y, c.cursor.X+c.width, c.cursor.Y+h)
	c.cursor.Y += h + 4
	return r
}

func (c *Context) id(label string) string {
	return c.scope + "/" + label
}

// Label writes one line of text.
func (c *Context) Label(text string) {
	r := c.row(config.RowHeight - 6)
	c.text(text, r.Min.X, r.Min.Y, labelColor)
}

// Separator draws a thin rule across the layout width.
func (c *Context) Separator() {
	r := c.row(6)
	y := r.Min.Y + 3
	c.line(r.Min.X, y, r.Max.X, y, config.PanelBorder)
}

// Space adds vertical room.
func (c *Context) Space(h int) {
	c.cursor.Y += h
}

// pick runs the color picker; cancellation is not an error.
func (c *Context) pick(title string, current color.NRGBA) (color.NRGBA, bool) {
	if c.Picker == nil {
		return current, false
	}
	picked, err := c.Picker.Pick(title, current)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			c.lastErr = fmt.Errorf("color picker: %w", err)
		}
		return current, false
	}
	if picked == nil {
		return current, false
	}
	return color.NRGBAModel.Convert(picked).(color.NRGBA), true
}
