// Package raster is a software circle rasterizer: a framebuffer, a pixel to
// world transform and a fill pass that tests every pixel against the circle's
// implicit equation.
package raster

import (
	"image/color"

	"github.com/iburimskiy/circle-tutorial/internal/circle"
)

// Fill writes c.Color to every pixel whose world position lies within c's
// radius of its center and bg everywhere else. The comparison is on squared
// distances. Pixels past the end of fb.Pix are skipped, so a buffer whose
// fields disagree with its slice is filled only as far as it is backed.
func Fill(fb *Framebuffer, tf TransformFunc, c circle.Circle, bg color.Color) {
	in := rgba(c.Color)
	out := rgba(bg)

	off := 0
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			if off+4 > len(fb.Pix) {
				return
			}
			x, y := tf(i, j)
			px := out
			if c.Contains(circle.Point{X: x, Y: y}) {
				px = in
			}
			fb.Pix[off] = px.R
			fb.Pix[off+1] = px.G
			fb.Pix[off+2] = px.B
			fb.Pix[off+3] = px.A
			off += 4
		}
	}
}

// Rasterizer owns a framebuffer and the transform for its resolution.
type Rasterizer struct {
	fb *Framebuffer
	tr Transform
}

func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{fb: &Framebuffer{}}
	r.SetResolution(width, height)
	return r
}

// SetResolution resizes the buffer and rebuilds the transform. It reports
// whether anything changed.
func (r *Rasterizer) SetResolution(width, height int) bool {
	if r.fb.Width == width && r.fb.Height == height && r.fb.Pix != nil {
		return false
	}
	r.fb.Resize(width, height)
	r.tr = NewTransform(width, height)
	return true
}

// Render runs one full pass and returns the buffer. The buffer is reused by
// the next call.
func (r *Rasterizer) Render(c circle.Circle, bg color.Color) *Framebuffer {
	Fill(r.fb, r.tr.ScreenToWorld, c, bg)
	return r.fb
}

func (r *Rasterizer) Framebuffer() *Framebuffer { return r.fb }

func (r *Rasterizer) Transform() Transform { return r.tr }
