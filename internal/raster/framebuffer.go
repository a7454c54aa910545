package raster

import (
	"image"
	"image/color"
)

// Framebuffer is a CPU pixel grid. Pix is row-major RGBA, four bytes per
// pixel, the layout ebiten.Image.WritePixels and image.RGBA expect.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFramebuffer allocates a cleared buffer. Negative sizes yield an empty one.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize changes the dimensions, reusing the backing slice when it is large
// enough. Pixel contents are unspecified afterwards.
func (fb *Framebuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := width * height * 4
	if cap(fb.Pix) >= n {
		fb.Pix = fb.Pix[:n]
	} else {
		fb.Pix = make([]byte, n)
	}
	fb.Width = width
	fb.Height = height
}

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c color.Color) {
	px := rgba(c)
	for off := 0; off+3 < len(fb.Pix); off += 4 {
		fb.Pix[off] = px.R
		fb.Pix[off+1] = px.G
		fb.Pix[off+2] = px.B
		fb.Pix[off+3] = px.A
	}
}

// offset returns the byte offset of pixel (i, j), or -1 when it is outside
// the buffer or past the end of Pix.
func (fb *Framebuffer) offset(i, j int) int {
	if i < 0 || i >= fb.Width || j < 0 || j >= fb.Height {
		return -1
	}
	off := (j*fb.Width + i) * 4
	if off+4 > len(fb.Pix) {
		return -1
	}
	return off
}

// Set writes one pixel; out-of-range indices are ignored.
func (fb *Framebuffer) Set(i, j int, c color.Color) {
	off := fb.offset(i, j)
	if off < 0 {
		return
	}
	px := rgba(c)
	fb.Pix[off] = px.R
	fb.Pix[off+1] = px.G
	fb.Pix[off+2] = px.B
	fb.Pix[off+3] = px.A
}

// At reads one pixel; out-of-range indices return the zero color.
func (fb *Framebuffer) At(i, j int) color.RGBA {
	off := fb.offset(i, j)
	if off < 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: fb.Pix[off], G: fb.Pix[off+1], B: fb.Pix[off+2], A: fb.Pix[off+3]}
}

// Image returns an image.RGBA sharing fb's pixels.
func (fb *Framebuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pix, Stride: fb.Width * 4, Rect: fb.Bounds()}
}

// rgba converts to premultiplied 8-bit RGBA, the form WritePixels uploads.
func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
