package raster

// TransformFunc maps a pixel index to a world position.
type TransformFunc func(i, j int) (x, y float64)

// Transform maps pixel indices of a width x height grid onto world space:
// [0, width-1] x [0, height-1] -> [-aspect, +aspect] x [+1, -1].
// The vertical axis is inverted: row 0 is y = +1 and world y grows upwards.
type Transform struct {
	width, height int
	aspect        float64

	// world units per pixel step
	sx, sy float64
}

// NewTransform builds the transform for a resolution. Sizes below 1 are
// treated as 1.
func NewTransform(width, height int) Transform {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	t := Transform{
		width:  width,
		height: height,
		aspect: float64(width) / float64(height),
	}
	if width > 1 {
		t.sx = 2 * t.aspect / float64(width-1)
	}
	if height > 1 {
		t.sy = 2 / float64(height-1)
	}
	return t
}

func (t Transform) Width() int { return t.width }

func (t Transform) Height() int { return t.height }

// Aspect is width / height.
func (t Transform) Aspect() float64 { return t.aspect }

// ScreenToWorld returns the world position of pixel (i, j). A single-pixel
// axis maps to 0.
func (t Transform) ScreenToWorld(i, j int) (x, y float64) {
	if t.width > 1 {
		x = float64(i)*t.sx - t.aspect
	}
	if t.height > 1 {
		y = 1 - float64(j)*t.sy
	}
	return x, y
}

// WorldToScreen is the inverse of ScreenToWorld. The result is fractional;
// round it to get the nearest pixel index.
func (t Transform) WorldToScreen(x, y float64) (fi, fj float64) {
	if t.sx != 0 {
		fi = (x + t.aspect) / t.sx
	}
	if t.sy != 0 {
		fj = (1 - y) / t.sy
	}
	return fi, fj
}

// PixelSize returns the world size of one pixel step on each axis.
func (t Transform) PixelSize() (dx, dy float64) {
	return t.sx, t.sy
}
