// Package circle holds the single shape every version of the app draws.
package circle

import (
	"image/color"

	"github.com/iburimskiy/circle-tutorial/internal/config"
)

// Point is a 2D position, in screen pixels or world units depending on the
// version that owns the circle.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Circle is the adjustable shape. The zero value is a transparent dot at the origin.
type Circle struct {
	Center Point       `json:"center"`
	Radius float64     `json:"radius"`
	Color  color.NRGBA `json:"color"`
}

// Bounds are the inclusive slider ranges a circle is kept within.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MaxRadius  float64
}

// DefaultPixel is the starting circle for the pixel-space versions.
func DefaultPixel() Circle {
	return Circle{
		Center: Point{X: config.DefaultCenterX, Y: config.DefaultCenterY},
		Radius: config.DefaultRadius,
		Color:  config.DefaultColor,
	}
}

// DefaultWorld is the starting circle for the raster version.
func DefaultWorld() Circle {
	return Circle{
		Radius: config.DefaultWorldRadius,
		Color:  config.DefaultColor,
	}
}

// PixelBounds returns the slider ranges for a canvas of the given size.
func PixelBounds(width, height float64) Bounds {
	return Bounds{MaxX: width, MaxY: height, MaxRadius: config.MaxRadius}
}

// WorldBounds returns the slider ranges of world space for an aspect ratio.
func WorldBounds(aspect float64) Bounds {
	return Bounds{
		MinX: -aspect, MaxX: aspect,
		MinY: -1, MaxY: 1,
		MaxRadius: config.MaxWorldRadius,
	}
}

// Clamped returns c with its center and radius pulled into b.
func (c Circle) Clamped(b Bounds) Circle {
	c.Center.X = Clamp(c.Center.X, b.MinX, b.MaxX)
	c.Center.Y = Clamp(c.Center.Y, b.MinY, b.MaxY)
	c.Radius = Clamp(c.Radius, 0, b.MaxRadius)
	return c
}

// Contains reports whether p lies inside or on the circle, using squared distances.
func (c Circle) Contains(p Point) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
