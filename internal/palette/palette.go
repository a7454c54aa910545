// Package palette converts between the color spaces the pickers use.
package palette

import (
	"image/color"
	"math"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

// HSV returns the color for hue degrees, saturation and value in [0, 1],
// with alpha a.
func HSV(h, s, v float64, a uint8) color.NRGBA {
	r, g, b := hsvToRgb(h, s, v)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Hue returns the fully saturated color at hue degrees, keeping alpha a.
func Hue(deg float64, a uint8) color.NRGBA {
	return HSV(deg, 1, 1, a)
}

// Wheel returns the i-th of n evenly spaced hues.
func Wheel(i, n int, a uint8) color.NRGBA {
	if n <= 0 {
		return Hue(0, a)
	}
	return Hue(float64(i%n)*360/float64(n), a)
}
