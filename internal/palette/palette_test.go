package palette

import (
	"image/color"
	"testing"
)

func TestHue(t *testing.T) {
	tests := []struct {
		deg  float64
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 255, A: 255}},
		{60, color.NRGBA{R: 255, G: 255, A: 255}},
		{120, color.NRGBA{G: 255, A: 255}},
		{240, color.NRGBA{B: 255, A: 255}},
		{360, color.NRGBA{R: 255, A: 255}},
		{-120, color.NRGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := Hue(tt.deg, 255); got != tt.want {
			t.Errorf("Hue(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestHSVGray(t *testing.T) {
	if got := HSV(200, 0, 0.5, 10); got != (color.NRGBA{R: 128, G: 128, B: 128, A: 10}) {
		t.Errorf("HSV gray = %v", got)
	}
}

func TestWheel(t *testing.T) {
	if got := Wheel(4, 12, 255); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("Wheel(4, 12) = %v, want green", got)
	}
	if Wheel(16, 12, 255) != Wheel(4, 12, 255) {
		t.Error("Wheel does not wrap")
	}
	if got := Wheel(3, 0, 255); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("Wheel with n=0 = %v, want red", got)
	}
}
