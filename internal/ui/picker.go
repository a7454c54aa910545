package ui

import (
	"image/color"

	"github.com/ncruces/zenity"
)

// ColorPicker opens a modal color chooser. Implementations return
// zenity.ErrCanceled when the user dismisses it.
type ColorPicker interface {
	Pick(title string, current color.Color) (color.Color, error)
}

// NativeColorPicker uses the platform dialog.
type NativeColorPicker struct{}

func (NativeColorPicker) Pick(title string, current color.Color) (color.Color, error) {
	return zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(current),
		zenity.ShowPalette(),
	)
}
