package config

import "image/color"

const (
	AppName = "circle-tutorial"

	WindowWidth  = 1024
	WindowHeight = 640

	// Side panel (versions 2-4)
	PanelWidth   = 260
	PanelPadding = 10

	// Floating controls window (version 1)
	ControlsX      = 20
	ControlsY      = 40
	ControlsWidth  = 250
	ControlsHeight = 260

	// Widgets
	RowHeight     = 22
	SliderHeight  = 14
	KnobRadius    = 7
	TitleBarH     = 24
	SwatchSize    = 18
	HueSwatches   = 12
	NudgeFraction = 0.01

	// Pixel circle defaults and slider ranges (versions 1-3)
	DefaultCenterX = 400.0
	DefaultCenterY = 300.0
	DefaultRadius  = 100.0
	MaxCenterX     = 800.0
	MaxCenterY     = 600.0
	MaxRadius      = 500.0
	OutlineWidth   = 2.0

	// World circle defaults and slider ranges (version 4)
	DefaultWorldRadius = 0.5
	MaxWorldRadius     = 2.0

	// Raster version
	DefaultResolution = 1

	// Terminal preview
	TermCenterStep = 0.05
	TermRadiusStep = 0.05

	// Persistence
	StateFile   = "state.json"
	SettingsKey = "app"
	DebugLog    = "circle-tutorial-debug.log"

	// Click feedback
	ClickFrequency = 880
	ClickSamples   = 441
	SampleRate     = 44100
)

// Resolution is a selectable framebuffer size for the raster version.
type Resolution struct {
	Width, Height int
}

var Resolutions = []Resolution{
	{Width: 320, Height: 200},
	{Width: 640, Height: 400},
	{Width: 760, Height: 600},
	{Width: 400, Height: 400},
}

var (
	DefaultColor    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	OutlineColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Background      = color.NRGBA{R: 27, G: 27, B: 27, A: 255}
	CanvasBG        = color.NRGBA{R: 12, G: 14, B: 20, A: 255}
	RasterBG        = color.NRGBA{R: 20, G: 24, B: 40, A: 255}
	PanelBG         = color.NRGBA{R: 36, G: 40, B: 52, A: 240}
	PanelBorder     = color.NRGBA{R: 70, G: 80, B: 100, A: 255}
	TitleBG         = color.NRGBA{R: 60, G: 70, B: 95, A: 255}
	TrackColor      = color.NRGBA{R: 20, G: 25, B: 35, A: 255}
	TrackFill       = color.NRGBA{R: 100, G: 120, B: 160, A: 255}
	KnobColor       = color.NRGBA{R: 200, G: 210, B: 230, A: 255}
	KnobHot         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ButtonNormal    = color.NRGBA{R: 100, G: 120, B: 160, A: 255}
	ButtonHovered   = color.NRGBA{R: 80, G: 100, B: 140, A: 255}
	ButtonPressed   = color.NRGBA{R: 60, G: 80, B: 120, A: 255}
	ButtonBorder    = color.NRGBA{R: 150, G: 170, B: 200, A: 255}
	SelectedOutline = color.NRGBA{R: 255, G: 220, B: 0, A: 255}
)
