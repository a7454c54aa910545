package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circle-tutorial/internal/circle"
	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/ui"
)

var (
	screenRect = image.Rect(0, 0, config.WindowWidth, config.WindowHeight)
	panelRect  = image.Rect(0, 0, config.PanelWidth, config.WindowHeight)
	canvasRect = image.Rect(config.PanelWidth, 0, config.WindowWidth, config.WindowHeight)
)

// drawCircle paints the filled circle and its outline at pixel position
// (x, y) on dst.
func drawCircle(dst *ebiten.Image, x, y float64, c circle.Circle) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(c.Radius), c.Color, true)
	vector.StrokeCircle(dst, float32(x), float32(y), float32(c.Radius), config.OutlineWidth, config.OutlineColor, true)
}

// immediateStage is version 1: a floating controls window over a circle
// painted straight onto the background.
type immediateStage struct {
	circle circle.Circle
}

func newImmediateStage() *immediateStage {
	return &immediateStage{circle: circle.DefaultPixel()}
}

func (s *immediateStage) version() Version        { return Immediate }
func (s *immediateStage) canvas() image.Rectangle { return screenRect }

func (s *immediateStage) bounds() circle.Bounds {
	return circle.PixelBounds(config.MaxCenterX, config.MaxCenterY)
}

func (s *immediateStage) update(u *ui.Context) {
	b := s.bounds()
	u.Window("Circle Controls", image.Rect(config.ControlsX, config.ControlsY,
		config.ControlsX+config.ControlsWidth, config.ControlsY+config.ControlsHeight))
	u.Label("Center:")
	u.Slider("X", &s.circle.Center.X, b.MinX, b.MaxX)
	u.Slider("Y", &s.circle.Center.Y, b.MinY, b.MaxY)
	u.Slider("Radius", &s.circle.Radius, 0, b.MaxRadius)
	u.Label("Color:")
	u.ColorEdit("Color", &s.circle.Color)
}

func (s *immediateStage) draw(screen *ebiten.Image) {
	drawCircle(screen, s.circle.Center.X, s.circle.Center.Y, s.circle)
}

// panelStage is versions 2 and 3: controls docked in a side panel and the
// circle drawn into a central canvas, in canvas-local pixels. The constants
// version sizes its ranges from the canvas and can reset to the defaults.
type panelStage struct {
	v      Version
	circle circle.Circle
}

func newPanelStage(v Version) *panelStage {
	return &panelStage{v: v, circle: circle.DefaultPixel()}
}

func (s *panelStage) version() Version        { return s.v }
func (s *panelStage) canvas() image.Rectangle { return canvasRect }

func (s *panelStage) bounds() circle.Bounds {
	if s.v == Constants {
		return circle.PixelBounds(float64(canvasRect.Dx()), float64(canvasRect.Dy()))
	}
	return circle.PixelBounds(config.MaxCenterX, config.MaxCenterY)
}

func (s *panelStage) update(u *ui.Context) {
	b := s.bounds()
	u.SidePanel(s.v.String(), panelRect)
	u.Label("Center:")
	u.Slider("X", &s.circle.Center.X, b.MinX, b.MaxX)
	u.Slider("Y", &s.circle.Center.Y, b.MinY, b.MaxY)
	u.Slider("Radius", &s.circle.Radius, 0, b.MaxRadius)
	u.Separator()
	u.ColorEdit("Color", &s.circle.Color)
	if s.v == Constants {
		u.Separator()
		if u.Button("Reset") {
			s.circle = circle.DefaultPixel().Clamped(b)
		}
	}
}

func (s *panelStage) draw(screen *ebiten.Image) {
	canvas := screen.SubImage(canvasRect).(*ebiten.Image)
	canvas.Fill(config.CanvasBG)
	drawCircle(canvas, float64(canvasRect.Min.X)+s.circle.Center.X, float64(canvasRect.Min.Y)+s.circle.Center.Y, s.circle)
}
