package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/circle-tutorial/internal/circle"
	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/raster"
	"github.com/iburimskiy/circle-tutorial/internal/ui"
)

// rasterStage is version 4: the circle lives in world units and is drawn by
// filling a CPU framebuffer pixel by pixel, which is then uploaded and
// scaled into the canvas.
type rasterStage struct {
	circle     circle.Circle
	background color.NRGBA
	resolution int

	rast    *raster.Rasterizer
	texture *ebiten.Image
}

func newRasterStage() *rasterStage {
	s := &rasterStage{
		circle:     circle.DefaultWorld(),
		background: config.RasterBG,
		resolution: -1,
	}
	s.setResolution(config.DefaultResolution)
	return s
}

func (s *rasterStage) version() Version        { return Raster }
func (s *rasterStage) canvas() image.Rectangle { return canvasRect }

func (s *rasterStage) bounds() circle.Bounds {
	return circle.WorldBounds(s.rast.Transform().Aspect())
}

// setResolution selects one of config.Resolutions; out-of-range indices fall
// back to the default. The circle is re-clamped to the new aspect ratio.
func (s *rasterStage) setResolution(i int) {
	if i < 0 || i >= len(config.Resolutions) {
		i = config.DefaultResolution
	}
	res := config.Resolutions[i]
	s.resolution = i
	if s.rast == nil {
		s.rast = raster.NewRasterizer(res.Width, res.Height)
	} else if s.rast.SetResolution(res.Width, res.Height) && s.texture != nil {
		s.texture.Deallocate()
		s.texture = nil
	}
	s.circle = s.circle.Clamped(s.bounds())
}

func resolutionLabels() []string {
	labels := make([]string, len(config.Resolutions))
	for i, r := range config.Resolutions {
		labels[i] = fmt.Sprintf("%dx%d", r.Width, r.Height)
	}
	return labels
}

func (s *rasterStage) update(u *ui.Context) {
	u.SidePanel(Raster.String(), panelRect)
	u.Label("Resolution:")
	if i := u.Choice("Resolution", resolutionLabels(), s.resolution); i >= 0 && i != s.resolution {
		s.setResolution(i)
	}
	tr := s.rast.Transform()
	u.Label(fmt.Sprintf("aspect %.2f", tr.Aspect()))
	u.Separator()

	b := s.bounds()
	u.Label("Center (world):")
	u.Slider("X", &s.circle.Center.X, b.MinX, b.MaxX)
	u.Slider("Y", &s.circle.Center.Y, b.MinY, b.MaxY)
	u.Slider("Radius", &s.circle.Radius, 0, b.MaxRadius)
	u.Separator()
	u.ColorEdit("Color", &s.circle.Color)
	u.ColorEdit("Background", &s.background)
}

// draw runs one full rasterization pass and uploads the result.
func (s *rasterStage) draw(screen *ebiten.Image) {
	fb := s.rast.Render(s.circle, s.background)
	if s.texture == nil {
		s.texture = ebiten.NewImage(fb.Width, fb.Height)
	}
	s.texture.WritePixels(fb.Pix)

	canvas := screen.SubImage(canvasRect).(*ebiten.Image)
	canvas.Fill(config.CanvasBG)
	scale, off := fit(fb.Width, fb.Height, canvasRect)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(off.X), float64(off.Y))
	op.Filter = ebiten.FilterNearest
	canvas.DrawImage(s.texture, op)
}

// fit returns the uniform scale and top-left offset that place a w x h
// image centered inside dst without distorting it.
func fit(w, h int, dst image.Rectangle) (float64, image.Point) {
	if w <= 0 || h <= 0 || dst.Empty() {
		return 1, dst.Min
	}
	scale := float64(dst.Dx()) / float64(w)
	if sy := float64(dst.Dy()) / float64(h); sy < scale {
		scale = sy
	}
	sw := int(float64(w) * scale)
	sh := int(float64(h) * scale)
	return scale, image.Pt(dst.Min.X+(dst.Dx()-sw)/2, dst.Min.Y+(dst.Dy()-sh)/2)
}
