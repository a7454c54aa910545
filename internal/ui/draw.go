package ui

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

type cmdKind int

const (
	cmdFill cmdKind = iota
	cmdStroke
	cmdLine
	cmdCircle
	cmdText
	cmdTitle
)

type command struct {
	kind  cmdKind
	rect  image.Rectangle
	r     float32
	width float32
	color color.NRGBA
	text  string
}

var labelColor = color.NRGBA{R: 220, G: 225, B: 235, A: 255}

const titleSize = 14

var titleFace *text.GoTextFace

// face loads the title font on first use. Failures fall back to the debug font.
func face() *text.GoTextFace {
	if titleFace != nil {
		return titleFace
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil
	}
	titleFace = &text.GoTextFace{Source: src, Size: titleSize}
	return titleFace
}

func (c *Context) fillRect(r image.Rectangle, clr color.NRGBA) {
	c.cmds = append(c.cmds, command{kind: cmdFill, rect: r, color: clr})
}

func (c *Context) strokeRect(r image.Rectangle, w float32, clr color.NRGBA) {
	c.cmds = append(c.cmds, command{kind: cmdStroke, rect: r, width: w, color: clr})
}

func (c *Context) line(x0, y0, x1, y1 int, clr color.NRGBA) {
	c.cmds = append(c.cmds, command{kind: cmdLine, rect: image.Rect(x0, y0, x1, y1), width: 1, color: clr})
}

func (c *Context) circle(cx, cy int, r float32, clr color.NRGBA) {
	c.cmds = append(c.cmds, command{kind: cmdCircle, rect: image.Rect(cx, cy, cx, cy), r: r, color: clr})
}

func (c *Context) text(s string, x, y int, clr color.NRGBA) {
	c.cmds = append(c.cmds, command{kind: cmdText, rect: image.Rect(x, y, x, y), text: s, color: clr})
}

func (c *Context) title(s string, x, y int) {
	c.cmds = append(c.cmds, command{kind: cmdTitle, rect: image.Rect(x, y, x, y), text: s, color: labelColor})
}

// Draw replays the frame's shapes in declaration order.
func (c *Context) Draw(screen *ebiten.Image) {
	for _, cmd := range c.cmds {
		x := float32(cmd.rect.Min.X)
		y := float32(cmd.rect.Min.Y)
		w := float32(cmd.rect.Dx())
		h := float32(cmd.rect.Dy())
		switch cmd.kind {
		case cmdFill:
			vector.DrawFilledRect(screen, x, y, w, h, cmd.color, false)
		case cmdStroke:
			vector.StrokeRect(screen, x, y, w, h, cmd.width, cmd.color, false)
		case cmdLine:
			vector.StrokeLine(screen, x, y, float32(cmd.rect.Max.X), float32(cmd.rect.Max.Y), cmd.width, cmd.color, false)
		case cmdCircle:
			vector.DrawFilledCircle(screen, x, y, cmd.r, cmd.color, true)
		case cmdText:
			ebitenutil.DebugPrintAt(screen, cmd.text, cmd.rect.Min.X, cmd.rect.Min.Y)
		case cmdTitle:
			f := face()
			if f == nil {
				ebitenutil.DebugPrintAt(screen, cmd.text, cmd.rect.Min.X, cmd.rect.Min.Y)
				continue
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.ScaleWithColor(cmd.color)
			text.Draw(screen, cmd.text, f, op)
		}
	}
}
