package term

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/circle-tutorial/internal/raster"
)

// Cell is one terminal character showing two vertically stacked pixels.
type Cell struct {
	Top, Bottom color.RGBA
}

// Cells packs a framebuffer into cells, two pixel rows per text row. An odd
// last row repeats its top pixel.
func Cells(fb *raster.Framebuffer) [][]Cell {
	rows := (fb.Height + 1) / 2
	out := make([][]Cell, rows)
	for r := range out {
		row := make([]Cell, fb.Width)
		for x := range row {
			top := fb.At(x, 2*r)
			bottom := top
			if 2*r+1 < fb.Height {
				bottom = fb.At(x, 2*r+1)
			}
			row[x] = Cell{Top: top, Bottom: bottom}
		}
		out[r] = row
	}
	return out
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// renderCells draws upper half blocks: foreground is the top pixel,
// background the bottom one. Runs of equal cells share one styled string.
func renderCells(cells [][]Cell) string {
	styles := map[Cell]lipgloss.Style{}
	var b strings.Builder
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < len(row); {
			cell := row[x]
			n := 1
			for x+n < len(row) && row[x+n] == cell {
				n++
			}
			style, ok := styles[cell]
			if !ok {
				style = lipgloss.NewStyle().Foreground(hex(cell.Top)).Background(hex(cell.Bottom))
				styles[cell] = style
			}
			b.WriteString(style.Render(strings.Repeat("▀", n)))
			x += n
		}
	}
	return b.String()
}
