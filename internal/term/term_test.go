package term

import (
	"encoding/json"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/circle-tutorial/internal/circle"
	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/raster"
	"github.com/iburimskiy/circle-tutorial/internal/state"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	navy = color.NRGBA{R: 20, G: 24, B: 40, A: 255}
)

func TestCellsPacking(t *testing.T) {
	fb := raster.NewFramebuffer(2, 3)
	fb.Clear(navy)
	fb.Set(0, 0, red)
	fb.Set(1, 1, red)
	fb.Set(1, 2, red)

	cells := Cells(fb)
	if len(cells) != 2 || len(cells[0]) != 2 {
		t.Fatalf("Cells = %d rows of %d, want 2x2", len(cells), len(cells[0]))
	}
	r := color.RGBA{R: 255, A: 255}
	n := color.RGBA{R: 20, G: 24, B: 40, A: 255}
	want := [][]Cell{
		{{Top: r, Bottom: n}, {Top: n, Bottom: r}},
		{{Top: n, Bottom: n}, {Top: r, Bottom: r}},
	}
	for y := range want {
		for x := range want[y] {
			if cells[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, cells[y][x], want[y][x])
			}
		}
	}
}

func TestRenderCellsShape(t *testing.T) {
	c := Cell{Top: color.RGBA{R: 1, A: 255}, Bottom: color.RGBA{B: 1, A: 255}}
	out := renderCells([][]Cell{{c, c, c}, {c, c, c}})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	for i, l := range lines {
		if got := strings.Count(l, "▀"); got != 3 {
			t.Errorf("line %d has %d half blocks, want 3", i, got)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelKeys(t *testing.T) {
	m := New(circle.DefaultWorld(), config.RasterBG)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 22})

	if fb := m.rast.Framebuffer(); fb.Width != 80 || fb.Height != 40 {
		t.Fatalf("framebuffer = %dx%d, want 80x40", fb.Width, fb.Height)
	}

	m = send(m, keyMsg("left"), keyMsg("up"), keyMsg("+"))
	want := circle.Point{X: -config.TermCenterStep, Y: config.TermCenterStep}
	if m.Circle.Center != want {
		t.Errorf("center = %+v, want %+v", m.Circle.Center, want)
	}
	if m.Circle.Radius != config.DefaultWorldRadius+config.TermRadiusStep {
		t.Errorf("radius = %v", m.Circle.Radius)
	}

	m = send(m, keyMsg("c"))
	if m.Circle.Color == config.DefaultColor {
		t.Error("color key did not change the color")
	}

	m = send(m, keyMsg("r"))
	if m.Circle != circle.DefaultWorld() {
		t.Errorf("after reset circle = %+v", m.Circle)
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not quit")
	}
}

func TestModelClampsToAspect(t *testing.T) {
	m := New(circle.Circle{Center: circle.Point{X: 5, Y: -5}, Radius: 9, Color: red}, navy)
	// 40 columns, 10 drawing rows -> 40x20 pixels, aspect 2
	m = send(m, tea.WindowSizeMsg{Width: 40, Height: 12})
	want := circle.Circle{Center: circle.Point{X: 2, Y: -1}, Radius: config.MaxWorldRadius, Color: red}
	if m.Circle != want {
		t.Errorf("circle = %+v, want %+v", m.Circle, want)
	}
}

func TestModelView(t *testing.T) {
	m := New(circle.DefaultWorld(), config.RasterBG)
	if m.View() != "" {
		t.Error("View before size message is not empty")
	}
	m = send(m, tea.WindowSizeMsg{Width: 30, Height: 12})
	if got := strings.Count(m.View(), "▀"); got != 30*10 {
		t.Errorf("View has %d half blocks, want %d", got, 30*10)
	}
}

func TestModelViewFitsWindow(t *testing.T) {
	m := New(circle.DefaultWorld(), config.RasterBG)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	for _, full := range []bool{false, true, false} {
		if m.help.ShowAll != full {
			m = send(m, keyMsg("?"))
		}
		if got := strings.Count(m.View(), "\n") + 1; got != 24 {
			t.Errorf("full help %v: View is %d lines, want 24", full, got)
		}
		fb := m.rast.Framebuffer()
		if want := (24 - m.footerHeight()) * 2; fb.Height != want {
			t.Errorf("full help %v: framebuffer height = %d, want %d", full, fb.Height, want)
		}
	}
}

func TestModelKeepsCenterBeforeSize(t *testing.T) {
	wide := circle.Circle{Center: circle.Point{X: 1.5}, Radius: 0.5, Color: red}
	m := New(wide, navy)
	m = send(m, keyMsg("+"))
	if m.Circle.Center.X != 1.5 {
		t.Fatalf("center X = %v before sizing, want 1.5", m.Circle.Center.X)
	}
	// 80x40 pixels, aspect 2
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 22})
	if m.Circle.Center.X != 1.5 {
		t.Errorf("center X = %v after sizing, want 1.5", m.Circle.Center.X)
	}
}

func TestWorldPersistenceKeepsOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := state.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = store.Set(config.SettingsKey, map[string]interface{}{"version": 2, "resolution": 3})

	c, bg, err := LoadWorld(store)
	if err != nil || c != circle.DefaultWorld() || bg != config.RasterBG {
		t.Fatalf("LoadWorld on partial settings = (%+v, %v, %v)", c, bg, err)
	}

	moved := circle.Circle{Center: circle.Point{X: 0.25, Y: -0.5}, Radius: 0.75, Color: red}
	if err := SaveWorld(store, moved, navy); err != nil {
		t.Fatalf("SaveWorld: %v", err)
	}

	reopened, err := state.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	c, bg, err = LoadWorld(reopened)
	if err != nil || c != moved || bg != navy {
		t.Errorf("LoadWorld = (%+v, %v, %v), want saved values", c, bg, err)
	}
	var fields map[string]json.RawMessage
	if _, err := reopened.Get(config.SettingsKey, &fields); err != nil {
		t.Fatal(err)
	}
	if string(fields["version"]) != "2" || string(fields["resolution"]) != "3" {
		t.Errorf("other fields lost: %s", fields)
	}
}
