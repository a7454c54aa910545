// Package term shows the raster version of the circle in a terminal.
package term

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/circle-tutorial/internal/circle"
	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/palette"
	"github.com/iburimskiy/circle-tutorial/internal/raster"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
)

type Model struct {
	Circle     circle.Circle
	Background color.NRGBA

	width, height int
	hue           int
	status        string

	rast *raster.Rasterizer
	keys keyMap
	help help.Model
}

func New(c circle.Circle, bg color.NRGBA) Model {
	return Model{
		Circle:     c,
		Background: bg,
		status:     "circle ready",
		rast:       raster.NewRasterizer(0, 0),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.Circle.Center.X -= config.TermCenterStep
		case key.Matches(msg, m.keys.Right):
			m.Circle.Center.X += config.TermCenterStep
		case key.Matches(msg, m.keys.Up):
			m.Circle.Center.Y += config.TermCenterStep
		case key.Matches(msg, m.keys.Down):
			m.Circle.Center.Y -= config.TermCenterStep
		case key.Matches(msg, m.keys.Grow):
			m.Circle.Radius += config.TermRadiusStep
		case key.Matches(msg, m.keys.Shrink):
			m.Circle.Radius -= config.TermRadiusStep
		case key.Matches(msg, m.keys.Color):
			m.hue = (m.hue + 1) % config.HueSwatches
			m.Circle.Color = palette.Wheel(m.hue, config.HueSwatches, m.Circle.Color.A)
		case key.Matches(msg, m.keys.Reset):
			m.Circle = circle.DefaultWorld()
			m.hue = 0
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			if m.width > 0 {
				m.resize(m.width, m.height)
			}
		}
		m.clamp()
		m.status = fmt.Sprintf("center (%.2f, %.2f)  radius %.2f", m.Circle.Center.X, m.Circle.Center.Y, m.Circle.Radius)
	}
	return m, nil
}

// resize maps the drawing area to a framebuffer two pixels per cell tall.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	rows := h - m.footerHeight()
	if rows < 1 {
		rows = 1
	}
	if w < 1 {
		w = 1
	}
	m.rast.SetResolution(w, rows*2)
	m.clamp()
}

// footerHeight is the status line plus however tall the help currently is.
func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// clamp keeps the circle inside the visible world. Before the first
// WindowSizeMsg the aspect is unknown and the circle is left alone.
func (m *Model) clamp() {
	if m.rast == nil || m.width == 0 {
		return
	}
	m.Circle = m.Circle.Clamped(circle.WorldBounds(m.rast.Transform().Aspect()))
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	fb := m.rast.Render(m.Circle, m.Background)
	canvas := renderCells(Cells(fb))
	status := titleStyle.Render(" circle ") + dimStyle.Render(" "+m.status)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, status, m.help.View(m.keys))
}
