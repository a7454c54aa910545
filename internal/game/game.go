// Package game runs the four tutorial versions inside one ebiten window.
// Each version is a stage; the number keys switch between them.
package game

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/logging"
	"github.com/iburimskiy/circle-tutorial/internal/sound"
	"github.com/iburimskiy/circle-tutorial/internal/ui"
)

// stage is one version of the app. update declares its widgets for the frame
// and draw paints everything that is not a widget.
type stage interface {
	version() Version
	canvas() image.Rectangle
	update(u *ui.Context)
	draw(screen *ebiten.Image)
}

type Game struct {
	// OnExit runs once when the window is closed or the user quits.
	OnExit func(Settings) error
	Logger logging.Logger

	ui      *ui.Context
	clicker *sound.Clicker

	immediate *immediateStage
	panels    *panelStage
	constants *panelStage
	raster    *rasterStage
	stages    []stage
	current   int

	// input edge detection
	prevKey map[ebiten.Key]bool

	exited  bool
	lastErr error
}

// New builds the game from persisted settings. A nil picker disables the
// system color dialog; a nil clicker disables click feedback.
func New(s Settings, picker ui.ColorPicker, clicker *sound.Clicker) *Game {
	g := &Game{
		Logger:    logging.NoopLogger{},
		ui:        ui.NewContext(picker),
		clicker:   clicker,
		immediate: newImmediateStage(),
		panels:    newPanelStage(Panels),
		constants: newPanelStage(Constants),
		raster:    newRasterStage(),
		prevKey:   map[ebiten.Key]bool{},
	}
	g.stages = []stage{g.immediate, g.panels, g.constants, g.raster}
	g.ui.OnGrab = g.grab
	g.ApplySettings(s)
	return g
}

// Version returns the active version.
func (g *Game) Version() Version { return g.stages[g.current].version() }

// SetVersion switches stages; unknown versions are ignored.
func (g *Game) SetVersion(v Version) {
	if !v.Valid() {
		return
	}
	g.current = int(v) - 1
	g.Logger.Infof("game", "version %d %s", v, v)
}

// Settings snapshots the live state for persistence.
func (g *Game) Settings() Settings {
	return Settings{
		Version:    g.Version(),
		Immediate:  g.immediate.circle,
		Panels:     g.panels.circle,
		Constants:  g.constants.circle,
		World:      g.raster.circle,
		Background: g.raster.background,
		Resolution: g.raster.resolution,
	}
}

// ApplySettings replaces the live state, clamping every circle to its
// version's slider ranges.
func (g *Game) ApplySettings(s Settings) {
	g.immediate.circle = s.Immediate.Clamped(g.immediate.bounds())
	g.panels.circle = s.Panels.Clamped(g.panels.bounds())
	g.constants.circle = s.Constants.Clamped(g.constants.bounds())
	g.raster.setResolution(s.Resolution)
	g.raster.circle = s.World.Clamped(g.raster.bounds())
	g.raster.background = s.Background
	if s.Version.Valid() {
		g.current = int(s.Version) - 1
	} else {
		g.current = 0
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if ebiten.IsWindowBeingClosed() {
		return g.exit()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return g.exit()
	}
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if justPressed(k) {
			g.SetVersion(Version(i + 1))
		}
	}
	if justPressed(ebiten.KeyTab) {
		g.SetVersion(g.Version()%Raster + 1)
	}

	g.frame(ui.PollInput())
	return nil
}

// frame runs the active stage's widgets against one frame of input.
func (g *Game) frame(in ui.Input) {
	g.ui.Begin(in)
	g.stages[g.current].update(g.ui)
	g.ui.End()
	if err := g.ui.LastError(); err != nil {
		g.fail("ui", err)
	}
}

func (g *Game) grab() {
	if err := g.clicker.Click(); err != nil {
		g.fail("sound", err)
	}
}

func (g *Game) fail(component string, err error) {
	g.lastErr = err
	g.Logger.Errorf(component, "%v", err)
}

// exit persists once and ends the run loop.
func (g *Game) exit() error {
	if !g.exited {
		g.exited = true
		if g.OnExit != nil {
			if err := g.OnExit(g.Settings()); err != nil {
				g.Logger.Errorf("state", "save on exit: %v", err)
			}
		}
	}
	return ebiten.Termination
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)
	s := g.stages[g.current]
	s.draw(screen)
	g.ui.Draw(screen)

	canvas := s.canvas()
	status := g.status()
	ebitenutil.DebugPrintAt(screen, status, canvas.Min.X+12, canvas.Max.Y-20)
}

func (g *Game) status() string {
	v := g.Version()
	status := fmt.Sprintf("v%d %s | 1-4 / Tab: switch version, Esc/Q: quit", v, v)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// IsTermination reports whether err is the normal end of a run.
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
