package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/game"
	"github.com/iburimskiy/circle-tutorial/internal/logging"
	"github.com/iburimskiy/circle-tutorial/internal/sound"
	"github.com/iburimskiy/circle-tutorial/internal/state"
	"github.com/iburimskiy/circle-tutorial/internal/ui"
)

func main() {
	version := flag.Int("version", 0, "start at tutorial version 1-4 (default: last used)")
	statePath := flag.String("state", "", "settings file (default: user config dir)")
	noPersist := flag.Bool("no-persist", false, "do not load or save settings")
	debug := flag.Bool("debug", false, "enable debug logging to ./"+config.DebugLog)
	clicks := flag.Bool("sound", false, "click when a slider is grabbed")
	width := flag.Int("width", config.WindowWidth, "window width")
	height := flag.Int("height", config.WindowHeight, "window height")
	flag.Parse()

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		f, err := os.OpenFile(config.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = logging.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	store := openStore(*statePath, *noPersist, logger)
	settings := game.LoadSettings(store, logger)
	if *version != 0 {
		settings.Version = game.Version(*version)
	}

	g := game.New(settings, ui.NativeColorPicker{}, sound.NewClicker(*clicks))
	g.Logger = logger
	g.OnExit = func(s game.Settings) error {
		if err := store.Set(config.SettingsKey, s); err != nil {
			return err
		}
		if err := store.Save(); err != nil {
			return err
		}
		logger.Infof("state", "saved settings to %q", store.Path())
		return nil
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Circle - 1-4: version, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !game.IsTermination(err) {
		logger.Errorf("main", "run: %v", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openStore returns the settings store. Any failure falls back to an
// in-memory store so the app still starts.
func openStore(path string, disabled bool, logger logging.Logger) *state.Store {
	if disabled {
		return state.Memory()
	}
	if path == "" {
		p, err := state.DefaultPath(config.AppName, config.StateFile)
		if err != nil {
			logger.Errorf("state", "%v", err)
			return state.Memory()
		}
		path = p
	}
	store, err := state.Open(path)
	if err != nil {
		logger.Errorf("state", "%v", err)
		fmt.Println("settings ignored:", err)
		return state.Memory()
	}
	logger.Infof("state", "settings file %q", path)
	return store
}
