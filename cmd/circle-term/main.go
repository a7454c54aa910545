package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/state"
	"github.com/iburimskiy/circle-tutorial/internal/term"
)

func main() {
	statePath := flag.String("state", "", "settings file shared with the desktop app (default: user config dir)")
	noPersist := flag.Bool("no-persist", false, "do not load or save settings")
	flag.Parse()

	store := state.Memory()
	if !*noPersist {
		path := *statePath
		if path == "" {
			p, err := state.DefaultPath(config.AppName, config.StateFile)
			if err != nil {
				log.Fatal(err)
			}
			path = p
		}
		s, err := state.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		store = s
	}

	c, bg, err := term.LoadWorld(store)
	if err != nil {
		log.Printf("using defaults: %v", err)
	}

	final, err := tea.NewProgram(term.New(c, bg), tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatal(err)
	}
	if m, ok := final.(term.Model); ok {
		if err := term.SaveWorld(store, m.Circle, m.Background); err != nil {
			log.Fatal(err)
		}
	}
}
