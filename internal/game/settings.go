package game

import (
	"image/color"

	"github.com/iburimskiy/circle-tutorial/internal/circle"
	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/logging"
	"github.com/iburimskiy/circle-tutorial/internal/state"
)

// Version identifies one step of the tutorial.
type Version int

const (
	Immediate Version = iota + 1
	Panels
	Constants
	Raster
)

var versionNames = map[Version]string{
	Immediate: "Immediate",
	Panels:    "Panels",
	Constants: "Constants",
	Raster:    "Raster",
}

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return "Unknown"
}

func (v Version) Valid() bool { return v >= Immediate && v <= Raster }

// Settings is everything the app persists between runs.
type Settings struct {
	Version    Version       `json:"version"`
	Immediate  circle.Circle `json:"immediate"`
	Panels     circle.Circle `json:"panels"`
	Constants  circle.Circle `json:"constants"`
	World      circle.Circle `json:"world"`
	Background color.NRGBA   `json:"background"`
	Resolution int           `json:"resolution"`
}

func DefaultSettings() Settings {
	return Settings{
		Version:    Immediate,
		Immediate:  circle.DefaultPixel(),
		Panels:     circle.DefaultPixel(),
		Constants:  circle.DefaultPixel(),
		World:      circle.DefaultWorld(),
		Background: config.RasterBG,
		Resolution: config.DefaultResolution,
	}
}

// LoadSettings reads the persisted settings from store. Fields missing from
// the stored document keep their defaults; a document that does not decode
// is ignored as a whole.
func LoadSettings(store *state.Store, logger logging.Logger) Settings {
	settings := DefaultSettings()
	ok, err := store.Get(config.SettingsKey, &settings)
	if err != nil {
		logger.Errorf("state", "%v", err)
		return DefaultSettings()
	}
	if ok {
		logger.Infof("state", "restored version %d", settings.Version)
	}
	return settings
}
