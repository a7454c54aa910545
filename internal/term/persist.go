package term

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/iburimskiy/circle-tutorial/internal/circle"
	"github.com/iburimskiy/circle-tutorial/internal/config"
	"github.com/iburimskiy/circle-tutorial/internal/state"
)

// The desktop app stores all its settings as one object under
// config.SettingsKey. The preview only touches the raster fields and leaves
// the rest as it found them.
const (
	worldField      = "world"
	backgroundField = "background"
)

// LoadWorld reads the raster circle and background, falling back to the
// defaults for anything missing.
func LoadWorld(store *state.Store) (circle.Circle, color.NRGBA, error) {
	c, bg := circle.DefaultWorld(), config.RasterBG
	fields := map[string]json.RawMessage{}
	if _, err := store.Get(config.SettingsKey, &fields); err != nil {
		return c, bg, err
	}
	if raw, ok := fields[worldField]; ok {
		if err := json.Unmarshal(raw, &c); err != nil {
			return circle.DefaultWorld(), bg, fmt.Errorf("term: decode world: %w", err)
		}
	}
	if raw, ok := fields[backgroundField]; ok {
		if err := json.Unmarshal(raw, &bg); err != nil {
			return c, config.RasterBG, fmt.Errorf("term: decode background: %w", err)
		}
	}
	return c, bg, nil
}

// SaveWorld writes the raster circle and background back into the settings
// object and saves the store.
func SaveWorld(store *state.Store, c circle.Circle, bg color.NRGBA) error {
	fields := map[string]json.RawMessage{}
	if _, err := store.Get(config.SettingsKey, &fields); err != nil {
		return err
	}
	for name, v := range map[string]interface{}{worldField: c, backgroundField: bg} {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("term: encode %s: %w", name, err)
		}
		fields[name] = raw
	}
	if err := store.Set(config.SettingsKey, fields); err != nil {
		return err
	}
	return store.Save()
}
