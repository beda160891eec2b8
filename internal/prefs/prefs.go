// Package prefs persists desktop window preferences between sessions in
// the per-user data directory.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the data directory used for preferences.
const AppName = "lawn-defense"

const (
	prefsObject   = "window"
	prefsProperty = "prefs"
)

// Prefs are the remembered window settings.
type Prefs struct {
	Selected string  `yaml:"selected"` // Plant kind name picked last
	Scale    float64 `yaml:"scale"`    // Window size relative to the world
	Player   string  `yaml:"player"`   // Name recorded with saved runs
}

// Default returns the preferences used on first launch.
func Default() Prefs {
	return Prefs{
		Selected: "shooter",
		Scale:    1,
		Player:   "local",
	}
}

// Store loads and saves Prefs. A Store without a backing manager keeps
// nothing and always loads the defaults.
type Store struct {
	m *gdata.Manager
}

// Open opens the preference store for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("prefs: %w", err)
	}
	return &Store{m: m}, nil
}

// Load returns the saved preferences. Missing or zero fields fall back
// to the defaults.
func (s *Store) Load() (Prefs, error) {
	p := Default()
	if s == nil || s.m == nil || !s.m.ObjectPropExists(prefsObject, prefsProperty) {
		return p, nil
	}

	data, err := s.m.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return p, fmt.Errorf("prefs: load: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("prefs: decode: %w", err)
	}
	return p.normalize(), nil
}

// Save writes the preferences.
func (s *Store) Save(p Prefs) error {
	if s == nil || s.m == nil {
		return nil
	}
	data, err := yaml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := s.m.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}

func (p Prefs) normalize() Prefs {
	d := Default()
	if p.Selected == "" {
		p.Selected = d.Selected
	}
	if p.Scale <= 0 || p.Scale > 4 {
		p.Scale = d.Scale
	}
	if p.Player == "" {
		p.Player = d.Player
	}
	return p
}
