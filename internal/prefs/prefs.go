// Package prefs handles salesgrid user preferences. Preferences live in the
// same key/value store as the spreadsheet, under their own key.
package prefs

import (
	"fmt"
	"strings"
)

// Key is the storage key preferences are saved under.
const Key = "preferences"

const (
	defaultTheme = "Nightfox"
	defaultColor = "#FFA500"
)

// Prefs holds user preferences for salesgrid.
type Prefs struct {
	Theme string `json:"theme"`
	// Color is the palette colour the colour key applies next.
	Color string `json:"color"`
}

// Store is the subset of storage.Store prefs needs.
type Store interface {
	Save(key string, value any) error
	Load(key string, dest any) (bool, error)
}

// Default returns the built-in preferences.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Color: defaultColor}
}

// Load reads preferences from store, falling back to defaults for missing
// or unreadable values.
func Load(store Store) Prefs {
	p := Default()
	if store == nil {
		return p
	}
	var stored Prefs
	found, err := store.Load(Key, &stored)
	if err != nil || !found {
		return p // Graceful degradation
	}
	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		p.Theme = theme
	}
	if color := strings.TrimSpace(stored.Color); color != "" {
		p.Color = color
	}
	return p
}

// Save writes preferences to store.
func Save(store Store, p Prefs) error {
	if store == nil {
		return fmt.Errorf("no preference store")
	}
	if err := store.Save(Key, p); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
