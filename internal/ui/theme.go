// Package ui holds the theme palettes and the per-request layout context
// shared by the layout and every page.
package ui

import "strings"

// Mode is the color scheme of the interface
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode maps anything but "dark" to light.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeDark)) {
		return ModeDark
	}
	return ModeLight
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Palette is a static set of colors for one mode
type Palette struct {
	Mode       Mode
	Background string
	Paper      string
	Text       string
	Muted      string
	Primary    string
	Secondary  string
	Success    string
	Warning    string
	Error      string
	Info       string
}

var (
	// Light is the default palette
	Light = Palette{
		Mode:       ModeLight,
		Background: "#ffffff",
		Paper:      "#f5f5f5",
		Text:       "#212121",
		Muted:      "#616161",
		Primary:    "#1976d2",
		Secondary:  "#dc004e",
		Success:    "#2e7d32",
		Warning:    "#ed6c02",
		Error:      "#d32f2f",
		Info:       "#0288d1",
	}

	Dark = Palette{
		Mode:       ModeDark,
		Background: "#121212",
		Paper:      "#1e1e1e",
		Text:       "#ffffff",
		Muted:      "#b0b0b0",
		Primary:    "#90caf9",
		Secondary:  "#f48fb1",
		Success:    "#66bb6a",
		Warning:    "#ffa726",
		Error:      "#f44336",
		Info:       "#29b6f6",
	}
)

// PaletteFor returns the palette of mode
func PaletteFor(mode Mode) Palette {
	if mode == ModeDark {
		return Dark
	}
	return Light
}
