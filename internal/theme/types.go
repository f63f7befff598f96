// Package theme implements the theme/display-mode state manager: a persisted
// user preference, the effective light/dark mode derived from it and the OS
// color-scheme signal, and the mobile floating-toolbar state machine.
package theme

import "fmt"

// Preference is the user's theme choice, persisted across sessions.
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"
)

// ParsePreference validates a raw preference string. Values outside the
// three-element enumeration are rejected rather than silently treated as an
// explicit choice.
func ParsePreference(s string) (Preference, error) {
	switch Preference(s) {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return Preference(s), nil
	}
	return "", fmt.Errorf("unrecognized theme preference %q", s)
}

// Mode is the actually-rendered light/dark mode. Never persisted; always
// recomputed from (Preference, OS signal).
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Mode derives the effective mode from the preference. For system, the OS
// signal decides; explicit choices ignore it.
func (p Preference) Mode(systemDark bool) Mode {
	if p == PreferenceSystem {
		if systemDark {
			return ModeDark
		}
		return ModeLight
	}
	if p == PreferenceDark {
		return ModeDark
	}
	return ModeLight
}

// Glyph names for the mode indicator, consumed by the icon font.
const (
	GlyphAuto  = "routine"
	GlyphDark  = "dark_mode"
	GlyphLight = "light_mode"
)

// Glyph returns the indicator glyph for the preference.
func (p Preference) Glyph() string {
	switch p {
	case PreferenceSystem:
		return GlyphAuto
	case PreferenceDark:
		return GlyphDark
	default:
		return GlyphLight
	}
}

// Preferences lists the selectable options in dropdown order.
func Preferences() []Preference {
	return []Preference{PreferenceLight, PreferenceDark, PreferenceSystem}
}
