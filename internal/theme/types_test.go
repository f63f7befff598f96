package theme

import "testing"

func TestParsePreference(t *testing.T) {
	for _, s := range []string{"light", "dark", "system"} {
		if _, err := ParsePreference(s); err != nil {
			t.Errorf("ParsePreference(%q) error: %v", s, err)
		}
	}

	for _, s := range []string{"", "Dark", "auto", "blue"} {
		if _, err := ParsePreference(s); err == nil {
			t.Errorf("ParsePreference(%q) should fail", s)
		}
	}
}

func TestExplicitPreferenceIgnoresSystem(t *testing.T) {
	for _, systemDark := range []bool{false, true} {
		if got := PreferenceLight.Mode(systemDark); got != ModeLight {
			t.Errorf("light.Mode(%v) = %q", systemDark, got)
		}
		if got := PreferenceDark.Mode(systemDark); got != ModeDark {
			t.Errorf("dark.Mode(%v) = %q", systemDark, got)
		}
	}
}

func TestSystemPreferenceFollowsSignal(t *testing.T) {
	if got := PreferenceSystem.Mode(true); got != ModeDark {
		t.Errorf("system.Mode(true) = %q", got)
	}
	if got := PreferenceSystem.Mode(false); got != ModeLight {
		t.Errorf("system.Mode(false) = %q", got)
	}
}

func TestGlyphs(t *testing.T) {
	if PreferenceSystem.Glyph() != GlyphAuto {
		t.Errorf("system glyph = %q", PreferenceSystem.Glyph())
	}
	if PreferenceDark.Glyph() != GlyphDark {
		t.Errorf("dark glyph = %q", PreferenceDark.Glyph())
	}
	if PreferenceLight.Glyph() != GlyphLight {
		t.Errorf("light glyph = %q", PreferenceLight.Glyph())
	}
}
