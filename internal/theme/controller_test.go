package theme

import (
	"context"
	"testing"
)

func setupController(t *testing.T, width int) (*Controller, *State, *StaticScheme, *MemoryStore) {
	t.Helper()
	doc := NewState()
	scheme := NewStaticScheme(false)
	store := NewMemoryStore()
	c := NewController(store, scheme, doc, width)
	t.Cleanup(c.Close)
	return c, doc, scheme, store
}

func TestInitDefaultsToSystem(t *testing.T) {
	c, doc, scheme, store := setupController(t, 1280)
	scheme.Set(true) // OS reports dark, nothing stored yet

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if doc.RootAttrs["data-theme"] != "dark" {
		t.Errorf("data-theme = %q, want dark", doc.RootAttrs["data-theme"])
	}
	if doc.Glyph != GlyphAuto {
		t.Errorf("glyph = %q, want %q", doc.Glyph, GlyphAuto)
	}
	if got, _ := store.Load(context.Background()); got != PreferenceSystem {
		t.Errorf("stored preference = %q, want system", got)
	}
	// Initial load applies without the animation flash.
	if doc.GlyphAnims != 0 {
		t.Errorf("GlyphAnims = %d on init, want 0", doc.GlyphAnims)
	}
}

func TestApplyPersistsVerbatim(t *testing.T) {
	c, _, _, store := setupController(t, 1280)
	ctx := context.Background()

	for _, pref := range Preferences() {
		if _, err := c.Apply(ctx, pref, true); err != nil {
			t.Fatalf("Apply(%q): %v", pref, err)
		}
		if got, _ := store.Load(ctx); got != pref {
			t.Errorf("stored = %q, want %q", got, pref)
		}
	}
}

func TestApplyRejectsUnknownPreference(t *testing.T) {
	c, doc, _, _ := setupController(t, 1280)

	if _, err := c.Apply(context.Background(), Preference("sepia"), true); err == nil {
		t.Fatal("Apply with unknown preference should fail")
	}
	if doc.RootAttrs["data-theme"] != "" {
		t.Errorf("document mutated on invalid preference: %q", doc.RootAttrs["data-theme"])
	}
}

func TestApplyMarksExactlyOneOptionFilled(t *testing.T) {
	c, doc, _, _ := setupController(t, 1280)
	ctx := context.Background()

	if _, err := c.Apply(ctx, PreferenceDark, true); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := c.Apply(ctx, PreferenceLight, true); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	filled := 0
	for _, p := range Preferences() {
		if doc.Filled[p] {
			filled++
		}
	}
	if filled != 1 || !doc.Filled[PreferenceLight] {
		t.Errorf("filled marks = %v, want only light", doc.Filled)
	}
}

func TestApplyIdempotent(t *testing.T) {
	c, doc, _, _ := setupController(t, 1280)
	ctx := context.Background()

	m1, err := c.Apply(ctx, PreferenceDark, true)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	m2, err := c.Apply(ctx, PreferenceDark, true)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if m1 != m2 {
		t.Errorf("modes differ: %q vs %q", m1, m2)
	}
	if doc.FilledOption() != PreferenceDark {
		t.Errorf("filled option = %q, want dark", doc.FilledOption())
	}
	// Each invocation plays its own one-shot animation; none sticks.
	if doc.GlyphAnims != 2 {
		t.Errorf("GlyphAnims = %d, want 2", doc.GlyphAnims)
	}
}

func TestSchemeChangeWhileSystem(t *testing.T) {
	c, doc, scheme, _ := setupController(t, 1280)

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if doc.RootAttrs["data-theme"] != "light" {
		t.Fatalf("data-theme = %q, want light", doc.RootAttrs["data-theme"])
	}

	scheme.Set(true)

	if doc.RootAttrs["data-theme"] != "dark" {
		t.Errorf("data-theme = %q after OS change, want dark", doc.RootAttrs["data-theme"])
	}
}

func TestSchemeChangeIgnoredForExplicitPreference(t *testing.T) {
	c, doc, scheme, _ := setupController(t, 1280)
	ctx := context.Background()

	if err := c.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := c.Apply(ctx, PreferenceLight, true); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	scheme.Set(true)

	if doc.RootAttrs["data-theme"] != "light" {
		t.Errorf("data-theme = %q, explicit choice must override OS change", doc.RootAttrs["data-theme"])
	}
}

func TestOptionClickOnMobileClosesDropdown(t *testing.T) {
	c, doc, _, store := setupController(t, 390)
	ctx := context.Background()

	c.Toolbar().SetOpen(true)
	if err := c.HandleOptionClick(ctx, PreferenceDark); err != nil {
		t.Fatalf("HandleOptionClick: %v", err)
	}

	if doc.RootAttrs["data-theme"] != "dark" {
		t.Errorf("data-theme = %q, want dark", doc.RootAttrs["data-theme"])
	}
	if got, _ := store.Load(ctx); got != PreferenceDark {
		t.Errorf("stored = %q, want dark", got)
	}
	if c.Toolbar().Open() {
		t.Error("dropdown should collapse after mobile option click")
	}
}

func TestOptionClickOnDesktopKeepsDropdown(t *testing.T) {
	c, _, _, _ := setupController(t, 1280)

	c.Toolbar().SetOpen(true)
	if err := c.HandleOptionClick(context.Background(), PreferenceDark); err != nil {
		t.Fatalf("HandleOptionClick: %v", err)
	}
	if !c.Toolbar().Open() {
		t.Error("desktop option click should not collapse the dropdown")
	}
}

func TestOutsideClickCollapsesOnMobileOnly(t *testing.T) {
	c, _, _, _ := setupController(t, 390)
	c.Toolbar().SetOpen(true)

	c.HandleOutsideClick(true) // inside the toolbar: no change
	if !c.Toolbar().Open() {
		t.Error("click inside toolbar should not collapse")
	}

	c.HandleOutsideClick(false)
	if c.Toolbar().Open() {
		t.Error("outside click should collapse on mobile")
	}

	desktop, _, _, _ := setupController(t, 1280)
	desktop.Toolbar().SetOpen(true)
	desktop.HandleOutsideClick(false)
	if !desktop.Toolbar().Open() {
		t.Error("outside click is mobile-only")
	}
}

func TestPressReleaseFeedback(t *testing.T) {
	c, doc, _, _ := setupController(t, 390)

	c.Press()
	if !doc.GlyphPressed {
		t.Error("Press should emphasize the glyph")
	}
	c.Release()
	if doc.GlyphPressed {
		t.Error("Release should restore the glyph")
	}
}
