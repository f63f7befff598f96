package theme

import (
	"context"
	"fmt"
	"log"
)

// PreferenceStore persists the theme preference under a single key. A missing
// or unrecognized stored value reads back as system.
type PreferenceStore interface {
	Load(ctx context.Context) (Preference, error)
	Save(ctx context.Context, p Preference) error
}

// SchemeSource reports the OS color-scheme preference and notifies on change.
type SchemeSource interface {
	// Dark reports whether the OS currently prefers dark mode.
	Dark() bool
	// Notify registers a callback invoked when the OS preference changes.
	// The returned func cancels the registration.
	Notify(fn func(dark bool)) (stop func())
}

// Controller owns the theme preference and reflects the derived effective
// mode into the document. Construct one per page session; there is no
// package-level state.
type Controller struct {
	store   PreferenceStore
	scheme  SchemeSource
	doc     Document
	toolbar *Toolbar

	pref       Preference
	stopNotify func()
}

// NewController wires the controller to its collaborators. viewportWidth
// seeds the floating-toolbar breakpoint check.
func NewController(store PreferenceStore, scheme SchemeSource, doc Document, viewportWidth int) *Controller {
	return &Controller{
		store:   store,
		scheme:  scheme,
		doc:     doc,
		toolbar: NewToolbar(doc, viewportWidth),
		pref:    PreferenceSystem,
	}
}

// Toolbar exposes the floating-toolbar state machine.
func (c *Controller) Toolbar() *Toolbar { return c.toolbar }

// Preference returns the currently applied preference.
func (c *Controller) Preference() Preference { return c.pref }

// Mode returns the current effective mode.
func (c *Controller) Mode() Mode { return c.pref.Mode(c.scheme.Dark()) }

// Init loads the stored preference (absent or unrecognized reads back as
// system), applies it without animation, and subscribes to OS color-scheme
// changes. A change re-derives the effective mode only while the stored
// preference is system; an explicit choice overrides OS changes.
func (c *Controller) Init(ctx context.Context) error {
	pref, err := c.store.Load(ctx)
	if err != nil {
		log.Printf("theme: loading preference: %v (defaulting to system)", err)
		pref = PreferenceSystem
	}

	if _, err := c.Apply(ctx, pref, false); err != nil {
		return err
	}

	c.stopNotify = c.scheme.Notify(func(dark bool) {
		if c.pref != PreferenceSystem {
			return
		}
		if _, err := c.Apply(ctx, PreferenceSystem, true); err != nil {
			log.Printf("theme: reapplying on scheme change: %v", err)
		}
	})

	return nil
}

// Close cancels the OS scheme subscription.
func (c *Controller) Close() {
	if c.stopNotify != nil {
		c.stopNotify()
		c.stopNotify = nil
	}
}

// Apply computes the effective mode for pref, reflects it into the document,
// and persists pref verbatim (including system). When animate is true a
// one-shot animation plays on the indicator glyph and the selected option's
// icon; on initial load it is suppressed to avoid a flash.
func (c *Controller) Apply(ctx context.Context, pref Preference, animate bool) (Mode, error) {
	if _, err := ParsePreference(string(pref)); err != nil {
		return "", err
	}

	c.pref = pref
	mode := pref.Mode(c.scheme.Dark())

	c.doc.SetRootAttr("data-theme", string(mode))
	c.doc.SetGlyph(pref.Glyph())

	// Exactly one option carries the filled marker at any time.
	for _, p := range Preferences() {
		c.doc.SetOptionFilled(p, p == pref)
	}

	if err := c.store.Save(ctx, pref); err != nil {
		return mode, fmt.Errorf("persisting preference: %w", err)
	}

	if animate {
		c.doc.AnimateGlyph()
		c.doc.AnimateOption(pref)
	}

	return mode, nil
}

// HandleOptionClick applies the clicked option's preference. Only on mobile
// viewports does the click also collapse the dropdown.
func (c *Controller) HandleOptionClick(ctx context.Context, pref Preference) error {
	if _, err := c.Apply(ctx, pref, true); err != nil {
		return err
	}
	if c.toolbar.Mobile() {
		c.toolbar.SetOpen(false)
	}
	return nil
}

// HandleOutsideClick collapses the dropdown when a click lands outside the
// toolbar's bounds. Mobile viewports only.
func (c *Controller) HandleOutsideClick(insideToolbar bool) {
	if !c.toolbar.Mobile() || insideToolbar {
		return
	}
	c.toolbar.SetOpen(false)
}

// Press emphasizes the toggle glyph weight on pointer-down/touch-start.
func (c *Controller) Press() { c.doc.SetGlyphEmphasis(true) }

// Release restores the glyph weight on pointer-up/leave/touch-end/cancel.
func (c *Controller) Release() { c.doc.SetGlyphEmphasis(false) }
