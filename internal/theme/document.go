package theme

// Document is the mutation surface the controller drives. The stylesheet is
// the sole consumer of the attribute and class changes; implementations only
// need to record them.
type Document interface {
	// SetRootAttr sets a document-level attribute (data-theme = light|dark).
	SetRootAttr(name, value string)
	// SetGlyph replaces the mode-indicator glyph.
	SetGlyph(name string)
	// SetOptionFilled toggles the filled emphasis marker on one dropdown option.
	SetOptionFilled(p Preference, filled bool)
	// AnimateGlyph plays a one-shot animation on the indicator glyph. The
	// animation class removes itself when the animation finishes, so repeated
	// rapid calls never leave a stuck class.
	AnimateGlyph()
	// AnimateOption plays a one-shot animation on a dropdown option's icon.
	AnimateOption(p Preference)
	// SetGlyphEmphasis toggles press/release weight feedback on the toggle
	// button. Purely cosmetic.
	SetGlyphEmphasis(pressed bool)
	// SetToolbarVisible shows or hides the floating toolbar.
	SetToolbarVisible(visible bool)
	// SetDropdownOpen opens or collapses the dropdown.
	SetDropdownOpen(open bool)
}

// State is a Document implementation that records the current page state. It
// backs the server-side render of the initial page and the package tests.
type State struct {
	RootAttrs    map[string]string
	Glyph        string
	Filled       map[Preference]bool
	GlyphAnims   int
	OptionAnims  map[Preference]int
	GlyphPressed bool
	ToolbarShown bool
	DropdownOpen bool
}

// NewState returns an empty recorded document state.
func NewState() *State {
	return &State{
		RootAttrs:   make(map[string]string),
		Filled:      make(map[Preference]bool),
		OptionAnims: make(map[Preference]int),
	}
}

func (s *State) SetRootAttr(name, value string)       { s.RootAttrs[name] = value }
func (s *State) SetGlyph(name string)                 { s.Glyph = name }
func (s *State) SetOptionFilled(p Preference, f bool) { s.Filled[p] = f }
func (s *State) AnimateGlyph()                        { s.GlyphAnims++ }
func (s *State) AnimateOption(p Preference)           { s.OptionAnims[p]++ }
func (s *State) SetGlyphEmphasis(pressed bool)        { s.GlyphPressed = pressed }
func (s *State) SetToolbarVisible(visible bool)       { s.ToolbarShown = visible }
func (s *State) SetDropdownOpen(open bool)            { s.DropdownOpen = open }

// FilledOption returns the single option currently marked filled, or "" if
// none is.
func (s *State) FilledOption() Preference {
	for p, f := range s.Filled {
		if f {
			return p
		}
	}
	return ""
}
