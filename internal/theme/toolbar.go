package theme

// MobileBreakpoint is the viewport width (in CSS pixels) separating mobile
// and desktop behavior. Must stay in sync with the stylesheet media query.
const MobileBreakpoint = 768

// ScrollThreshold is the vertical offset below which the floating toolbar
// stays hidden.
const ScrollThreshold = 100

// Toolbar is the floating-toolbar state machine: {hidden, visible} x
// {closed, open}, mobile only. The visible state is never asserted on
// desktop viewports, and crossing to desktop width forces hidden/closed
// unconditionally.
type Toolbar struct {
	doc      Document
	width    int
	baseline int
	visible  bool
	open     bool
}

// NewToolbar creates the state machine with the current viewport width.
func NewToolbar(doc Document, viewportWidth int) *Toolbar {
	return &Toolbar{doc: doc, width: viewportWidth}
}

// Mobile reports whether the viewport currently matches the mobile breakpoint.
func (t *Toolbar) Mobile() bool { return t.width < MobileBreakpoint }

// Visible reports the floating state.
func (t *Toolbar) Visible() bool { return t.visible }

// Open reports the dropdown state.
func (t *Toolbar) Open() bool { return t.open }

// Baseline returns the last observed scroll offset.
func (t *Toolbar) Baseline() int { return t.baseline }

// HandleScroll evaluates one scroll sample. On mobile, scrolling down past
// the threshold shows the toolbar; scrolling up or sitting at/under the
// threshold hides it and collapses any open dropdown. On desktop the toolbar
// is forced hidden. The baseline updates after every evaluation regardless of
// which transition fired.
func (t *Toolbar) HandleScroll(offset int) {
	if t.Mobile() {
		if offset > ScrollThreshold && offset > t.baseline {
			t.setVisible(true)
		} else {
			t.setVisible(false)
			t.SetOpen(false)
		}
	} else {
		t.setVisible(false)
	}
	t.baseline = offset
}

// HandleResize records the new viewport width. Crossing into desktop width
// forces hidden/closed regardless of scroll state.
func (t *Toolbar) HandleResize(width int) {
	wasMobile := t.Mobile()
	t.width = width
	if wasMobile && !t.Mobile() {
		t.setVisible(false)
		t.SetOpen(false)
	}
}

// Toggle flips the dropdown open-state.
func (t *Toolbar) Toggle() { t.SetOpen(!t.open) }

// SetOpen sets the dropdown state and reflects it into the document.
func (t *Toolbar) SetOpen(open bool) {
	if t.open == open {
		return
	}
	t.open = open
	t.doc.SetDropdownOpen(open)
}

func (t *Toolbar) setVisible(visible bool) {
	if t.visible == visible {
		return
	}
	t.visible = visible
	t.doc.SetToolbarVisible(visible)
}
