// Package hoverzone implements the desktop-only pointer effect that divides
// the viewport into horizontal thirds: the left third expands the first
// section and collapses the second, the right third the inverse, and the
// middle third collapses both.
package hoverzone

// DesktopBreakpoint is the minimum viewport width for the hover effect.
const DesktopBreakpoint = 768

// Zone is the horizontal third the pointer currently occupies.
type Zone int

const (
	ZoneLeft Zone = iota
	ZoneMiddle
	ZoneRight
)

// Rect is an axis-aligned suppression region (header, footer) in viewport
// coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// State is the expand/collapse state of the two sections.
type State struct {
	FirstExpanded  bool
	SecondExpanded bool
}

// Controller tracks pointer position against the viewport thirds. The
// breakpoint check runs once at construction and is not re-evaluated on
// resize; that mirrors the page's observed behavior.
type Controller struct {
	width    int
	suppress []Rect
	enabled  bool
	state    State
}

// New creates a controller for the given viewport width and suppression
// regions.
func New(viewportWidth int, suppress ...Rect) *Controller {
	return &Controller{
		width:    viewportWidth,
		suppress: suppress,
		enabled:  viewportWidth >= DesktopBreakpoint,
	}
}

// Enabled reports whether the effect is active (desktop viewports only).
func (c *Controller) Enabled() bool { return c.enabled }

// State returns the current section state.
func (c *Controller) State() State { return c.state }

// ZoneAt maps an x coordinate to its horizontal third.
func (c *Controller) ZoneAt(x int) Zone {
	third := c.width / 3
	switch {
	case x < third:
		return ZoneLeft
	case x >= c.width-third:
		return ZoneRight
	default:
		return ZoneMiddle
	}
}

// PointerMove evaluates one pointer sample and returns the resulting state.
// Inside a suppression region the effect pauses: the state is left exactly
// as it was until the pointer moves out.
func (c *Controller) PointerMove(x, y int) State {
	if !c.enabled {
		return c.state
	}

	for _, r := range c.suppress {
		if r.Contains(x, y) {
			return c.state
		}
	}

	switch c.ZoneAt(x) {
	case ZoneLeft:
		c.state = State{FirstExpanded: true, SecondExpanded: false}
	case ZoneRight:
		c.state = State{FirstExpanded: false, SecondExpanded: true}
	default:
		c.state = State{}
	}
	return c.state
}

// Leave collapses both sections when the pointer exits the window.
func (c *Controller) Leave() State {
	if c.enabled {
		c.state = State{}
	}
	return c.state
}
