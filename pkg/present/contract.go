// ABOUTME: Presentation capability contract declared by every presentable screen
// ABOUTME: NewContract applies defaults explicitly; Presentable makes the contract mandatory

package present

import (
	"fmt"
	"strings"
	"time"
)

// Position selects where an overlay rests and which direction it animates from.
type Position int

const (
	// Bottom slides the overlay up from below the container.
	Bottom Position = iota
	// Top slides the overlay down from above the container.
	Top
	// Center scales the overlay up from its midpoint.
	Center
)

// Positions lists every valid position in declaration order.
var Positions = []Position{Bottom, Top, Center}

func (p Position) String() string {
	switch p {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// ParsePosition maps "top", "bottom" or "center" (case-insensitive) to a Position.
func ParsePosition(s string) (Position, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Positions {
		if p.String() == name {
			return p, nil
		}
	}
	return Bottom, fmt.Errorf("unknown position %q", s)
}

// Size is a width/height pair in container units.
type Size struct {
	Width  float64
	Height float64
}

// Defaults applied by NewContract.
const (
	DefaultPosition    = Bottom
	DefaultAnimateTime = 250 * time.Millisecond
)

// Contract describes how a screen wants to be presented.
// The coordinator copies it once at creation; later changes on the screen
// side have no effect on a running presentation.
type Contract struct {
	ContentSize               Size
	Position                  Position
	AnimateTime               time.Duration
	CanPanDown                bool
	CanClickBackgroundDismiss bool
}

// ContractOption customizes a Contract built by NewContract.
type ContractOption func(*Contract)

// WithPosition overrides the default bottom position.
func WithPosition(p Position) ContractOption {
	return func(c *Contract) { c.Position = p }
}

// WithAnimateTime overrides the default 250ms enter/exit duration.
func WithAnimateTime(d time.Duration) ContractOption {
	return func(c *Contract) { c.AnimateTime = d }
}

// WithPanDown enables or disables drag-to-dismiss.
func WithPanDown(enabled bool) ContractOption {
	return func(c *Contract) { c.CanPanDown = enabled }
}

// WithBackgroundDismiss enables or disables dismiss on backdrop tap.
func WithBackgroundDismiss(enabled bool) ContractOption {
	return func(c *Contract) { c.CanClickBackgroundDismiss = enabled }
}

// NewContract returns a contract for content of the given size with every
// optional field at its default: bottom position, 250ms animations, drag and
// backdrop dismissal enabled.
func NewContract(size Size, opts ...ContractOption) Contract {
	c := Contract{
		ContentSize:               size,
		Position:                  DefaultPosition,
		AnimateTime:               DefaultAnimateTime,
		CanPanDown:                true,
		CanClickBackgroundDismiss: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// snapshot returns the contract with a usable animation time.
func (c Contract) snapshot() Contract {
	if c.AnimateTime <= 0 {
		c.AnimateTime = DefaultAnimateTime
	}
	return c
}

// PrimaryExtent is the content length along the drag axis.
func (c Contract) PrimaryExtent() float64 {
	return c.ContentSize.Height
}

// DragEnabled reports whether drag-to-dismiss applies. Center overlays never drag.
func (c Contract) DragEnabled() bool {
	return c.CanPanDown && c.Position != Center
}

// Presentable is implemented by every screen that can be routed through a
// Presenter. Screens declare their preferences by returning a Contract.
type Presentable interface {
	PresentationContract() Contract
}

// ContractFunc adapts a plain Contract into a Presentable.
type ContractFunc func() Contract

// PresentationContract implements Presentable.
func (f ContractFunc) PresentationContract() Contract { return f() }
