// ABOUTME: Presentation coordinator: Idle -> Presenting -> Presented -> Dismissing -> Dismissed
// ABOUTME: Owns the backdrop, interprets drag events and triggers the animator's transitions

package present

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	plog "github.com/mauromedda/present-go/internal/log"
)

// State is a coordinator lifecycle stage.
type State int

const (
	Idle State = iota
	Presenting
	Presented
	Dismissing
	Dismissed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Presenting:
		return "presenting"
	case Presented:
		return "presented"
	case Dismissing:
		return "dismissing"
	case Dismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when a request does not apply to the current state.
var ErrInvalidTransition = errors.New("invalid presentation state transition")

// Coordinator drives one present/dismiss cycle of one screen.
// It is not safe for concurrent use; call it from the host's UI loop.
type Coordinator struct {
	id        string
	contract  Contract
	container *Container
	content   *View
	backdrop  *Backdrop
	sched     *Scheduler
	animator  *Animator
	resolver  Resolver
	geometry  Geometry
	state     State

	dragAttached   bool
	gesture        *gestureState
	dismissPending bool

	onStateChange func(from, to State)
	onDismissed   func(finished bool)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithResolver overrides the default geometry resolver.
func WithResolver(r Resolver) Option {
	return func(c *Coordinator) { c.resolver = r }
}

// OnStateChange registers a callback fired after every state transition.
func OnStateChange(fn func(from, to State)) Option {
	return func(c *Coordinator) { c.onStateChange = fn }
}

// OnDismissed registers a callback fired on reaching Dismissed.
// finished is false when the exit animation was interrupted.
func OnDismissed(fn func(finished bool)) Option {
	return func(c *Coordinator) { c.onDismissed = fn }
}

// NewCoordinator snapshots p's contract and prepares to present content in container.
func NewCoordinator(p Presentable, container *Container, content *View, sched *Scheduler, opts ...Option) *Coordinator {
	c := &Coordinator{
		id:        uuid.NewString(),
		contract:  p.PresentationContract().snapshot(),
		container: container,
		content:   content,
		sched:     sched,
		animator:  NewAnimator(sched),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies this presentation in logs.
func (c *Coordinator) ID() string { return c.id }

// State returns the current lifecycle stage.
func (c *Coordinator) State() State { return c.state }

// Contract returns the captured contract.
func (c *Coordinator) Contract() Contract { return c.contract }

// Geometry returns the geometry resolved at Present.
func (c *Coordinator) Geometry() Geometry { return c.geometry }

// Content returns the presented view.
func (c *Coordinator) Content() *View { return c.content }

// Backdrop returns the backdrop, or nil before Present.
func (c *Coordinator) Backdrop() *Backdrop { return c.backdrop }

// DragAttached reports whether drag events are currently interpreted.
func (c *Coordinator) DragAttached() bool { return c.dragAttached }

// Present starts the enter transition. Only valid once, from Idle.
func (c *Coordinator) Present() error {
	if c.state != Idle {
		return fmt.Errorf("present from %s: %w", c.state, ErrInvalidTransition)
	}

	bounds := c.container.Bounds
	c.geometry = c.resolver.Resolve(c.contract.Position, c.contract.ContentSize, bounds)
	c.backdrop = newBackdrop(bounds, c.contract.CanClickBackgroundDismiss)
	c.setState(Presenting)

	d := c.contract.AnimateTime
	c.animator.RunEnter(c.container, c.content, c.geometry, d, c.presentationDidEnd)
	c.container.InsertBelow(&c.backdrop.View, c.content)
	c.fadeBackdrop(1, d, EaseInOut)
	return nil
}

// Dismiss starts the exit transition. While still presenting, the enter
// animation is interrupted first.
func (c *Coordinator) Dismiss() error {
	switch c.state {
	case Presented:
		c.beginDismissal()
		return nil
	case Presenting:
		c.dismissPending = true
		c.animator.Cancel(c.content)
		return nil
	default:
		return fmt.Errorf("dismiss from %s: %w", c.state, ErrInvalidTransition)
	}
}

// TapBackdrop handles a tap on the backdrop. Returns true if it dismissed.
func (c *Coordinator) TapBackdrop() bool {
	if c.state != Presented || c.backdrop == nil || !c.backdrop.Tappable {
		return false
	}
	c.beginDismissal()
	return true
}

// HandleDragEvent feeds a drag phase with the host's raw vertical translation.
// Returns false when the event was ignored.
func (c *Coordinator) HandleDragEvent(phase DragPhase, translation float64) bool {
	if c.state != Presented || !c.dragAttached {
		return false
	}
	pos := c.contract.Position
	extent := c.contract.PrimaryExtent()

	switch phase {
	case DragBegan:
		c.gesture = &gestureState{panStart: translation}
		return true

	case DragChanged:
		if c.gesture == nil {
			return false
		}
		c.sched.Cancel(c.content, propTranslate)
		c.sched.Cancel(&c.backdrop.View, propAlpha)
		c.gesture.delta = DragDelta(pos, c.gesture.panStart, translation, extent)
		c.content.TranslateY = dragOffset(pos, c.gesture.delta)
		c.backdrop.Alpha = BackdropAlpha(c.gesture.delta, extent)
		return true

	case DragEnded, DragCancelled, DragFailed:
		if c.gesture == nil {
			return false
		}
		delta := DragDelta(pos, c.gesture.panStart, translation, extent)
		c.gesture = nil
		if delta > DismissThreshold(extent) {
			plog.Debug("present[%s]: drag %.1f past threshold, dismissing", c.id, delta)
			c.beginDismissal()
		} else {
			c.snapBack()
		}
		return true
	}
	return false
}

// ContainerResized updates the container and stretches the backdrop to it.
// Content geometry stays as resolved at Present.
func (c *Coordinator) ContainerResized(bounds Rect) {
	c.container.Bounds = bounds
	if c.backdrop != nil {
		c.backdrop.SetFrame(bounds)
	}
}

func (c *Coordinator) presentationDidEnd(finished bool) {
	if !finished {
		plog.Debug("present[%s]: enter animation interrupted", c.id)
	}
	c.setState(Presented)
	if c.contract.DragEnabled() {
		c.dragAttached = true
	}
	if c.dismissPending {
		c.dismissPending = false
		c.beginDismissal()
	}
}

func (c *Coordinator) beginDismissal() {
	c.gesture = nil
	c.dragAttached = false
	c.setState(Dismissing)

	d := c.contract.AnimateTime
	c.fadeBackdrop(0, d, EaseInOut)
	c.animator.RunExit(c.container, c.content, c.geometry, d, c.dismissalDidEnd)
}

func (c *Coordinator) dismissalDidEnd(finished bool) {
	c.setState(Dismissed)
	if finished {
		c.container.Remove(&c.backdrop.View)
		c.container.Remove(c.content)
	} else {
		plog.Debug("present[%s]: exit animation interrupted, keeping backdrop", c.id)
	}
	if c.onDismissed != nil {
		c.onDismissed(finished)
	}
}

func (c *Coordinator) snapBack() {
	from := c.content.TranslateY
	c.sched.Animate(c.content, propTranslate, SnapBackDuration, Linear, func(p float64) {
		c.content.TranslateY = lerp(from, 0, p)
	}, nil)
	c.fadeBackdrop(1, SnapBackDuration, Linear)
}

func (c *Coordinator) fadeBackdrop(to float64, d time.Duration, curve Curve) {
	b := c.backdrop
	from := b.Alpha
	c.sched.Animate(&b.View, propAlpha, d, curve, func(p float64) {
		b.Alpha = lerp(from, to, p)
	}, nil)
}

func (c *Coordinator) setState(s State) {
	from := c.state
	c.state = s
	plog.Debug("present[%s]: %s -> %s", c.id, from, s)
	if c.onStateChange != nil {
		c.onStateChange(from, s)
	}
}
