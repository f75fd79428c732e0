// ABOUTME: tcell host presenting cell-drawn Content above a base layer
// ABOUTME: Owns the frame loop; mouse button state is turned into drag and backdrop-tap events

package cellhost

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/present-go/internal/eventbus"
	"github.com/mauromedda/present-go/internal/log"
	"github.com/mauromedda/present-go/pkg/present"
)

// Content is anything the Host can present: it declares a contract and
// draws itself into the surface it is given.
type Content interface {
	present.Presentable
	Draw(s Surface)
}

// KeyHandler is implemented by Content that wants key events while presented.
type KeyHandler interface {
	HandleKey(ev *tcell.EventKey) bool
}

// DefaultFrameInterval is the Run loop tick when none is given.
const DefaultFrameInterval = 16 * time.Millisecond

// Option configures a Host.
type Option func(*Host)

// WithClock replaces time.Now for the animation scheduler.
func WithClock(fn func() time.Time) Option {
	return func(h *Host) {
		if fn != nil {
			h.clock = fn
		}
	}
}

// WithBase sets the layer drawn under any presentation.
func WithBase(draw func(s Surface)) Option {
	return func(h *Host) { h.base = draw }
}

// WithKeyHandler receives keys not consumed by the presented content.
func WithKeyHandler(fn func(ev *tcell.EventKey) bool) Option {
	return func(h *Host) { h.keys = fn }
}

// OnDismissed is called after a presented content is gone.
func OnDismissed(fn func(c Content, finished bool)) Option {
	return func(h *Host) { h.onDismissed = fn }
}

// WithSheetStyle sets the style content areas are cleared to before drawing.
func WithSheetStyle(st tcell.Style) Option {
	return func(h *Host) { h.sheet = st }
}

// WithTransitions publishes every presentation state change on bus.
func WithTransitions(bus *eventbus.Bus[eventbus.Transition]) Option {
	return func(h *Host) { h.transitions = bus }
}

// Host presents at most one Content at a time on a tcell screen.
// All methods must be called from the goroutine running the UI loop.
type Host struct {
	screen tcell.Screen
	clock  func() time.Time
	base   func(s Surface)
	keys   func(ev *tcell.EventKey) bool
	sheet  tcell.Style

	onDismissed func(c Content, finished bool)
	transitions *eventbus.Bus[eventbus.Transition]

	sched     *present.Scheduler
	container *present.Container

	content Content
	coord   *present.Coordinator
	view    *present.View

	pressed      bool
	dragging     bool
	dragOriginY  int
	backdropDown bool
}

// New returns a Host drawing on screen. The screen must already be initialized.
func New(screen tcell.Screen, opts ...Option) *Host {
	h := &Host{
		screen: screen,
		clock:  time.Now,
		sheet:  tcell.StyleDefault,
	}
	for _, opt := range opts {
		opt(h)
	}
	w, ht := screen.Size()
	h.sched = present.NewScheduler(h.clock)
	h.container = present.NewContainer(present.Rect{Width: float64(w), Height: float64(ht)})
	return h
}

// State returns the presentation state, Idle when nothing is presented.
func (h *Host) State() present.State {
	if h.coord == nil {
		return present.Idle
	}
	return h.coord.State()
}

// Content returns the presented content, or nil.
func (h *Host) Content() Content { return h.content }

// Animating reports whether any animation is running.
func (h *Host) Animating() bool { return h.sched.Active() }

// Present starts presenting c.
func (h *Host) Present(c Content) error {
	if c == nil {
		return fmt.Errorf("cellhost: present nil content")
	}
	switch h.State() {
	case present.Presenting, present.Presented, present.Dismissing:
		return fmt.Errorf("cellhost: present while %s: %w", h.State(), present.ErrInvalidTransition)
	}

	for _, v := range h.container.Views() {
		h.container.Remove(v)
	}

	view := present.NewView(present.Rect{})
	var coord *present.Coordinator
	coord = present.NewCoordinator(c, h.container, view, h.sched,
		present.WithResolver(present.Resolver{PointSize: 1}),
		present.OnStateChange(func(from, to present.State) {
			h.transitions.Publish(eventbus.Transition{
				Presentation: coord.ID(), Content: fmt.Sprintf("%T", c), From: from, To: to,
			})
		}),
		present.OnDismissed(func(finished bool) { h.dismissed(finished) }),
	)
	if err := coord.Present(); err != nil {
		return err
	}
	h.content, h.coord, h.view = c, coord, view
	log.Debug("cellhost: presenting %T as %s", c, coord.ID())
	return nil
}

// PerformSegue presents dest if it satisfies Content. A destination without a
// presentation contract yields a *present.ContractViolationError.
func (h *Host) PerformSegue(id string, dest any) error {
	seg := present.Segue{
		Identifier: id,
		Source: present.PresenterFunc(func(p present.Presentable) error {
			c, ok := p.(Content)
			if !ok {
				return fmt.Errorf("segue %q: %T cannot draw into cells", id, p)
			}
			return h.Present(c)
		}),
		Destination: dest,
	}
	return seg.Perform()
}

// Dismiss starts dismissing the presented content.
func (h *Host) Dismiss() error {
	if h.coord == nil {
		return fmt.Errorf("cellhost: nothing presented: %w", present.ErrInvalidTransition)
	}
	h.pressed, h.dragging, h.backdropDown = false, false, false
	return h.coord.Dismiss()
}

// Advance steps animations to now.
func (h *Host) Advance(now time.Time) {
	h.sched.Advance(now)
}

// HandleEvent routes one tcell event. Returns true if the event was consumed.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		bounds := present.Rect{Width: float64(w), Height: float64(ht)}
		if h.coord != nil {
			h.coord.ContainerResized(bounds)
		} else {
			h.container.Bounds = bounds
		}
		return true

	case *tcell.EventMouse:
		if !h.active() {
			return false
		}
		return h.handleMouse(ev)

	case *tcell.EventKey:
		if h.active() {
			if ev.Key() == tcell.KeyEscape {
				return h.Dismiss() == nil
			}
			if kh, ok := h.content.(KeyHandler); ok && kh.HandleKey(ev) {
				return true
			}
		}
		if h.keys != nil {
			return h.keys(ev)
		}
	}
	return false
}

// Draw renders the base layer, backdrop shade and content, then shows the screen.
func (h *Host) Draw() {
	h.screen.Clear()
	w, ht := h.screen.Size()
	if h.base != nil {
		h.base(newSurface(h.screen, 0, 0, w, ht))
	}

	if h.coord != nil {
		if b := h.coord.Backdrop(); b != nil && h.container.Contains(&b.View) {
			h.shade(b)
		}
		if h.container.Contains(h.view) {
			x, y, cw, ch := cells(h.view.VisibleFrame())
			s := newSurface(h.screen, x, y, cw, ch)
			s.Fill(' ', h.sheet)
			h.content.Draw(s)
		}
	}
	h.screen.Show()
}

// Run drives the host until ctx is done or Ctrl-C is pressed. Events are read
// on a separate goroutine; everything else happens on the calling one.
func (h *Host) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := h.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() { _ = h.screen.PostEvent(tcell.NewEventInterrupt(nil)) }()
		ticker := time.NewTicker(frame)
		defer ticker.Stop()

		h.Draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyCtrlC {
					cancel()
					return nil
				}
				h.HandleEvent(ev)
				h.Draw()
			case now := <-ticker.C:
				if h.sched.Active() {
					h.Advance(now)
					h.Draw()
				}
			}
		}
	})

	return g.Wait()
}

func (h *Host) active() bool {
	s := h.State()
	return s == present.Presenting || s == present.Presented
}

func (h *Host) dismissed(finished bool) {
	c := h.content
	h.content, h.coord, h.view = nil, nil, nil
	h.pressed, h.dragging, h.backdropDown = false, false, false
	if h.onDismissed != nil {
		h.onDismissed(c, finished)
	}
}

// handleMouse turns tcell's button-state snapshots into press, motion and
// release transitions.
func (h *Host) handleMouse(ev *tcell.EventMouse) bool {
	mx, my := ev.Position()
	x, y, w, ht := cells(h.view.VisibleFrame())
	inside := mx >= x && mx < x+w && my >= y && my < y+ht
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !h.pressed:
		h.pressed = true
		if !inside {
			h.backdropDown = true
			return true
		}
		if h.coord.HandleDragEvent(present.DragBegan, 0) {
			h.dragging = true
			h.dragOriginY = my
			return true
		}
		return false

	case down && h.pressed:
		if h.dragging {
			h.coord.HandleDragEvent(present.DragChanged, float64(my-h.dragOriginY))
			return true
		}
		return !inside

	case !down && h.pressed:
		h.pressed = false
		if h.dragging {
			h.dragging = false
			h.coord.HandleDragEvent(present.DragEnded, float64(my-h.dragOriginY))
			return true
		}
		if h.backdropDown {
			h.backdropDown = false
			if !inside {
				h.coord.TapBackdrop()
			}
			return true
		}
	}
	return !inside
}

// shade dims every cell the backdrop covers by its current shade.
func (h *Host) shade(b *present.Backdrop) {
	s := b.Shade()
	if s <= 0 {
		return
	}
	v := int32(math.Round(230 * (1 - s)))
	fg := tcell.NewRGBColor(v, v, v)
	dim := s >= present.BackdropTint/2

	x, y, w, ht := cells(b.Frame)
	sw, sh := h.screen.Size()
	for row := max(0, y); row < min(sh, y+ht); row++ {
		for col := max(0, x); col < min(sw, x+w); col++ {
			r, comb, st, _ := h.screen.GetContent(col, row)
			h.screen.SetContent(col, row, r, comb, st.Foreground(fg).Dim(dim))
		}
	}
}

// cells snaps a rect to the cell grid by rounding its edges.
func cells(r present.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X))
	y = int(math.Round(r.Y))
	w = int(math.Round(r.X+r.Width)) - x
	h = int(math.Round(r.MaxY())) - y
	return x, y, w, h
}
