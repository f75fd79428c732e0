// ABOUTME: Bubble Tea host presenting Screens as animated overlays above a base model
// ABOUTME: Drives the present scheduler from frame ticks and maps mouse input to the coordinator

package modal

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/present-go/internal/eventbus"
	"github.com/mauromedda/present-go/internal/log"
	"github.com/mauromedda/present-go/pkg/present"
	"github.com/mauromedda/present-go/pkg/tui/canvas"
)

// DefaultFrameInterval is the animation tick rate when none is configured.
const DefaultFrameInterval = time.Second / 60

// Option configures a Host.
type Option func(*Host)

// WithFrameInterval sets the time between animation frames.
func WithFrameInterval(d time.Duration) Option {
	return func(h *Host) {
		if d > 0 {
			h.frame = d
		}
	}
}

// WithClock replaces time.Now for the animation scheduler.
func WithClock(fn func() time.Time) Option {
	return func(h *Host) {
		if fn != nil {
			h.clock = fn
		}
	}
}

// WithStyles replaces the default sheet and backdrop styles.
func WithStyles(s Styles) Option {
	return func(h *Host) { h.styles = s }
}

// WithTransitions publishes every presentation state change on bus.
func WithTransitions(bus *eventbus.Bus[eventbus.Transition]) Option {
	return func(h *Host) { h.transitions = bus }
}

// Host wraps a base model and presents at most one Screen above it.
// Terminal cells are the point unit: a Screen's content size is in cells.
type Host struct {
	base   tea.Model
	clock  func() time.Time
	frame  time.Duration
	styles Styles

	transitions *eventbus.Bus[eventbus.Transition]

	sched     *present.Scheduler
	container *present.Container
	width     int
	height    int

	screen  Screen
	coord   *present.Coordinator
	content *present.View
	pending *DismissedMsg

	dragging     bool
	dragOriginY  int
	backdropDown bool
	ticking      bool
	err          error
}

// New returns a Host drawing base underneath any presented screen.
func New(base tea.Model, opts ...Option) *Host {
	h := &Host{
		base:      base,
		clock:     time.Now,
		frame:     DefaultFrameInterval,
		styles:    DefaultStyles(),
		container: present.NewContainer(present.Rect{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.sched = present.NewScheduler(h.clock)
	return h
}

// Base returns the current base model.
func (h *Host) Base() tea.Model { return h.base }

// Screen returns the presented screen, or nil.
func (h *Host) Screen() Screen { return h.screen }

// State returns the presentation state, Idle when nothing is presented.
func (h *Host) State() present.State {
	if h.coord == nil {
		return present.Idle
	}
	return h.coord.State()
}

// Err returns the error that stopped the program, if any.
func (h *Host) Err() error { return h.err }

// Init implements tea.Model.
func (h *Host) Init() tea.Cmd {
	return h.base.Init()
}

// Update implements tea.Model.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.resize(msg.Width, msg.Height)
		return h, h.updateBase(msg)

	case presentMsg:
		return h, h.present(msg.screen)

	case segueMsg:
		return h, h.performSegue(msg)

	case dismissMsg:
		return h, h.dismiss()

	case frameMsg:
		h.ticking = false
		h.sched.Advance(time.Time(msg))
		return h, tea.Batch(h.flushDismissed(), h.tick())

	case DismissedMsg:
		return h, h.updateBase(msg)

	case tea.MouseMsg:
		if !h.active() {
			return h, h.updateBase(msg)
		}
		if h.handleMouse(msg) {
			return h, h.tick()
		}
		return h, h.updateScreen(h.localMouse(msg))

	case tea.KeyMsg:
		if !h.active() {
			return h, h.updateBase(msg)
		}
		if msg.Type == tea.KeyEsc {
			return h, h.dismiss()
		}
		return h, h.updateScreen(msg)
	}

	return h, tea.Batch(h.updateBase(msg), h.updateScreen(msg))
}

// View implements tea.Model.
func (h *Host) View() string {
	bg := h.base.View()
	if h.coord == nil || h.width <= 0 || h.height <= 0 {
		return bg
	}

	lines := canvas.Fit(bg, h.height)
	if b := h.coord.Backdrop(); b != nil && h.container.Contains(&b.View) {
		lines = canvas.Map(lines, h.styles.shader(b.Shade()))
	}
	if h.container.Contains(h.content) {
		x, y, w, ht := cells(h.content.VisibleFrame())
		if w > 0 && ht > 0 {
			block := canvas.Block(h.styles.render(h.screen.View(), w, ht))
			lines = canvas.Place(lines, block, x, y, h.width)
		}
	}
	return strings.Join(lines, "\n")
}

func (h *Host) active() bool {
	if h.coord == nil {
		return false
	}
	s := h.coord.State()
	return s == present.Presenting || s == present.Presented
}

func (h *Host) resize(w, ht int) {
	h.width, h.height = w, ht
	bounds := present.Rect{Width: float64(w), Height: float64(ht)}
	if h.coord != nil {
		h.coord.ContainerResized(bounds)
		return
	}
	h.container.Bounds = bounds
}

func (h *Host) present(s Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	if h.active() || h.State() == present.Dismissing {
		log.Warn("modal: present %T while %s; ignored", s, h.State())
		return nil
	}

	// Drop views left behind by an interrupted exit.
	for _, v := range h.container.Views() {
		h.container.Remove(v)
	}

	content := present.NewView(present.Rect{})
	var coord *present.Coordinator
	coord = present.NewCoordinator(s, h.container, content, h.sched,
		present.WithResolver(present.Resolver{PointSize: 1}),
		present.OnStateChange(func(from, to present.State) {
			h.transitions.Publish(eventbus.Transition{
				Presentation: coord.ID(), Content: fmt.Sprintf("%T", s), From: from, To: to,
			})
		}),
		present.OnDismissed(func(finished bool) {
			h.pending = &DismissedMsg{Screen: h.screen, Finished: finished}
		}),
	)
	if err := coord.Present(); err != nil {
		log.Error("modal: present %T: %v", s, err)
		return nil
	}

	h.screen, h.coord, h.content = s, coord, content
	h.pending = nil
	log.Debug("modal: presenting %T as %s", s, coord.ID())

	initCmd := s.Init()
	return tea.Batch(initCmd, h.updateScreen(h.contentSize()), h.tick())
}

func (h *Host) performSegue(msg segueMsg) tea.Cmd {
	var cmd tea.Cmd
	seg := present.Segue{
		Identifier: msg.id,
		Source: present.PresenterFunc(func(p present.Presentable) error {
			s, ok := p.(Screen)
			if !ok {
				return &present.ContractViolationError{Segue: msg.id, Destination: p}
			}
			cmd = h.present(s)
			return nil
		}),
		Destination: msg.dest,
	}
	if err := seg.Perform(); err != nil {
		h.err = err
		log.Error("modal: %v", err)
		return tea.Quit
	}
	return cmd
}

func (h *Host) dismiss() tea.Cmd {
	if h.coord == nil {
		return nil
	}
	if err := h.coord.Dismiss(); err != nil {
		log.Debug("modal: %v", err)
		return nil
	}
	h.dragging, h.backdropDown = false, false
	return h.tick()
}

func (h *Host) flushDismissed() tea.Cmd {
	if h.pending == nil {
		return nil
	}
	msg := *h.pending
	h.pending = nil
	h.screen, h.coord, h.content = nil, nil, nil
	h.dragging, h.backdropDown = false, false
	return func() tea.Msg { return msg }
}

func (h *Host) tick() tea.Cmd {
	if h.ticking || !h.sched.Active() {
		return nil
	}
	h.ticking = true
	return tea.Tick(h.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// handleMouse returns true when the event was consumed by the presentation.
func (h *Host) handleMouse(msg tea.MouseMsg) bool {
	x, y, w, ht := cells(h.content.VisibleFrame())
	inside := msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+ht

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return !inside
		}
		if !inside {
			h.backdropDown = true
			return true
		}
		if h.coord.HandleDragEvent(present.DragBegan, 0) {
			h.dragging = true
			h.dragOriginY = msg.Y
		}
		return false

	case tea.MouseActionMotion:
		if h.dragging {
			h.coord.HandleDragEvent(present.DragChanged, float64(msg.Y-h.dragOriginY))
			return true
		}
		return !inside

	case tea.MouseActionRelease:
		if h.dragging {
			h.dragging = false
			h.coord.HandleDragEvent(present.DragEnded, float64(msg.Y-h.dragOriginY))
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

func (h *Host) localMouse(msg tea.MouseMsg) tea.MouseMsg {
	x, y, _, _ := cells(h.content.VisibleFrame())
	msg.X -= x + h.styles.Sheet.GetBorderLeftSize()
	msg.Y -= y + h.styles.Sheet.GetBorderTopSize()
	return msg
}

// contentSize is the area inside the sheet border the screen draws into.
func (h *Host) contentSize() tea.WindowSizeMsg {
	size := h.coord.Contract().ContentSize
	return tea.WindowSizeMsg{
		Width:  max(0, int(size.Width)-h.styles.Sheet.GetHorizontalBorderSize()),
		Height: max(0, int(size.Height)-h.styles.Sheet.GetVerticalBorderSize()),
	}
}

func (h *Host) updateBase(msg tea.Msg) tea.Cmd {
	m, cmd := h.base.Update(msg)
	h.base = m
	return cmd
}

func (h *Host) updateScreen(msg tea.Msg) tea.Cmd {
	if h.screen == nil {
		return nil
	}
	m, cmd := h.screen.Update(msg)
	if s, ok := m.(Screen); ok {
		h.screen = s
	} else {
		log.Warn("modal: %T.Update returned %T without a presentation contract; keeping previous model", h.screen, m)
	}
	return cmd
}

// cells snaps a rect to terminal cells by rounding its edges, so a moving
// frame keeps a constant size.
func cells(r present.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X))
	y = int(math.Round(r.Y))
	w = int(math.Round(r.X+r.Width)) - x
	h = int(math.Round(r.MaxY())) - y
	return x, y, w, h
}
