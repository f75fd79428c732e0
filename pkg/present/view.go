// ABOUTME: Toolkit-neutral View and Container standing in for host views
// ABOUTME: Views carry frame, drag translation, alpha and a deferred layout hook

package present

// View is the part of a host view the presentation machinery manipulates.
type View struct {
	Frame Rect
	// TranslateY is a transient vertical offset applied on top of Frame.
	TranslateY float64
	Alpha      float64

	layout      func(Rect)
	needsLayout bool
}

// NewView returns an opaque view at frame.
func NewView(frame Rect) *View {
	return &View{Frame: frame, Alpha: 1, needsLayout: true}
}

// SetFrame moves the view and marks it for layout when the frame changes.
func (v *View) SetFrame(r Rect) {
	if v.Frame == r {
		return
	}
	v.Frame = r
	v.needsLayout = true
}

// OnLayout registers the hook LayoutIfNeeded calls with the current frame.
func (v *View) OnLayout(fn func(Rect)) {
	v.layout = fn
	v.needsLayout = true
}

// SetNeedsLayout forces the next LayoutIfNeeded to run the hook.
func (v *View) SetNeedsLayout() {
	v.needsLayout = true
}

// LayoutIfNeeded runs the layout hook synchronously if the frame changed.
func (v *View) LayoutIfNeeded() {
	if !v.needsLayout {
		return
	}
	v.needsLayout = false
	if v.layout != nil {
		v.layout(v.Frame)
	}
}

// VisibleFrame is Frame with the drag translation applied.
func (v *View) VisibleFrame() Rect {
	return v.Frame.Offset(0, v.TranslateY)
}

// Container is an ordered stack of views, back to front.
type Container struct {
	Bounds Rect
	views  []*View
}

// NewContainer returns an empty container covering bounds.
func NewContainer(bounds Rect) *Container {
	return &Container{Bounds: bounds}
}

// Add puts v on top. Adding a view already present is a no-op.
func (c *Container) Add(v *View) {
	if c.Contains(v) {
		return
	}
	c.views = append(c.views, v)
}

// InsertBelow puts v directly beneath sibling, or on top if sibling is absent.
func (c *Container) InsertBelow(v, sibling *View) {
	c.Remove(v)
	i := c.index(sibling)
	if i < 0 {
		c.views = append(c.views, v)
		return
	}
	c.views = append(c.views, nil)
	copy(c.views[i+1:], c.views[i:])
	c.views[i] = v
}

// Remove takes v out of the container. Returns true if v was present.
func (c *Container) Remove(v *View) bool {
	i := c.index(v)
	if i < 0 {
		return false
	}
	c.views = append(c.views[:i], c.views[i+1:]...)
	return true
}

// Contains reports whether v is in the container.
func (c *Container) Contains(v *View) bool {
	return c.index(v) >= 0
}

// Views returns a snapshot of the stack, back to front.
func (c *Container) Views() []*View {
	out := make([]*View, len(c.views))
	copy(out, c.views)
	return out
}

func (c *Container) index(v *View) int {
	for i, cur := range c.views {
		if cur == v {
			return i
		}
	}
	return -1
}
