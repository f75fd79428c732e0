// ABOUTME: Backdrop view covering the container behind presented content
// ABOUTME: Owned exclusively by a Coordinator; alpha fades with enter, exit and drags

package present

// BackdropTint is the opacity of the backdrop's black fill at alpha 1.
const BackdropTint = 0.3

// Backdrop is the translucent layer behind presented content.
type Backdrop struct {
	View
	// Tappable is set when tapping the backdrop dismisses the presentation.
	Tappable bool
}

func newBackdrop(bounds Rect, tappable bool) *Backdrop {
	return &Backdrop{
		View:     View{Frame: bounds, Alpha: 0},
		Tappable: tappable,
	}
}

// Shade returns the effective black opacity hosts should draw, in [0, BackdropTint].
func (b *Backdrop) Shade() float64 {
	return clamp01(b.Alpha) * BackdropTint
}
