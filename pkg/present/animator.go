// ABOUTME: Transition animator: enter slides/scales content to its final rect, exit reverses
// ABOUTME: Runs on a Scheduler with ease-in-out; reports finished=false when interrupted

package present

import "time"

// Animator performs enter and exit transitions for presented content.
type Animator struct {
	sched *Scheduler
	curve Curve
}

// NewAnimator returns an animator using the ease-in-out curve.
func NewAnimator(s *Scheduler) *Animator {
	return &Animator{sched: s, curve: EaseInOut}
}

// RunEnter places content at g.OffScreen, inserts it into container and
// animates it to g.Final over d.
func (a *Animator) RunEnter(container *Container, content *View, g Geometry, d time.Duration, done func(finished bool)) {
	content.TranslateY = 0
	content.SetFrame(g.OffScreen)
	content.LayoutIfNeeded()
	container.Add(content)

	a.animateFrame(content, g.OffScreen, g.Final, d, done)
}

// RunExit animates content from where it currently shows to g.OffScreen.
// Any drag translation is folded into the starting frame.
func (a *Animator) RunExit(container *Container, content *View, g Geometry, d time.Duration, done func(finished bool)) {
	a.sched.Cancel(content, propTranslate)
	from := content.VisibleFrame()
	content.TranslateY = 0
	content.SetFrame(from)
	content.LayoutIfNeeded()
	container.Add(content)

	a.animateFrame(content, from, g.OffScreen, d, done)
}

// Cancel interrupts a running enter or exit on content.
func (a *Animator) Cancel(content *View) bool {
	return a.sched.Cancel(content, propFrame)
}

func (a *Animator) animateFrame(content *View, from, to Rect, d time.Duration, done func(bool)) {
	a.sched.Animate(content, propFrame, d, a.curve,
		func(p float64) {
			content.SetFrame(from.Lerp(to, p))
		},
		func(finished bool) {
			if finished {
				content.SetFrame(to)
			}
			content.LayoutIfNeeded()
			if done != nil {
				done(finished)
			}
		},
	)
}
