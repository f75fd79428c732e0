// ABOUTME: Clock-driven animation scheduler advanced explicitly by the host's frame ticks
// ABOUTME: One animation per (target, property); starting a new one interrupts the old

package present

import "time"

// Animated properties. A target animates at most one of each at a time.
const (
	propFrame     = "frame"
	propAlpha     = "alpha"
	propTranslate = "translate"
)

type animKey struct {
	target   any
	property string
}

type animation struct {
	key      animKey
	start    time.Time
	duration time.Duration
	curve    Curve
	step     func(p float64)
	done     func(finished bool)
	ended    bool
}

// Scheduler runs animations. It never spawns goroutines: hosts call Advance
// from their own loop, and completions fire from inside Advance or Cancel.
type Scheduler struct {
	clock  func() time.Time
	active []*animation
}

// NewScheduler returns a scheduler that stamps new animations with clock().
// A nil clock uses time.Now.
func NewScheduler(clock func() time.Time) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{clock: clock}
}

// Animate starts an animation of property on target. step receives eased
// progress on every Advance; done (optional) receives true when the animation
// ran to the end, false when it was interrupted.
func (s *Scheduler) Animate(target any, property string, d time.Duration, curve Curve, step func(p float64), done func(finished bool)) {
	key := animKey{target: target, property: property}
	s.cancel(key)

	if curve == nil {
		curve = Linear
	}
	s.active = append(s.active, &animation{
		key:      key,
		start:    s.clock(),
		duration: d,
		curve:    curve,
		step:     step,
		done:     done,
	})
}

// Advance steps every active animation to now and completes the finished ones.
func (s *Scheduler) Advance(now time.Time) {
	snapshot := make([]*animation, len(s.active))
	copy(snapshot, s.active)

	for _, a := range snapshot {
		if a.ended {
			continue
		}
		p := 1.0
		if a.duration > 0 {
			p = float64(now.Sub(a.start)) / float64(a.duration)
		}
		p = clamp01(p)
		a.step(a.curve(p))
		if p >= 1 {
			s.finish(a, true)
		}
	}
}

// Cancel interrupts the animation of property on target, if any.
func (s *Scheduler) Cancel(target any, property string) bool {
	return s.cancel(animKey{target: target, property: property})
}

// CancelAll interrupts every animation on target.
func (s *Scheduler) CancelAll(target any) {
	for _, a := range s.snapshot() {
		if a.key.target == target {
			s.finish(a, false)
		}
	}
}

// Active reports whether any animation is still running.
func (s *Scheduler) Active() bool {
	return len(s.active) > 0
}

// Animating reports whether property on target is animating.
func (s *Scheduler) Animating(target any, property string) bool {
	return s.find(animKey{target: target, property: property}) != nil
}

func (s *Scheduler) cancel(key animKey) bool {
	a := s.find(key)
	if a == nil {
		return false
	}
	s.finish(a, false)
	return true
}

func (s *Scheduler) find(key animKey) *animation {
	for _, a := range s.active {
		if a.key == key {
			return a
		}
	}
	return nil
}

func (s *Scheduler) snapshot() []*animation {
	out := make([]*animation, len(s.active))
	copy(out, s.active)
	return out
}

// finish removes a before calling done so that done may start new animations.
func (s *Scheduler) finish(a *animation, finished bool) {
	if a.ended {
		return
	}
	a.ended = true
	for i, cur := range s.active {
		if cur == a {
			s.active = append(s.active[:i], s.active[i+1:]...)
			break
		}
	}
	if a.done != nil {
		a.done(finished)
	}
}
