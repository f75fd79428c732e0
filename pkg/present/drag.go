// ABOUTME: Drag gesture phases and the arithmetic that turns translations into dismiss decisions
// ABOUTME: Delta clamps to the content extent; threshold is min(extent/2, 100)

package present

import (
	"math"
	"time"
)

// DragPhase is the lifecycle stage of a drag reported by the host.
type DragPhase int

const (
	DragBegan DragPhase = iota
	DragChanged
	DragEnded
	DragCancelled
	DragFailed
)

func (p DragPhase) String() string {
	switch p {
	case DragBegan:
		return "began"
	case DragChanged:
		return "changed"
	case DragEnded:
		return "ended"
	case DragCancelled:
		return "cancelled"
	case DragFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	// MaxDismissThreshold caps the drag distance needed to dismiss.
	MaxDismissThreshold = 100
	// SnapBackDuration is how long an aborted drag takes to settle.
	SnapBackDuration = 200 * time.Millisecond
)

// gestureState lives only between DragBegan and the terminal phase.
type gestureState struct {
	panStart float64
	delta    float64
}

// DismissThreshold is the delta a drag must exceed to dismiss content of the given extent.
func DismissThreshold(extent float64) float64 {
	return math.Min(extent/2, MaxDismissThreshold)
}

// DragDelta converts a raw vertical translation into the distance the content
// moved toward its off-screen edge, clamped to [0, extent].
func DragDelta(pos Position, panStart, translation, extent float64) float64 {
	var d float64
	switch pos {
	case Top:
		d = panStart - translation
	case Bottom:
		d = translation - panStart
	default:
		return 0
	}
	return clamp(d, 0, math.Max(extent, 0))
}

// dragOffset is the signed TranslateY for a delta.
func dragOffset(pos Position, delta float64) float64 {
	if pos == Top {
		return -delta
	}
	return delta
}

// BackdropAlpha is the backdrop alpha for a drag delta, always in [0, 1].
func BackdropAlpha(delta, extent float64) float64 {
	if extent <= 0 {
		return 1
	}
	return clamp01(1 - delta/extent)
}
