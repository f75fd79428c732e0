// ABOUTME: Clipped drawing region over a tcell.Screen in local coordinates
// ABOUTME: Content draws into a Surface; writes outside the region or the screen are dropped

package cellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/present-go/pkg/tui/width"
)

// Surface is a rectangle of a screen. Coordinates passed to its methods are
// relative to the rectangle's top-left corner.
type Surface struct {
	screen tcell.Screen
	x, y   int
	w, h   int
}

func newSurface(screen tcell.Screen, x, y, w, h int) Surface {
	return Surface{screen: screen, x: x, y: y, w: max(0, w), h: max(0, h)}
}

// Size returns the surface width and height in cells.
func (s Surface) Size() (int, int) { return s.w, s.h }

// SetContent writes one cell. Out-of-range writes are ignored.
func (s Surface) SetContent(x, y int, r rune, style tcell.Style) {
	s.set(x, y, r, nil, style)
}

func (s Surface) set(x, y int, r rune, comb []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	sw, sh := s.screen.Size()
	ax, ay := s.x+x, s.y+y
	if ax < 0 || ay < 0 || ax >= sw || ay >= sh {
		return
	}
	s.screen.SetContent(ax, ay, r, comb, style)
}

// Fill sets every cell to r.
func (s Surface) Fill(r rune, style tcell.Style) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.SetContent(x, y, r, style)
		}
	}
}

// Print writes text starting at (x, y) and returns the column after the last
// cell written. Escape sequences are ignored. Combining marks share their
// base cell; wide clusters take two cells and one that would straddle the
// right edge is dropped.
func (s Surface) Print(x, y int, text string, style tcell.Style) int {
	for cluster, w := range width.Clusters(text) {
		if w == 0 {
			continue
		}
		if x+w > s.w {
			break
		}
		runes := []rune(cluster)
		s.set(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
