// ABOUTME: Line-based compositing of an overlay block onto a rendered background
// ABOUTME: Splices clipped block rows at any cell offset, including partly off-screen

package canvas

import (
	"strings"

	"github.com/mauromedda/present-go/pkg/tui/width"
)

// Fit splits s into exactly height lines, padding with empty lines or trimming.
func Fit(s string, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

// Block splits rendered text into lines padded to the widest line.
func Block(s string) []string {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, width.VisibleWidth(l))
	}
	for i, l := range lines {
		lines[i] = width.Pad(l, w)
	}
	return lines
}

// Place returns a copy of bg with block's top-left corner at column x, row y.
// The canvas is len(bg) rows by cols columns; anything outside is clipped.
// Background text left and right of the block is preserved.
func Place(bg, block []string, x, y, cols int) []string {
	out := make([]string, len(bg))
	copy(out, bg)

	for i, line := range block {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(out) {
			break
		}

		lw := width.VisibleWidth(line)
		from := max(0, -x)
		to := min(lw, cols-x)
		if to <= from {
			continue
		}
		start := x + from
		end := x + to

		prefix := width.Pad(width.SliceByColumn(out[row], 0, start), start)
		suffix := width.SliceByColumn(out[row], end, cols)
		out[row] = prefix + width.SliceByColumn(line, from, to) + suffix
	}
	return out
}

// Map applies fn to every line.
func Map(lines []string, fn func(string) string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fn(l)
	}
	return out
}
