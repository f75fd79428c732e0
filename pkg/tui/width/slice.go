// ABOUTME: Column-based slicing and padding of styled text
// ABOUTME: SliceByColumn clips a rendered line to a column range for layer compositing

package width

import "strings"

// SliceByColumn extracts columns [start, end) of s. Styling active at start
// is re-emitted, and a reset is appended whenever styling was written, so the
// result can be spliced between other styled fragments. Wide clusters cut by
// either edge are replaced by spaces.
func SliceByColumn(s string, start, end int) string {
	start = max(start, 0)
	if start >= end || s == "" {
		return ""
	}

	var (
		b      strings.Builder
		sgr    sgrState
		col    int
		opened bool
		styled bool
	)
	for seg := range segments(s) {
		if col >= end {
			break
		}
		if seg.escape {
			if opened {
				b.WriteString(seg.text)
				styled = true
			} else {
				sgr.apply(seg.text)
			}
			continue
		}

		from, to := col, col+seg.width
		col = to
		if to <= start {
			continue
		}
		if !opened {
			opened = true
			if prefix := sgr.String(); prefix != "" {
				b.WriteString(prefix)
				styled = true
			}
		}
		if from < start || to > end {
			b.WriteString(strings.Repeat(" ", min(to, end)-max(from, start)))
			continue
		}
		b.WriteString(seg.text)
	}
	if styled {
		b.WriteString(reset)
	}
	return b.String()
}

// Pad right-pads s with spaces to w visible columns. Wider strings are returned unchanged.
func Pad(s string, w int) string {
	if vis := VisibleWidth(s); vis < w {
		return s + strings.Repeat(" ", w-vis)
	}
	return s
}
