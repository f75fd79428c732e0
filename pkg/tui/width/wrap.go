// ABOUTME: Word wrapping and truncation of styled text by display width
// ABOUTME: Styling open at a line break is reopened on the following line

package width

import "strings"

// Wrap breaks s into lines of at most maxWidth cells. Lines break at spaces
// where possible and inside a word only when the word is wider than a line.
// Newlines always break. Spaces at a soft break are dropped. A single
// cluster wider than maxWidth gets a line of its own.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	w := wrapper{max: maxWidth}
	for seg := range segments(s) {
		w.add(seg)
	}
	w.flushWord()
	w.lines = append(w.lines, w.line.String())
	return w.lines
}

type wrapper struct {
	max   int
	lines []string
	sgr   sgrState

	line  strings.Builder
	lineW int
	soft  bool // current line began at a soft break

	gap     int // spaces between the line and the pending word
	word    strings.Builder
	wrdW    int
	pending []string // escapes inside word, applied to sgr once the word lands
}

func (w *wrapper) add(seg segment) {
	switch {
	case seg.escape:
		w.word.WriteString(seg.text)
		w.pending = append(w.pending, seg.text)
	case seg.text == "\n" || seg.text == "\r\n":
		w.flushWord()
		w.breakLine(false)
	case seg.text == " " || seg.text == "\t":
		w.flushWord()
		w.gap++
	default:
		if w.wrdW > 0 && w.wrdW+seg.width > w.max {
			w.flushWord()
		}
		w.word.WriteString(seg.text)
		w.wrdW += seg.width
	}
}

// flushWord moves the pending word onto the line, breaking first if it
// does not fit.
func (w *wrapper) flushWord() {
	if w.word.Len() == 0 {
		return
	}
	switch {
	case w.lineW > 0 && w.lineW+w.gap+w.wrdW > w.max:
		w.breakLine(true)
	case w.lineW > 0 || (!w.soft && w.gap+w.wrdW <= w.max):
		w.line.WriteString(strings.Repeat(" ", w.gap))
		w.lineW += w.gap
	}
	w.gap = 0
	w.line.WriteString(w.word.String())
	w.lineW += w.wrdW
	w.word.Reset()
	w.wrdW = 0
	for _, seq := range w.pending {
		w.sgr.apply(seq)
	}
	w.pending = w.pending[:0]
}

func (w *wrapper) breakLine(soft bool) {
	w.lines = append(w.lines, w.line.String())
	w.line.Reset()
	w.line.WriteString(w.sgr.String())
	w.lineW, w.gap, w.soft = 0, 0, soft
}

// Truncate cuts s to at most maxWidth cells. When it cuts, tail is appended
// and, if s carried styling, a reset is written before the tail.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	tw := VisibleWidth(tail)
	if tw >= maxWidth {
		return Truncate(tail, maxWidth, "")
	}

	var b strings.Builder
	col, styled := 0, false
	for seg := range segments(s) {
		if seg.escape {
			b.WriteString(seg.text)
			styled = true
			continue
		}
		if col+seg.width > maxWidth-tw {
			break
		}
		b.WriteString(seg.text)
		col += seg.width
	}
	if styled {
		b.WriteString(reset)
	}
	b.WriteString(tail)
	return b.String()
}
