// ABOUTME: Escape sequence scanning for styled terminal text
// ABOUTME: Splits text into escape sequences and grapheme clusters; tracks SGR state across cuts

package width

import (
	"iter"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	esc   = '\x1b'
	reset = "\x1b[0m"
)

// StripANSI removes all escape sequences from s.
func StripANSI(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		i := strings.IndexByte(s, esc)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i+escapeLen(s[i:]):]
	}
	return b.String()
}

// escapeLen returns the byte length of the escape sequence s starts with.
// Unterminated sequences run to the end of s.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case ']':
		return controlStringEnd(s, true)
	case 'P', '_', '^':
		return controlStringEnd(s, false)
	case '(', ')':
		return min(3, len(s))
	default:
		return 2
	}
}

// controlStringEnd finds the end of an OSC, DCS, APC or PM string. They end
// at ST; OSC also ends at BEL.
func controlStringEnd(s string, bel bool) int {
	for i := 2; i < len(s); i++ {
		if bel && s[i] == '\a' {
			return i + 1
		}
		if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
			return i + 2
		}
	}
	return len(s)
}

func isSGR(seq string) bool {
	return strings.HasPrefix(seq, "\x1b[") && strings.HasSuffix(seq, "m")
}

// sgrState is the styling in effect, as the SGR sequences seen since the
// last reset.
type sgrState []string

func (s *sgrState) apply(seq string) {
	if !isSGR(seq) {
		return
	}
	if seq == reset || seq == "\x1b[m" {
		*s = (*s)[:0]
		return
	}
	*s = append(*s, seq)
}

func (s sgrState) String() string { return strings.Join(s, "") }

// segment is either one escape sequence or one visible grapheme cluster.
type segment struct {
	text   string
	width  int
	escape bool
}

func segments(s string) iter.Seq[segment] {
	return func(yield func(segment) bool) {
		state := -1
		for len(s) > 0 {
			var seg segment
			if s[0] == esc {
				n := escapeLen(s)
				seg = segment{text: s[:n], escape: true}
				s, state = s[n:], -1
			} else {
				var cluster string
				cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
				seg = segment{text: cluster, width: clusterWidth(cluster)}
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Clusters yields the visible grapheme clusters of s with their widths in
// cells. Escape sequences are skipped.
func Clusters(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for seg := range segments(s) {
			if seg.escape {
				continue
			}
			if !yield(seg.text, seg.width) {
				return
			}
		}
	}
}
