// ABOUTME: Display width of styled strings, measured per grapheme cluster
// ABOUTME: Plain ASCII is measured directly; other strings go through a two-generation cache

package width

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const cacheLimit = 512

// widthCache memoizes measurements. When the current generation is full it
// becomes the previous one; hits in the previous generation are promoted.
type widthCache struct {
	mu    sync.Mutex
	cur   map[string]int
	prev  map[string]int
	limit int
}

func newWidthCache(limit int) *widthCache {
	return &widthCache{cur: make(map[string]int, limit), limit: limit}
}

func (c *widthCache) get(s string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if w, ok := c.cur[s]; ok {
		return w, true
	}
	if w, ok := c.prev[s]; ok {
		c.putLocked(s, w)
		return w, true
	}
	return 0, false
}

func (c *widthCache) put(s string, w int) {
	c.mu.Lock()
	c.putLocked(s, w)
	c.mu.Unlock()
}

func (c *widthCache) putLocked(s string, w int) {
	if len(c.cur) >= c.limit {
		c.prev = c.cur
		c.cur = make(map[string]int, c.limit)
	}
	c.cur[s] = w
}

var measured = newWidthCache(cacheLimit)

// VisibleWidth returns the number of terminal cells s occupies. Escape
// sequences take no space; East Asian wide characters and emoji take two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := measured.get(s); ok {
		return w
	}
	w := 0
	for seg := range segments(s) {
		w += seg.width
	}
	measured.put(s, w)
	return w
}

// isPlainASCII reports whether s is printable ASCII only, where bytes and
// cells coincide.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// clusterWidth is the width of the cluster's base rune, matching how
// terminals and tcell advance the cursor.
func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError {
		return 0
	}
	return runewidth.RuneWidth(r)
}
