// ABOUTME: Markdown renderer wrapper around glamour for screen bodies
// ABOUTME: Keeps one glamour renderer per wrap width and caches rendered output

package demo

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/present-go/internal/log"
)

// MarkdownRenderer renders Markdown for a given width with caching.
// Safe for concurrent use.
type MarkdownRenderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
	cache     map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer returns a renderer using a glamour standard style
// ("dark", "light", "notty", ...).
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[string]string),
	}
}

// Render returns md styled for the terminal and wrapped to width.
// Rendering failures fall back to the raw Markdown.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	width = max(width, 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.Warn("demo: markdown renderer for width %d: %v", width, err)
			return md
		}
		r.renderers[width] = tr
	}

	rendered, err := tr.Render(md)
	if err != nil {
		log.Warn("demo: render markdown: %v", err)
		return md
	}

	// glamour pads with blank lines and margins we do not want inside a sheet
	rendered = strings.Trim(rendered, "\n")

	r.cache[key] = rendered
	return rendered
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
