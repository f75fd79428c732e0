// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Backs the demo's --explain-config flag; shows the merged settings by section

package config

import (
	"fmt"
	"sort"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
// Unset values are shown with the default the demo falls back to.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== General ===\n")
	fmt.Fprintf(&b, "  Storyboard: %s\n", orDefault(s.Storyboard, "(embedded)"))
	fmt.Fprintf(&b, "  Backend:    %s\n", orDefault(s.Backend, BackendBubbleTea))
	if s.FPS != 0 {
		fmt.Fprintf(&b, "  FPS:        %d\n", s.FPS)
	} else {
		b.WriteString("  FPS:        60 (default)\n")
	}
	fmt.Fprintf(&b, "  Watch:      %v\n", s.Watch)
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	fmt.Fprintf(&b, "  File:  %s\n", orDefault(s.LogFile, DefaultLogFile()))
	fmt.Fprintf(&b, "  Level: %s\n", orDefault(s.LogLevel, "info"))
	b.WriteString("\n")

	b.WriteString("=== Presentation defaults ===\n")
	d := s.Defaults
	fmt.Fprintf(&b, "  Position:          %s\n", orDefault(d.Position, "bottom"))
	if d.AnimateTimeMS > 0 {
		fmt.Fprintf(&b, "  AnimateTime:       %dms\n", d.AnimateTimeMS)
	} else {
		b.WriteString("  AnimateTime:       250ms (default)\n")
	}
	fmt.Fprintf(&b, "  PanDown:           %s\n", boolOrDefault(d.PanDown))
	fmt.Fprintf(&b, "  BackgroundDismiss: %s\n", boolOrDefault(d.BackgroundDismiss))
	b.WriteString("\n")

	if len(s.Env) > 0 {
		b.WriteString("=== Env ===\n")
		keys := make([]string, 0, len(s.Env))
		for k := range s.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s=%s\n", k, s.Env[k])
		}
		b.WriteString("\n")
	}

	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def + " (default)"
	}
	return v
}

func boolOrDefault(v *bool) string {
	if v == nil {
		return "true (default)"
	}
	return fmt.Sprint(*v)
}
