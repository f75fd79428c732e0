// ABOUTME: Fixes the terminal background lipgloss assumes instead of letting it query the terminal
// ABOUTME: PRESENT_GO_BACKGROUND=light|dark overrides the dark default; also picks the glamour style

package termfix

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// EnvBackground names the variable read at init.
const EnvBackground = "PRESENT_GO_BACKGROUND"

var dark atomic.Bool

func init() {
	Apply(os.Getenv(EnvBackground))
}

// Apply sets the background from "light" or "dark". Anything else means dark.
func Apply(background string) {
	d := !strings.EqualFold(strings.TrimSpace(background), "light")
	dark.Store(d)
	// An explicit value keeps lipgloss from sending OSC 10/11 queries whose
	// replies would arrive as stray input.
	lipgloss.SetHasDarkBackground(d)
}

// Dark reports the background last applied.
func Dark() bool { return dark.Load() }

// GlamourStyle is the glamour standard style matching the background.
func GlamourStyle() string {
	if Dark() {
		return "dark"
	}
	return "light"
}
