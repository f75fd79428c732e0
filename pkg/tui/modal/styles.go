// ABOUTME: Lipgloss styles for the presented sheet and the backdrop shade ramp
// ABOUTME: Backdrop alpha maps onto a gray ramp since terminals have no real translucency

package modal

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/present-go/pkg/present"
	"github.com/mauromedda/present-go/pkg/tui/width"
)

// Styles controls how the Host draws presented content and the backdrop.
type Styles struct {
	// Sheet frames the presented screen. Its border counts toward the content size.
	Sheet lipgloss.Style
	// BackdropRamp goes from the lightest to the darkest backdrop shade.
	BackdropRamp []lipgloss.Color
}

// DefaultStyles returns a rounded sheet border over a 250..238 gray ramp.
func DefaultStyles() Styles {
	return Styles{
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		BackdropRamp: []lipgloss.Color{"250", "248", "246", "244", "242", "240", "238"},
	}
}

// shader returns a line transform that dims text for a backdrop shade in
// [0, present.BackdropTint]. A zero shade leaves lines untouched.
func (s Styles) shader(shade float64) func(string) string {
	if shade <= 0 || len(s.BackdropRamp) == 0 {
		return func(l string) string { return l }
	}
	t := math.Min(shade/present.BackdropTint, 1)
	i := int(math.Round(t * float64(len(s.BackdropRamp)-1)))
	st := lipgloss.NewStyle().
		Foreground(s.BackdropRamp[i]).
		Faint(t >= 0.5)
	return func(l string) string {
		return st.Render(width.StripANSI(l))
	}
}

// render draws body inside the sheet at exactly w x h cells.
func (s Styles) render(body string, w, h int) string {
	st := s.Sheet
	innerW := max(1, w-st.GetHorizontalBorderSize())
	innerH := max(1, h-st.GetVerticalBorderSize())
	return st.
		Width(innerW).
		Height(innerH).
		MaxWidth(w).
		MaxHeight(h).
		Render(body)
}
