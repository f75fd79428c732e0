// ABOUTME: Screen contract and the messages/commands that drive the modal Host
// ABOUTME: Present, PerformSegue and Dismiss are the entry points callers use from Update

package modal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/present-go/pkg/present"
)

// Screen is a Bubble Tea model that can be presented. The contract is part of
// the type, so anything passed to Present is known to declare one.
type Screen interface {
	tea.Model
	present.Presentable
}

// DismissedMsg is delivered to the base model once a presented screen is gone.
type DismissedMsg struct {
	Screen   Screen
	Finished bool
}

type (
	frameMsg   time.Time
	presentMsg struct{ screen Screen }
	segueMsg   struct {
		id   string
		dest tea.Model
	}
	dismissMsg struct{}
)

// Present asks the Host to present s.
func Present(s Screen) tea.Cmd {
	return func() tea.Msg { return presentMsg{screen: s} }
}

// PerformSegue asks the Host to present dest through the named transition.
// dest is checked for the presentation contract when the Host receives it;
// a destination without one stops the program with a ContractViolationError.
func PerformSegue(id string, dest tea.Model) tea.Cmd {
	return func() tea.Msg { return segueMsg{id: id, dest: dest} }
}

// Dismiss asks the Host to dismiss the presented screen.
func Dismiss() tea.Cmd {
	return func() tea.Msg { return dismissMsg{} }
}
