// ABOUTME: Bubble Tea models for storyboard screens: a base Page and presentable Sheets
// ABOUTME: Segue keys on the base page present their destination through the modal host

package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/present-go/internal/log"
	"github.com/mauromedda/present-go/internal/storyboard"
	"github.com/mauromedda/present-go/pkg/present"
	"github.com/mauromedda/present-go/pkg/tui/modal"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// ReloadMsg carries a freshly loaded storyboard to the running program.
type ReloadMsg struct {
	Board *storyboard.Storyboard
}

// App builds models for storyboard screens. It tracks the terminal size
// that full-width and full-height contracts resolve against.
type App struct {
	board *storyboard.Storyboard
	md    *MarkdownRenderer
	size  present.Size
}

// NewApp returns an App over board, rendering bodies with md.
func NewApp(board *storyboard.Storyboard, md *MarkdownRenderer) *App {
	if md == nil {
		md = NewMarkdownRenderer("")
	}
	return &App{board: board, md: md}
}

// Board returns the current storyboard.
func (a *App) Board() *storyboard.Storyboard { return a.board }

// SetBoard swaps in a reloaded storyboard.
func (a *App) SetBoard(b *storyboard.Storyboard) {
	if b != nil {
		a.board = b
	}
}

// Resize records the container size in cells.
func (a *App) Resize(w, h int) {
	a.size = present.Size{Width: float64(w), Height: float64(h)}
}

// Root returns the base page for the initial screen.
func (a *App) Root() Page {
	return Page{app: a, screen: a.board.Initial(), root: true}
}

// Model builds the model for screen id. Presentable screens become Sheets;
// anything else is a plain Page, which carries no presentation contract.
func (a *App) Model(id string) (tea.Model, error) {
	s, err := a.board.Screen(id)
	if err != nil {
		return nil, err
	}
	page := Page{app: a, screen: s}
	if c, ok := s.Contract(a.size); ok {
		return Sheet{Page: page, contract: c}, nil
	}
	return page, nil
}

// Page shows one storyboard screen: title, Markdown body and key help.
type Page struct {
	app    *App
	screen *storyboard.Screen
	root   bool
	width  int
	height int
	status string
}

// Init implements tea.Model.
func (p Page) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (p Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		if p.root {
			p.app.Resize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		if !p.root {
			return p, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		}
		return p, p.segue(msg.String())

	case modal.DismissedMsg:
		if p.root && msg.Screen != nil {
			p.status = fmt.Sprintf("closed %s", titleOf(msg.Screen))
		}

	case ReloadMsg:
		if !p.root {
			return p, nil
		}
		p.app.SetBoard(msg.Board)
		if s, err := p.app.board.Screen(p.screen.ID); err == nil {
			p.screen = s
		} else {
			p.screen = p.app.board.Initial()
		}
		p.status = "storyboard reloaded"
	}
	return p, nil
}

func (p *Page) segue(key string) tea.Cmd {
	sg, ok := p.screen.Segue(key)
	if !ok {
		return nil
	}
	dest, err := p.app.Model(sg.To)
	if err != nil {
		log.Error("demo: segue %q: %v", sg.ID, err)
		p.status = err.Error()
		return nil
	}
	p.status = ""
	return modal.PerformSegue(sg.ID, dest)
}

// View implements tea.Model.
func (p Page) View() string {
	w := p.width
	if w <= 0 {
		w = 80
	}

	var b strings.Builder
	// The status sits under the title so a short terminal never clips it.
	b.WriteString(titleStyle.Render(p.screen.Title))
	b.WriteString("\n")
	if p.status != "" {
		b.WriteString(statusStyle.Render(p.status))
	}
	b.WriteString("\n")
	if body := p.app.md.Render(p.screen.Body, w); body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	b.WriteString(footerStyle.Render(p.help()))
	return b.String()
}

func (p Page) help() string {
	if !p.root {
		return "x close"
	}
	parts := make([]string, 0, len(p.screen.Segues)+1)
	for _, sg := range p.screen.Segues {
		parts = append(parts, sg.Key+" "+sg.To)
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " · ")
}

// Sheet is a Page that can be presented.
type Sheet struct {
	Page
	contract present.Contract
}

// PresentationContract implements present.Presentable.
func (s Sheet) PresentationContract() present.Contract { return s.contract }

// Update implements tea.Model.
func (s Sheet) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "x", "q":
			return s, modal.Dismiss()
		}
		return s, nil
	}
	m, cmd := s.Page.Update(msg)
	s.Page = m.(Page)
	return s, cmd
}

func titleOf(m tea.Model) string {
	switch m := m.(type) {
	case Sheet:
		return m.screen.Title
	case Page:
		return m.screen.Title
	default:
		return fmt.Sprintf("%T", m)
	}
}
