// ABOUTME: tcell rendition of the storyboard demo on top of cellhost
// ABOUTME: Screens draw as wrapped plain text; segue keys on the base screen present sheets

package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/present-go/internal/log"
	"github.com/mauromedda/present-go/internal/storyboard"
	"github.com/mauromedda/present-go/pkg/present"
	"github.com/mauromedda/present-go/pkg/tui/cellhost"
	"github.com/mauromedda/present-go/pkg/tui/width"
)

var (
	cellTitle  = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorFuchsia)
	cellFooter = tcell.StyleDefault.Dim(true)
	cellStatus = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// CellScreen is a presentable storyboard screen drawn into cells.
type CellScreen struct {
	screen   *storyboard.Screen
	contract present.Contract
	dismiss  func() error
}

// PresentationContract implements present.Presentable.
func (c *CellScreen) PresentationContract() present.Contract { return c.contract }

// Draw implements cellhost.Content.
func (c *CellScreen) Draw(s cellhost.Surface) {
	drawScreen(s, c.screen, "x close", "")
}

// HandleKey closes the sheet on x.
func (c *CellScreen) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'x' && c.dismiss != nil {
		return c.dismiss() == nil
	}
	return false
}

// cellPage is a non-presentable screen; it has no contract.
type cellPage struct {
	screen *storyboard.Screen
}

// CellModel builds the tcell value for screen id. Presentable screens become
// *CellScreen; anything else is a value the host refuses to present.
func (a *App) CellModel(id string, dismiss func() error) (any, error) {
	s, err := a.board.Screen(id)
	if err != nil {
		return nil, err
	}
	if c, ok := s.Contract(a.size); ok {
		return &CellScreen{screen: s, contract: c, dismiss: dismiss}, nil
	}
	return cellPage{screen: s}, nil
}

// RunCell drives the demo on a tcell screen until ctx is done, q or Ctrl-C is
// pressed, or a segue targets a screen without a presentation contract.
// opts are applied after the demo's own host options.
func RunCell(ctx context.Context, screen tcell.Screen, app *App, frame time.Duration, opts ...cellhost.Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		host   *cellhost.Host
		status string
		fatal  error
	)
	root := app.board.Initial()

	base := []cellhost.Option{
		cellhost.WithBase(func(s cellhost.Surface) {
			drawScreen(s, root, baseHelp(root), status)
		}),
		cellhost.WithKeyHandler(func(ev *tcell.EventKey) bool {
			if ev.Key() != tcell.KeyRune {
				return false
			}
			if ev.Rune() == 'q' {
				cancel()
				return true
			}
			sg, ok := root.Segue(string(ev.Rune()))
			if !ok {
				return false
			}
			app.Resize(screen.Size())
			dest, err := app.CellModel(sg.To, func() error { return host.Dismiss() })
			if err != nil {
				status = err.Error()
				return true
			}
			if err := host.PerformSegue(sg.ID, dest); err != nil {
				var cv *present.ContractViolationError
				if errors.As(err, &cv) {
					fatal = err
					cancel()
					return true
				}
				log.Warn("demo: segue %q: %v", sg.ID, err)
				status = err.Error()
			}
			return true
		}),
		cellhost.OnDismissed(func(c cellhost.Content, _ bool) {
			if cs, ok := c.(*CellScreen); ok {
				status = fmt.Sprintf("closed %s", cs.screen.Title)
			}
		}),
		cellhost.WithSheetStyle(tcell.StyleDefault.Background(tcell.ColorNavy)),
	}
	host = cellhost.New(screen, append(base, opts...)...)

	err := host.Run(ctx, frame)
	if fatal != nil {
		return fatal
	}
	return err
}

func baseHelp(s *storyboard.Screen) string {
	parts := make([]string, 0, len(s.Segues)+1)
	for _, sg := range s.Segues {
		parts = append(parts, sg.Key+" "+sg.To)
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " · ")
}

// drawScreen writes the title, the wrapped body and a footer into s.
// Rows that do not fit are dropped; the footer keeps the last row.
func drawScreen(s cellhost.Surface, sc *storyboard.Screen, help, status string) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	footer := 1
	if status != "" {
		footer = 2
	}

	s.Print(0, 0, width.Truncate(sc.Title, w, "…"), cellTitle)
	row := 2
	for _, line := range bodyLines(sc.Body, w) {
		if row >= h-footer {
			break
		}
		s.Print(0, row, line, tcell.StyleDefault)
		row++
	}
	s.Print(0, h-footer, width.Truncate(help, w, "…"), cellFooter)
	if status != "" {
		s.Print(0, h-1, width.Truncate(status, w, "…"), cellStatus)
	}
}

func bodyLines(body string, w int) []string {
	return width.Wrap(strings.TrimRight(body, "\n"), w)
}
