// ABOUTME: Tests for the tcell demo on a simulation screen
// ABOUTME: Covers cell models, sheet drawing and the run loop's quit and contract-violation exits

package demo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/present-go/pkg/present"
	"github.com/mauromedda/present-go/pkg/tui/cellhost"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestApp_CellModel(t *testing.T) {
	t.Parallel()
	app := newApp(t)
	app.Resize(60, 20)

	m, err := app.CellModel("top-sheet", nil)
	if err != nil {
		t.Fatalf("CellModel: %v", err)
	}
	cs, ok := m.(*CellScreen)
	if !ok {
		t.Fatalf("CellModel(top-sheet) = %T; want *CellScreen", m)
	}
	if got := cs.PresentationContract().ContentSize; got != (present.Size{Width: 60, Height: 7}) {
		t.Errorf("ContentSize = %+v; want 60x7", got)
	}

	about, err := app.CellModel("about", nil)
	if err != nil {
		t.Fatalf("CellModel(about): %v", err)
	}
	if _, ok := about.(present.Presentable); ok {
		t.Errorf("CellModel(about) = %T; want a non-presentable value", about)
	}
}

func TestCellScreen_DrawsInsideSheet(t *testing.T) {
	t.Parallel()
	app := newApp(t)
	screen := simScreen(t, 60, 20)
	app.Resize(60, 20)

	clk := &fixedClock{now: time.Unix(1_700_000_000, 0)}
	host := cellhost.New(screen, cellhost.WithClock(clk.Now))
	m, _ := app.CellModel("bottom-sheet", host.Dismiss)
	if err := host.Present(m.(*CellScreen)); err != nil {
		t.Fatalf("Present: %v", err)
	}
	clk.now = clk.now.Add(present.DefaultAnimateTime)
	host.Advance(clk.now)
	host.Draw()

	// Bottom sheet of height 11 on a 20-row screen starts at row 9.
	if got := rowText(screen, 9, 60); !strings.HasPrefix(got, "Bottom sheet") {
		t.Errorf("row 9 = %q; want the sheet title", got)
	}
	if got := rowText(screen, 19, 60); !strings.HasPrefix(got, "x close") {
		t.Errorf("row 19 = %q; want the close help", got)
	}

	cs := host.Content().(*CellScreen)
	if !cs.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("x not handled")
	}
	if got := host.State(); got != present.Dismissing {
		t.Errorf("State = %s; want dismissing", got)
	}
}

func runCell(t *testing.T, screen tcell.SimulationScreen, app *App) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- RunCell(context.Background(), screen, app, time.Millisecond) }()
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("RunCell did not return")
		return nil
	}
}

func TestRunCell_QuitKey(t *testing.T) {
	t.Parallel()
	screen := simScreen(t, 80, 24)
	done := runCell(t, screen, newApp(t))

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := wait(t, done); err != nil {
		t.Errorf("RunCell = %v; want nil", err)
	}
}

func TestRunCell_SegueToPageFails(t *testing.T) {
	t.Parallel()
	screen := simScreen(t, 80, 24)
	done := runCell(t, screen, newApp(t))

	screen.InjectKey(tcell.KeyRune, '4', tcell.ModNone)
	err := wait(t, done)

	var cv *present.ContractViolationError
	if !errors.As(err, &cv) {
		t.Fatalf("RunCell = %v; want ContractViolationError", err)
	}
	if cv.Segue != "show-about" {
		t.Errorf("violation segue = %q; want show-about", cv.Segue)
	}
}
