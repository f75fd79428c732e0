// ABOUTME: CLI entry point for present-demo, a storyboard of presented screens in the terminal
// ABOUTME: Loads config and storyboard, sets up file logging, runs the Bubble Tea or tcell backend

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/mauromedda/present-go/internal/config"
	"github.com/mauromedda/present-go/internal/demo"
	"github.com/mauromedda/present-go/internal/eventbus"
	pglog "github.com/mauromedda/present-go/internal/log"
	"github.com/mauromedda/present-go/internal/storyboard"
	"github.com/mauromedda/present-go/internal/termfix"
	"github.com/mauromedda/present-go/pkg/present"
	"github.com/mauromedda/present-go/pkg/tui/cellhost"
	"github.com/mauromedda/present-go/pkg/tui/modal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultFPS = 60

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("present-demo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	if err := args.apply(cfg); err != nil {
		return err
	}

	if args.explain {
		fmt.Print(config.Explain(cfg))
		return nil
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if args.background != "" {
		termfix.Apply(args.background)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaults, err := cfg.Defaults.ContractOptions()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	fsys := storyboardFS(cfg.Storyboard)
	board, err := storyboard.Load(ctx, fsys, defaults)
	if err != nil {
		return fmt.Errorf("loading storyboard: %w", err)
	}
	pglog.Info("storyboard: %d screens, initial %q", len(board.IDs()), board.Initial().ID)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("present-demo needs an interactive terminal")
	}

	fps := cfg.FPS
	if fps == 0 {
		fps = defaultFPS
	}
	frame := time.Second / time.Duration(fps)
	app := demo.NewApp(board, demo.NewMarkdownRenderer(termfix.GlamourStyle()))

	transitions := eventbus.New[eventbus.Transition]()
	defer eventbus.LogTransitions(transitions)()

	if cfg.Backend == config.BackendTcell {
		if cfg.Watch {
			pglog.Warn("watch: storyboard reload is only supported by the bubbletea backend")
		}
		return runTcell(ctx, app, frame, transitions)
	}
	return runBubbleTea(ctx, cfg, app, fsys, defaults, frame, transitions)
}

func runBubbleTea(ctx context.Context, cfg *config.Settings, app *demo.App, fsys fs.FS, defaults []present.ContractOption, frame time.Duration, transitions *eventbus.Bus[eventbus.Transition]) error {
	host := modal.New(app.Root(),
		modal.WithFrameInterval(frame),
		modal.WithTransitions(transitions),
	)
	p := tea.NewProgram(host,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if cfg.Watch && cfg.Storyboard != "" {
		w := config.WatchGlob(filepath.Join(cfg.Storyboard, "*.md"), func() {
			board, err := storyboard.Load(ctx, fsys, defaults)
			if err != nil {
				pglog.Warn("watch: reload storyboard: %v", err)
				return
			}
			p.Send(demo.ReloadMsg{Board: board})
		})
		w.Start()
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return host.Err()
}

func runTcell(ctx context.Context, app *demo.App, frame time.Duration, transitions *eventbus.Bus[eventbus.Transition]) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	return demo.RunCell(ctx, screen, app, frame, cellhost.WithTransitions(transitions))
}

// storyboardFS returns the directory's filesystem, or the built-in board for "".
func storyboardFS(dir string) fs.FS {
	if dir == "" {
		return storyboard.Default()
	}
	return os.DirFS(dir)
}

// setupLogging sends log output to a file, since the terminal belongs to the UI.
func setupLogging(cfg *config.Settings) (func(), error) {
	if cfg.LogLevel != "" {
		l, err := pglog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		pglog.SetLevel(l)
	}

	path := cfg.LogFile
	if path == "" {
		path = config.DefaultLogFile()
	}
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	pglog.SetOutput(f)
	return func() {
		pglog.SetOutput(nil)
		_ = f.Close()
	}, nil
}
