// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --storyboard, --backend, --fps, --watch, --log-file, --debug, --version, --explain-config

package main

import (
	"flag"
	"fmt"

	"github.com/mauromedda/present-go/internal/config"
)

type cliArgs struct {
	storyboard string
	backend    string
	fps        int
	watch      bool
	logFile    string
	debug      bool
	background string
	version    bool
	explain    bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.storyboard, "storyboard", "", "Directory of storyboard Markdown files (default: built-in demo)")
	flag.StringVar(&args.backend, "backend", "", "Renderer: bubbletea or tcell")
	flag.IntVar(&args.fps, "fps", 0, "Animation frames per second")
	flag.BoolVar(&args.watch, "watch", false, "Reload the storyboard when its files change")
	flag.StringVar(&args.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&args.debug, "debug", false, "Log presentation state changes")
	flag.StringVar(&args.background, "background", "", "Terminal background: dark or light")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.BoolVar(&args.explain, "explain-config", false, "Print the effective configuration and exit")

	flag.Parse()
	return args
}

// apply overlays the flags that were set onto s. Flags win over config files.
func (a cliArgs) apply(s *config.Settings) error {
	if a.storyboard != "" {
		s.Storyboard = a.storyboard
	}
	if a.backend != "" {
		s.Backend = a.backend
	}
	if a.fps != 0 {
		s.FPS = a.fps
	}
	if a.watch {
		s.Watch = true
	}
	if a.logFile != "" {
		s.LogFile = a.logFile
	}
	if a.debug {
		s.LogLevel = "debug"
	}

	switch s.Backend {
	case "", config.BackendBubbleTea, config.BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", s.Backend, config.BackendBubbleTea, config.BackendTcell)
	}
	if s.FPS < 0 {
		return fmt.Errorf("fps must be positive, got %d", s.FPS)
	}
	return nil
}
