// ABOUTME: Declarative screens and named transitions loaded from Markdown files
// ABOUTME: Frontmatter declares ids, presentation contracts and segues; bodies are Markdown

package storyboard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/present-go/internal/config"
	"github.com/mauromedda/present-go/internal/log"
	"github.com/mauromedda/present-go/pkg/present"
	"github.com/mauromedda/present-go/pkg/tui/fuzzy"
)

// ErrUnknownScreen is returned for ids that name no screen.
var ErrUnknownScreen = errors.New("unknown screen")

// maxParallelLoads bounds concurrent file parsing.
const maxParallelLoads = 4

// Presentation is the frontmatter form of a presentation contract.
// A zero Width or Height means the full container extent.
type Presentation struct {
	Width             int    `yaml:"width"`
	Height            int    `yaml:"height"`
	Position          string `yaml:"position"`
	AnimateTime       string `yaml:"animate_time"`
	PanDown           *bool  `yaml:"pan_down"`
	BackgroundDismiss *bool  `yaml:"background_dismiss"`
}

// Segue is a named transition from one screen to another, fired by Key.
type Segue struct {
	Key string `yaml:"key"`
	To  string `yaml:"to"`
	ID  string `yaml:"id"`
}

type frontmatter struct {
	ID           string        `yaml:"id"`
	Title        string        `yaml:"title"`
	Initial      bool          `yaml:"initial"`
	Presentation *Presentation `yaml:"presentation"`
	Segues       []Segue       `yaml:"segues"`
}

// Screen is one storyboard entry.
type Screen struct {
	ID      string
	Title   string
	Initial bool
	Body    string
	Source  string
	Segues  []Segue

	presentation *Presentation
	options      []present.ContractOption
}

// Presentable reports whether the screen declares a presentation contract.
func (s *Screen) Presentable() bool { return s.presentation != nil }

// Contract builds the screen's contract for a container of the given size.
// Returns false for screens that declare no presentation.
func (s *Screen) Contract(container present.Size) (present.Contract, bool) {
	p := s.presentation
	if p == nil {
		return present.Contract{}, false
	}
	size := present.Size{Width: float64(p.Width), Height: float64(p.Height)}
	if p.Width <= 0 {
		size.Width = container.Width
	}
	if p.Height <= 0 {
		size.Height = container.Height
	}
	return present.NewContract(size, s.options...), true
}

// Segue returns the segue fired by key.
func (s *Screen) Segue(key string) (Segue, bool) {
	for _, sg := range s.Segues {
		if sg.Key == key {
			return sg, true
		}
	}
	return Segue{}, false
}

// Storyboard is a validated set of screens.
type Storyboard struct {
	screens map[string]*Screen
	ids     []string
	initial *Screen
}

// Screen returns the screen with id, with suggestions when it is unknown.
func (b *Storyboard) Screen(id string) (*Screen, error) {
	key := NormalizeID(id)
	if s, ok := b.screens[key]; ok {
		return s, nil
	}
	return nil, unknownScreen(key, b.ids)
}

// Initial returns the screen marked initial.
func (b *Storyboard) Initial() *Screen { return b.initial }

// IDs returns every screen id, sorted.
func (b *Storyboard) IDs() []string {
	return append([]string(nil), b.ids...)
}

// NormalizeID folds an id to its canonical form: trimmed, lower case, NFC.
func NormalizeID(id string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(id)))
}

// Load parses every *.md file at the root of fsys. defaults apply to every
// presentable screen before its own frontmatter values.
func Load(ctx context.Context, fsys fs.FS, defaults []present.ContractOption) (*Storyboard, error) {
	files, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("listing storyboard: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("storyboard has no screens")
	}
	sort.Strings(files)

	screens := make([]*Screen, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := loadScreen(fsys, name, defaults)
			if err != nil {
				return err
			}
			screens[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return build(screens)
}

func loadScreen(fsys fs.FS, name string, defaults []present.ContractOption) (*Screen, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	fm, body, err := config.ParseFrontmatterStrict[frontmatter](string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	id := fm.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	s := &Screen{
		ID:           NormalizeID(id),
		Title:        fm.Title,
		Initial:      fm.Initial,
		Body:         body,
		Source:       name,
		presentation: fm.Presentation,
	}
	if s.Title == "" {
		s.Title = s.ID
	}
	for _, sg := range fm.Segues {
		if sg.Key == "" || sg.To == "" {
			return nil, fmt.Errorf("%s: segue %q needs both key and to", name, sg.ID)
		}
		sg.To = NormalizeID(sg.To)
		if sg.ID == "" {
			sg.ID = s.ID + "->" + sg.To
		}
		s.Segues = append(s.Segues, sg)
	}

	if p := fm.Presentation; p != nil {
		opts, err := contractOptions(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		s.options = append(append([]present.ContractOption(nil), defaults...), opts...)
	}
	return s, nil
}

func contractOptions(p *Presentation) ([]present.ContractOption, error) {
	if p.Width < 0 || p.Height < 0 {
		return nil, fmt.Errorf("presentation size %dx%d: must not be negative", p.Width, p.Height)
	}

	var opts []present.ContractOption
	if p.Position != "" {
		pos, err := present.ParsePosition(p.Position)
		if err != nil {
			if hint := suggestPosition(p.Position); hint != "" {
				return nil, fmt.Errorf("%w (did you mean %q?)", err, hint)
			}
			return nil, err
		}
		opts = append(opts, present.WithPosition(pos))
	}
	if p.AnimateTime != "" {
		d, err := time.ParseDuration(p.AnimateTime)
		if err != nil {
			return nil, fmt.Errorf("animate_time: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("animate_time %s: must be positive", d)
		}
		opts = append(opts, present.WithAnimateTime(d))
	}
	if p.PanDown != nil {
		opts = append(opts, present.WithPanDown(*p.PanDown))
	}
	if p.BackgroundDismiss != nil {
		opts = append(opts, present.WithBackgroundDismiss(*p.BackgroundDismiss))
	}
	return opts, nil
}

// suggestPosition returns the position name closest to a misspelling, or "".
func suggestPosition(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	best, bestDist := "", 3
	for _, p := range present.Positions {
		if d := levenshtein.ComputeDistance(s, p.String()); d < bestDist {
			best, bestDist = p.String(), d
		}
	}
	return best
}

func build(screens []*Screen) (*Storyboard, error) {
	b := &Storyboard{screens: make(map[string]*Screen, len(screens))}
	var errs []error

	for _, s := range screens {
		if prev, dup := b.screens[s.ID]; dup {
			errs = append(errs, fmt.Errorf("screen %q defined in both %s and %s", s.ID, prev.Source, s.Source))
			continue
		}
		b.screens[s.ID] = s
		b.ids = append(b.ids, s.ID)
		if s.Initial {
			if b.initial != nil {
				errs = append(errs, fmt.Errorf("screens %q and %q are both initial", b.initial.ID, s.ID))
				continue
			}
			b.initial = s
		}
	}
	sort.Strings(b.ids)

	if b.initial == nil && len(errs) == 0 {
		errs = append(errs, errors.New("no screen is marked initial"))
	}

	for _, s := range screens {
		for _, sg := range s.Segues {
			dest, ok := b.screens[sg.To]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: segue %q: %w", s.Source, sg.ID, unknownScreen(sg.To, b.ids)))
				continue
			}
			if !dest.Presentable() {
				log.Warn("storyboard: segue %q targets %q, which declares no presentation", sg.ID, dest.ID)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b, nil
}

func unknownScreen(id string, ids []string) error {
	if hints := fuzzy.Suggest(id, ids, 3); len(hints) > 0 {
		return fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownScreen, id, strings.Join(quoted(hints), ", "))
	}
	return fmt.Errorf("%w %q", ErrUnknownScreen, id)
}

func quoted(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
