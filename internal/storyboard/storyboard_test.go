// ABOUTME: Tests for storyboard loading and validation
// ABOUTME: Uses in-memory filesystems; covers contracts, segues, suggestions and the embedded board

package storyboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/mauromedda/present-go/pkg/present"
)

func board(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

const homeMD = "---\nid: home\ninitial: true\nsegues:\n  - key: \"1\"\n    to: sheet\n---\n# Home\n"

func TestLoad_Basic(t *testing.T) {
	t.Parallel()

	fsys := board(map[string]string{
		"home.md":  homeMD,
		"sheet.md": "---\nid: Sheet\ntitle: A sheet\npresentation:\n  width: 30\n  height: 8\n  position: top\n  animate_time: 400ms\n  pan_down: false\n---\nbody\n",
	})

	b, err := Load(context.Background(), fsys, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := b.Initial().ID; got != "home" {
		t.Errorf("Initial = %q; want home", got)
	}
	if got := b.IDs(); len(got) != 2 || got[0] != "home" || got[1] != "sheet" {
		t.Errorf("IDs = %v; want [home sheet]", got)
	}

	s, err := b.Screen("SHEET")
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if s.Title != "A sheet" || s.Body != "body\n" {
		t.Errorf("screen = %q / %q", s.Title, s.Body)
	}
	c, ok := s.Contract(present.Size{Width: 80, Height: 24})
	if !ok {
		t.Fatal("Contract ok = false; want presentable")
	}
	want := present.Contract{
		ContentSize:               present.Size{Width: 30, Height: 8},
		Position:                  present.Top,
		AnimateTime:               400 * time.Millisecond,
		CanPanDown:                false,
		CanClickBackgroundDismiss: true,
	}
	if c != want {
		t.Errorf("Contract = %+v; want %+v", c, want)
	}

	home := b.Initial()
	if home.Presentable() {
		t.Error("home is presentable; want not")
	}
	sg, ok := home.Segue("1")
	if !ok || sg.To != "sheet" || sg.ID != "home->sheet" {
		t.Errorf("Segue(1) = %+v, %v", sg, ok)
	}
	if _, ok := home.Segue("9"); ok {
		t.Error("Segue(9) found; want none")
	}
}

func TestScreen_ContractFillsContainer(t *testing.T) {
	t.Parallel()

	fsys := board(map[string]string{
		"home.md":  homeMD,
		"sheet.md": "---\nid: sheet\npresentation:\n  height: 5\n---\n",
	})
	b, err := Load(context.Background(), fsys, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, _ := b.Screen("sheet")

	c, _ := s.Contract(present.Size{Width: 100, Height: 40})
	if c.ContentSize != (present.Size{Width: 100, Height: 5}) {
		t.Errorf("ContentSize = %+v; want full width, height 5", c.ContentSize)
	}
	if c.Position != present.Bottom || c.AnimateTime != present.DefaultAnimateTime {
		t.Errorf("defaults not applied: %+v", c)
	}
}

func TestLoad_DefaultsThenScreenValues(t *testing.T) {
	t.Parallel()

	fsys := board(map[string]string{
		"home.md":  homeMD,
		"sheet.md": "---\nid: sheet\npresentation:\n  width: 10\n  height: 5\n  position: center\n---\n",
	})
	defaults := []present.ContractOption{
		present.WithPosition(present.Top),
		present.WithAnimateTime(time.Second),
	}
	b, err := Load(context.Background(), fsys, defaults)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, _ := b.Screen("sheet")
	c, _ := s.Contract(present.Size{})

	if c.Position != present.Center {
		t.Errorf("Position = %s; want the screen's center to win", c.Position)
	}
	if c.AnimateTime != time.Second {
		t.Errorf("AnimateTime = %v; want default 1s", c.AnimateTime)
	}
}

func TestLoad_IDFromFilename(t *testing.T) {
	t.Parallel()

	fsys := board(map[string]string{
		"home.md":  homeMD,
		"Sheet.md": "---\npresentation:\n  height: 3\n---\n",
	})
	b, err := Load(context.Background(), fsys, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := b.Screen("sheet"); err != nil {
		t.Errorf("Screen(sheet): %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
		is      error
	}{
		{
			name:    "empty",
			files:   map[string]string{"readme.txt": "x"},
			wantErr: "no screens",
		},
		{
			name:    "no initial",
			files:   map[string]string{"a.md": "---\nid: a\n---\n"},
			wantErr: "no screen is marked initial",
		},
		{
			name: "two initial",
			files: map[string]string{
				"a.md": "---\nid: a\ninitial: true\n---\n",
				"b.md": "---\nid: b\ninitial: true\n---\n",
			},
			wantErr: "both initial",
		},
		{
			name: "duplicate id",
			files: map[string]string{
				"a.md": "---\nid: same\ninitial: true\n---\n",
				"b.md": "---\nid: Same\n---\n",
			},
			wantErr: `screen "same" defined in both a.md and b.md`,
		},
		{
			name:    "unknown segue target with suggestion",
			files:   map[string]string{"home.md": "---\nid: home\ninitial: true\nsegues:\n  - key: a\n    to: shet\n---\n", "sheet.md": "---\nid: sheet\n---\n"},
			wantErr: `did you mean "sheet"`,
			is:      ErrUnknownScreen,
		},
		{
			name:    "misspelled position",
			files:   map[string]string{"home.md": "---\nid: home\ninitial: true\npresentation:\n  position: botom\n---\n"},
			wantErr: `did you mean "bottom"`,
		},
		{
			name:    "bad duration",
			files:   map[string]string{"home.md": "---\nid: home\ninitial: true\npresentation:\n  animate_time: fast\n---\n"},
			wantErr: "animate_time",
		},
		{
			name:    "non-positive duration",
			files:   map[string]string{"home.md": "---\nid: home\ninitial: true\npresentation:\n  animate_time: 0s\n---\n"},
			wantErr: "must be positive",
		},
		{
			name:    "negative size",
			files:   map[string]string{"home.md": "---\nid: home\ninitial: true\npresentation:\n  width: -1\n---\n"},
			wantErr: "must not be negative",
		},
		{
			name:    "unknown key",
			files:   map[string]string{"home.md": "---\nid: home\ninitial: true\npresentaton:\n  width: 3\n---\n"},
			wantErr: "home.md",
		},
		{
			name:    "segue without target",
			files:   map[string]string{"home.md": "---\nid: home\ninitial: true\nsegues:\n  - key: a\n---\n"},
			wantErr: "needs both key and to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(context.Background(), board(tt.files), nil)
			if err == nil {
				t.Fatal("Load err = nil; want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v; want it to contain %q", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v; want errors.Is %v", err, tt.is)
			}
		})
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, board(map[string]string{"home.md": homeMD}), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v; want context.Canceled", err)
	}
}

func TestStoryboard_UnknownScreen(t *testing.T) {
	t.Parallel()

	b, err := Load(context.Background(), Default(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err = b.Screen("cntr")
	if !errors.Is(err, ErrUnknownScreen) {
		t.Fatalf("err = %v; want ErrUnknownScreen", err)
	}
	if !strings.Contains(err.Error(), `"center-card"`) {
		t.Errorf("err = %v; want a center-card suggestion", err)
	}
}

func TestNormalizeID(t *testing.T) {
	t.Parallel()

	// Decomposed "e" + combining acute folds to the precomposed form.
	if got, want := NormalizeID("  Cafe\u0301 "), "caf\u00e9"; got != want {
		t.Errorf("NormalizeID = %q; want %q", got, want)
	}
}

func TestDefault_Board(t *testing.T) {
	t.Parallel()

	b, err := Load(context.Background(), Default(), nil)
	if err != nil {
		t.Fatalf("Load(Default): %v", err)
	}
	if b.Initial().ID != "home" {
		t.Errorf("Initial = %q; want home", b.Initial().ID)
	}

	container := present.Size{Width: 80, Height: 24}
	tests := []struct {
		id   string
		want present.Contract
	}{
		{
			id: "top-sheet",
			want: present.Contract{
				ContentSize: present.Size{Width: 80, Height: 7}, Position: present.Top,
				AnimateTime: 500 * time.Millisecond, CanPanDown: true, CanClickBackgroundDismiss: true,
			},
		},
		{
			id: "center-card",
			want: present.Contract{
				ContentSize: present.Size{Width: 34, Height: 11}, Position: present.Center,
				AnimateTime: present.DefaultAnimateTime, CanPanDown: true, CanClickBackgroundDismiss: true,
			},
		},
		{
			id: "bottom-sheet",
			want: present.Contract{
				ContentSize: present.Size{Width: 80, Height: 11}, Position: present.Bottom,
				AnimateTime: present.DefaultAnimateTime, CanPanDown: true, CanClickBackgroundDismiss: true,
			},
		},
	}
	for _, tt := range tests {
		s, err := b.Screen(tt.id)
		if err != nil {
			t.Errorf("Screen(%s): %v", tt.id, err)
			continue
		}
		if got, _ := s.Contract(container); got != tt.want {
			t.Errorf("%s contract = %+v; want %+v", tt.id, got, tt.want)
		}
	}

	about, err := b.Screen("about")
	if err != nil {
		t.Fatalf("Screen(about): %v", err)
	}
	if about.Presentable() {
		t.Error("about is presentable; want not")
	}
}
