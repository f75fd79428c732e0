// ABOUTME: Tests for config loading, merging, and presentation defaults
// ABOUTME: Uses temp directories and a temp HOME for isolated file-based tests

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mauromedda/present-go/pkg/present"
)

func boolPtr(b bool) *bool { return &b }

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Storyboard: "/global", FPS: 30, Backend: BackendTcell}
	project := &Settings{Storyboard: "./boards"}

	result := merge(global, project)

	if result.Storyboard != "./boards" {
		t.Errorf("Storyboard = %q, want %q", result.Storyboard, "./boards")
	}
	if result.FPS != 30 {
		t.Errorf("FPS = %d, want 30", result.FPS)
	}
	if result.Backend != BackendTcell {
		t.Errorf("Backend = %q, want %q", result.Backend, BackendTcell)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	if result := merge(nil, nil); result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestMerge_Defaults(t *testing.T) {
	t.Parallel()

	global := &Settings{Defaults: Defaults{Position: "top", AnimateTimeMS: 400, PanDown: boolPtr(true)}}
	project := &Settings{Defaults: Defaults{PanDown: boolPtr(false), BackgroundDismiss: boolPtr(false)}}

	d := merge(global, project).Defaults

	if d.Position != "top" || d.AnimateTimeMS != 400 {
		t.Errorf("Defaults = %+v, want global position and time kept", d)
	}
	if d.PanDown == nil || *d.PanDown {
		t.Error("PanDown: explicit project false should override global true")
	}
	if d.BackgroundDismiss == nil || *d.BackgroundDismiss {
		t.Error("BackgroundDismiss: want explicit false from project")
	}
}

func TestMerge_EnvDoesNotAliasGlobal(t *testing.T) {
	t.Parallel()

	global := &Settings{Env: map[string]string{"A": "1", "B": "2"}}
	project := &Settings{Env: map[string]string{"B": "override", "C": "3"}}

	result := merge(global, project)

	if result.Env["A"] != "1" || result.Env["B"] != "override" || result.Env["C"] != "3" {
		t.Errorf("Env = %v", result.Env)
	}
	if global.Env["B"] != "2" {
		t.Error("merge mutated the global Env map")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.json")
	if !os.IsNotExist(err) {
		t.Errorf("expected not exist error, got %v", err)
	}
	if s == nil {
		t.Error("expected non-nil default settings")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"fps":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error for truncated JSON")
	}
}

func TestLoad_GlobalAndProject(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	project := t.TempDir()

	if err := EnsureDir(GlobalDir()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(GlobalConfigFile(), []byte(`{"fps":24,"log_level":"warn"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(ProjectDir(project)); err != nil {
		t.Fatal(err)
	}
	body := `{"storyboard":"${BOARD}/screens","env":{"BOARD":"/data"},"defaults":{"position":"center"}}`
	if err := os.WriteFile(ProjectConfigFile(project), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.FPS != 24 || s.LogLevel != "warn" {
		t.Errorf("global values lost: %+v", s)
	}
	if s.Storyboard != "/data/screens" {
		t.Errorf("Storyboard = %q, want %q", s.Storyboard, "/data/screens")
	}
	if s.Defaults.Position != "center" {
		t.Errorf("Defaults.Position = %q, want center", s.Defaults.Position)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Storyboard != "" || s.FPS != 0 {
		t.Errorf("Load with no files = %+v, want zero settings", s)
	}
}

func TestDefaults_ContractOptions(t *testing.T) {
	t.Parallel()

	d := Defaults{Position: "Top", AnimateTimeMS: 400, PanDown: boolPtr(false)}
	opts, err := d.ContractOptions()
	if err != nil {
		t.Fatalf("ContractOptions: %v", err)
	}
	c := present.NewContract(present.Size{Width: 10, Height: 5}, opts...)

	if c.Position != present.Top {
		t.Errorf("Position = %s, want top", c.Position)
	}
	if c.AnimateTime != 400*time.Millisecond {
		t.Errorf("AnimateTime = %v, want 400ms", c.AnimateTime)
	}
	if c.CanPanDown {
		t.Error("CanPanDown = true, want false")
	}
	if !c.CanClickBackgroundDismiss {
		t.Error("CanClickBackgroundDismiss = false, want default true")
	}
}

func TestDefaults_ContractOptionsErrors(t *testing.T) {
	t.Parallel()

	for _, d := range []Defaults{{Position: "sideways"}, {AnimateTimeMS: -1}} {
		if _, err := d.ContractOptions(); err == nil {
			t.Errorf("ContractOptions(%+v) err = nil, want error", d)
		}
	}
}
