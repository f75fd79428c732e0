// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON files under ~/.present-go and .present-go; project values win

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mauromedda/present-go/pkg/present"
)

// Backends the demo can run on.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Settings holds the merged configuration.
type Settings struct {
	Storyboard string            `json:"storyboard,omitempty"`
	Backend    string            `json:"backend,omitempty"`
	FPS        int               `json:"fps,omitempty"`
	LogFile    string            `json:"log_file,omitempty"`
	LogLevel   string            `json:"log_level,omitempty"`
	Watch      bool              `json:"watch,omitempty"`
	Defaults   Defaults          `json:"defaults,omitempty"`
	Env        map[string]string `json:"env,omitempty"`
}

// Defaults are presentation values applied to storyboard screens that leave
// them out. Pointers distinguish "unset" from an explicit false.
type Defaults struct {
	Position          string `json:"position,omitempty"`
	AnimateTimeMS     int    `json:"animate_time_ms,omitempty"`
	PanDown           *bool  `json:"pan_down,omitempty"`
	BackgroundDismiss *bool  `json:"background_dismiss,omitempty"`
}

// ContractOptions turns the defaults into contract options. Invalid values
// are reported rather than silently dropped.
func (d Defaults) ContractOptions() ([]present.ContractOption, error) {
	var opts []present.ContractOption
	if d.Position != "" {
		p, err := present.ParsePosition(d.Position)
		if err != nil {
			return nil, fmt.Errorf("defaults.position: %w", err)
		}
		opts = append(opts, present.WithPosition(p))
	}
	if d.AnimateTimeMS < 0 {
		return nil, fmt.Errorf("defaults.animate_time_ms: must be positive, got %d", d.AnimateTimeMS)
	}
	if d.AnimateTimeMS > 0 {
		opts = append(opts, present.WithAnimateTime(time.Duration(d.AnimateTimeMS)*time.Millisecond))
	}
	if d.PanDown != nil {
		opts = append(opts, present.WithPanDown(*d.PanDown))
	}
	if d.BackgroundDismiss != nil {
		opts = append(opts, present.WithBackgroundDismiss(*d.BackgroundDismiss))
	}
	return opts, nil
}

// Load reads and merges global and project-local settings, then expands
// ${VAR} references. Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Storyboard != "" {
		result.Storyboard = project.Storyboard
	}
	if project.Backend != "" {
		result.Backend = project.Backend
	}
	if project.FPS != 0 {
		result.FPS = project.FPS
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Watch {
		result.Watch = true
	}

	d := project.Defaults
	if d.Position != "" {
		result.Defaults.Position = d.Position
	}
	if d.AnimateTimeMS != 0 {
		result.Defaults.AnimateTimeMS = d.AnimateTimeMS
	}
	if d.PanDown != nil {
		result.Defaults.PanDown = d.PanDown
	}
	if d.BackgroundDismiss != nil {
		result.Defaults.BackgroundDismiss = d.BackgroundDismiss
	}

	if len(project.Env) > 0 {
		env := make(map[string]string, len(result.Env)+len(project.Env))
		for k, v := range result.Env {
			env[k] = v
		}
		for k, v := range project.Env {
			env[k] = v
		}
		result.Env = env
	}

	return &result
}
