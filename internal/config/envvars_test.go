// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement from Settings.Env and the process environment

package config

import "testing"

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("PRESENT_TEST_ROOT", "/srv/boards")
	t.Setenv("PRESENT_TEST_LEVEL", "from-process")

	s := &Settings{
		Storyboard: "${PRESENT_TEST_ROOT}/demo",
		LogFile:    "${LOG_DIR}/demo.log",
		LogLevel:   "${PRESENT_TEST_LEVEL}",
		Backend:    "${DEFINITELY_NOT_SET_12345}",
		Env:        map[string]string{"LOG_DIR": "/tmp/logs", "PRESENT_TEST_LEVEL": "debug"},
	}
	ResolveEnvVars(s)

	if s.Storyboard != "/srv/boards/demo" {
		t.Errorf("Storyboard = %q; want %q", s.Storyboard, "/srv/boards/demo")
	}
	if s.LogFile != "/tmp/logs/demo.log" {
		t.Errorf("LogFile = %q; want %q", s.LogFile, "/tmp/logs/demo.log")
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want Env to win over the process", s.LogLevel)
	}
	if s.Backend != "" {
		t.Errorf("Backend = %q; want empty for unset var", s.Backend)
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	t.Parallel()

	lookup := func(string) string { return "x" }
	for _, in := range []string{"", "plain string", "$HOME", "{NOPE}"} {
		if got := expandEnv(in, lookup); got != in {
			t.Errorf("expandEnv(%q) = %q; want unchanged", in, got)
		}
	}
}
