// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with values from Env, then os.Getenv; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the path-like fields of Settings.
// Variables defined in s.Env take precedence over the process environment.
func ResolveEnvVars(s *Settings) {
	lookup := func(name string) string {
		if v, ok := s.Env[name]; ok {
			return v
		}
		return os.Getenv(name)
	}
	s.Storyboard = expandEnv(s.Storyboard, lookup)
	s.LogFile = expandEnv(s.LogFile, lookup)
	s.LogLevel = expandEnv(s.LogLevel, lookup)
	s.Backend = expandEnv(s.Backend, lookup)
}

func expandEnv(s string, lookup func(string) string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return lookup(envVarPattern.FindStringSubmatch(match)[1])
	})
}
