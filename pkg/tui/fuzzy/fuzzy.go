// ABOUTME: Case-insensitive "did you mean" ranking over sahilm/fuzzy
// ABOUTME: Suggest returns the best few candidate names for a mistyped one

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// names exposes candidates to fuzzy.FindFrom in lower case.
type names []string

func (n names) String(i int) string { return strings.ToLower(n[i]) }
func (n names) Len() int            { return len(n) }

// Suggest returns up to n of items that fuzzily match pattern, best first.
// Case is ignored; returned names keep their spelling.
func Suggest(pattern string, items []string, n int) []string {
	if pattern == "" || n <= 0 {
		return nil
	}
	matches := fuzzy.FindFrom(strings.ToLower(pattern), names(items))
	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, items[m.Index])
	}
	return out
}
