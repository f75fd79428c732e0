// ABOUTME: Tests for fuzzy name suggestions
// ABOUTME: Covers subsequence matching, case folding and the result limit

package fuzzy

import (
	"slices"
	"testing"
)

var screens = []string{"top-sheet", "bottom-sheet", "center-card", "home"}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		n       int
		want    []string
	}{
		{"subsequence", "btm", 3, []string{"bottom-sheet"}},
		{"no match", "zzz", 3, []string{}},
		{"empty pattern", "", 3, nil},
		{"zero limit", "sheet", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Suggest(tt.pattern, screens, tt.n)
			if !slices.Equal(got, tt.want) || (got == nil) != (tt.want == nil) {
				t.Errorf("Suggest(%q, %d) = %#v; want %#v", tt.pattern, tt.n, got, tt.want)
			}
		})
	}
}

func TestSuggest_IgnoresCase(t *testing.T) {
	t.Parallel()

	got := Suggest("SHEET", screens, 3)
	if len(got) != 2 {
		t.Fatalf("Suggest(SHEET) = %v; want both sheets", got)
	}
	for _, name := range got {
		if name != "top-sheet" && name != "bottom-sheet" {
			t.Errorf("unexpected suggestion %q", name)
		}
	}
}

func TestSuggest_Limit(t *testing.T) {
	t.Parallel()

	if got := Suggest("e", screens, 2); len(got) != 2 {
		t.Errorf("Suggest(e, 2) = %v; want 2 names", got)
	}
}
