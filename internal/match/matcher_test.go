package match

import (
	"testing"

	"github.com/verte-zerg/words/internal/word"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		chosen    string
		candidate string
		excluded  string
		included  string
		want      bool
	}{
		{"exact match", "zowie", "zowie", "", "", true},
		{"mismatch", "zowie", "aaron", "", "", false},
		{"wildcards", "z?*ie", "zowie", "", "", true},
		{"wildcards reject fixed mismatch", "z?*ie", "zorro", "", "", false},
		{"case insensitive", "ZoWiE", "zowie", "", "", true},
		{"excluded at concrete position", "aargh", "aargh", "a", "", false},
		{"excluded absent from chosen", "aargh", "zowie", "w", "", false},
		{"excluded under wildcard", "*orro", "morro", "m", "", true},
		{"all wildcards", "*****", "focus", "", "", true},
		{"all wildcards with included letter present", "*****", "light", "", "i", true},
		{"all wildcards with included letter absent", "*****", "focus", "", "i", false},
		{"included letter short-circuits mismatch", "a****", "light", "", "l", true},
		{"included letter short-circuits exclusion", "a****", "light", "a", "l", true},
		{"included check runs after wildcard skip", "*a***", "light", "", "l", false},
		{"excluded checked before included at later position", "ab***", "axbcd", "b", "b", false},
		{"full pass accepts without included letters", "aargh", "aargh", "", "z", true},
		{"wildcard pattern full pass accepts without included letters", "*orro", "zorro", "", "i", true},
		{"mixed pattern full pass accepts without included letters", "z?*ie", "zowie", "", "x", true},
		{"all wildcards require every included letter", "*****", "light", "", "iz", false},
		{"candidate wildcard never equals letter", "aargh", "aa?gh", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(
				word.MustParse(tt.chosen),
				word.MustParse(tt.candidate),
				word.ParseExcluded(tt.excluded),
				word.ParseIncluded(tt.included),
			)
			if got != tt.want {
				t.Fatalf("Matches(%q, %q, -e %q, -i %q) = %v, want %v", tt.chosen, tt.candidate, tt.excluded, tt.included, got, tt.want)
			}
		})
	}
}
