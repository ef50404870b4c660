package match

import (
	"io"
	"strings"

	"github.com/verte-zerg/words/internal/report"
	"github.com/verte-zerg/words/internal/word"
)

// Result holds the chosen pattern and every candidate accepted so far, in
// acceptance order. It is not safe for concurrent use.
type Result struct {
	chosen word.Pattern
	words  []word.Pattern
}

// NewResult returns an empty Result for chosen.
func NewResult(chosen word.Pattern) *Result {
	return &Result{chosen: chosen}
}

// IsWordPossible parses candidate, tests it against the chosen pattern and
// appends it when it matches. A candidate that fails to parse is returned as
// an error and nothing is appended.
func (r *Result) IsWordPossible(candidate string, excluded word.Excluded, included word.Included) (bool, error) {
	parsed, err := word.Parse(candidate)
	if err != nil {
		return false, err
	}
	if !Matches(r.chosen, parsed, excluded, included) {
		return false, nil
	}
	r.Add(parsed)
	return true, nil
}

// Add appends p without testing it. Duplicates are kept.
func (r *Result) Add(p word.Pattern) {
	r.words = append(r.words, p)
}

// Chosen returns the pattern candidates are tested against.
func (r *Result) Chosen() word.Pattern {
	return r.chosen
}

// Len returns the number of accepted candidates.
func (r *Result) Len() int {
	return len(r.words)
}

// Words returns a copy of the accepted candidates.
func (r *Result) Words() []word.Pattern {
	out := make([]word.Pattern, len(r.words))
	copy(out, r.words)
	return out
}

// Strings returns the accepted candidates rendered in uppercase.
func (r *Result) Strings() []string {
	out := make([]string, len(r.words))
	for i, w := range r.words {
		out[i] = w.String()
	}
	return out
}

// Render writes the numbered report of accepted candidates.
func (r *Result) Render(w io.Writer) error {
	return report.WriteList(w, r.Strings())
}

func (r *Result) String() string {
	var b strings.Builder
	_ = r.Render(&b)
	return b.String()
}
