package word

import (
	"sort"
	"unicode"
)

// LetterSet is an unordered set of uppercase letters. A nil set is empty.
type LetterSet map[rune]struct{}

// NewLetterSet uppercases every character of s and collects it.
func NewLetterSet(s string) LetterSet {
	set := make(LetterSet, len(s))
	for _, r := range s {
		set[unicode.ToUpper(r)] = struct{}{}
	}
	return set
}

// Contains reports whether r is in the set.
func (s LetterSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of distinct letters.
func (s LetterSet) Len() int {
	return len(s)
}

// Sorted returns the letters in ascending order.
func (s LetterSet) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s LetterSet) String() string {
	return string(s.Sorted())
}

// Excluded holds letters that must not appear at concrete pattern positions.
type Excluded struct {
	LetterSet
}

// Included holds letters known to appear somewhere in the answer.
type Included struct {
	LetterSet
}

// ParseExcluded never fails; an empty string yields an empty set.
func ParseExcluded(s string) Excluded {
	return Excluded{NewLetterSet(s)}
}

// ParseIncluded never fails; an empty string yields an empty set.
func ParseIncluded(s string) Included {
	return Included{NewLetterSet(s)}
}
