package word

import "strings"

// Len is the number of slots in every Pattern.
const Len = 5

// Pattern is a fixed sequence of Len slots.
type Pattern [Len]Slot

// Parse converts s into a Pattern. The first invalid character wins.
func Parse(s string) (Pattern, error) {
	runes := []rune(s)
	if len(runes) != Len {
		return Pattern{}, &LengthError{Len: len(runes)}
	}
	var p Pattern
	for i, r := range runes {
		slot, err := Classify(r)
		if err != nil {
			return Pattern{}, err
		}
		p[i] = slot
	}
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Wildcards returns the number of wildcard slots.
func (p Pattern) Wildcards() int {
	n := 0
	for _, s := range p {
		if s.IsWildcard() {
			n++
		}
	}
	return n
}

// String renders letters in uppercase and wildcards as '*'.
func (p Pattern) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}
