package word

import "unicode"

// Wildcard is the slot that matches any character.
var Wildcard = Slot{}

// Slot is a single pattern position: an uppercase letter or a wildcard.
// The zero value is Wildcard.
type Slot struct {
	letter rune
}

// IsWildcardMarker reports whether r is one of the recognized wildcard markers.
func IsWildcardMarker(r rune) bool {
	switch r {
	case '*', '_', '?':
		return true
	}
	return false
}

// Classify converts a single character into a Slot.
func Classify(r rune) (Slot, error) {
	switch {
	case IsWildcardMarker(r):
		return Wildcard, nil
	case unicode.IsLetter(r):
		return Slot{letter: unicode.ToUpper(r)}, nil
	default:
		return Slot{}, &CharError{Char: r}
	}
}

// Letter returns the slot's letter, or false for a wildcard.
func (s Slot) Letter() (rune, bool) {
	if s.letter == 0 {
		return 0, false
	}
	return s.letter, true
}

// IsWildcard reports whether the slot matches any character.
func (s Slot) IsWildcard() bool {
	return s.letter == 0
}

func (s Slot) String() string {
	if s.letter == 0 {
		return "*"
	}
	return string(s.letter)
}
