// Package match decides whether candidate words fit a chosen pattern and
// accumulates the ones that do.
package match

import "github.com/verte-zerg/words/internal/word"

// Matches reports whether candidate is consistent with chosen under the
// excluded and included letter sets.
//
// Positions are compared left to right. Wildcard positions of chosen are
// skipped. At every other position the checks run in order and the first
// one that applies decides:
//
//  1. the candidate letter is included: accept
//  2. the chosen letter is excluded: reject
//  3. the letters differ: reject
//
// When every position passes, the candidate is accepted. A chosen pattern
// made only of wildcards compares nothing, so there the candidate must hold
// every included letter somewhere.
func Matches(chosen, candidate word.Pattern, excluded word.Excluded, included word.Included) bool {
	compared := false
	for i, want := range chosen {
		wantLetter, ok := want.Letter()
		if !ok {
			continue
		}
		compared = true
		// A wildcard in the candidate is never included and never equal.
		if got, ok := candidate[i].Letter(); ok && included.Contains(got) {
			return true
		}
		if excluded.Contains(wantLetter) {
			return false
		}
		if want != candidate[i] {
			return false
		}
	}
	if compared {
		return true
	}
	return containsAll(candidate, included)
}

func containsAll(candidate word.Pattern, included word.Included) bool {
	for r := range included.LetterSet {
		if !containsLetter(candidate, r) {
			return false
		}
	}
	return true
}

func containsLetter(p word.Pattern, r rune) bool {
	for _, s := range p {
		if got, ok := s.Letter(); ok && got == r {
			return true
		}
	}
	return false
}
