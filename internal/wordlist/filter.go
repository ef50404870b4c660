package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/words/internal/word"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return filterLetters
	}
}

// FiveLetters wraps filter so that only words of word.Len characters pass.
func FiveLetters(filter FilterFunc) FilterFunc {
	return func(w string) bool {
		return utf8.RuneCountInString(w) == word.Len && filter(w)
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

func filterLetters(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
