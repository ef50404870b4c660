package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/words/internal/model"
	"github.com/verte-zerg/words/internal/search"
	"github.com/verte-zerg/words/internal/word"
)

func TestClassifyLetters(t *testing.T) {
	q, err := search.ParseQuery(model.Query{Pattern: "l*g**", Include: "t"})
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	got := classifyLetters(word.MustParse("light"), q)
	want := [word.Len]letterKind{letterFixed, letterPlain, letterFixed, letterPlain, letterIncluded}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHighlightWordKeepsLetters(t *testing.T) {
	q, err := search.ParseQuery(model.Query{Pattern: "*****"})
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	out := highlightWord(word.MustParse("zorro"), q)
	for _, r := range "ZORRO" {
		if !strings.ContainsRune(out, r) {
			t.Fatalf("expected %q in %q", r, out)
		}
	}
}
