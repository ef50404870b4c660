package word

import (
	"errors"
	"testing"
)

func TestParseRejectsWrongLength(t *testing.T) {
	for _, s := range []string{"", "a", "absd", "absd__", "toolongword"} {
		_, err := Parse(s)
		if !errors.Is(err, ErrInvalidWordLength) {
			t.Fatalf("Parse(%q): expected length error, got %v", s, err)
		}
		var lengthErr *LengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("Parse(%q): expected *LengthError, got %T", s, err)
		}
		if lengthErr.Len != len([]rune(s)) {
			t.Fatalf("Parse(%q): expected length %d, got %d", s, len([]rune(s)), lengthErr.Len)
		}
	}
}

func TestParseCountsRunes(t *testing.T) {
	p, err := Parse("éclat")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got, _ := p[0].Letter(); got != 'É' {
		t.Fatalf("expected É, got %q", got)
	}
}

func TestParseMixedPattern(t *testing.T) {
	p, err := Parse("A?_*c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Pattern{Slot{letter: 'A'}, Wildcard, Wildcard, Wildcard, Slot{letter: 'C'}}
	if p != want {
		t.Fatalf("expected %v, got %v", want, p)
	}
	if p.String() != "A***C" {
		t.Fatalf("unexpected string %q", p.String())
	}
	if p.Wildcards() != 3 {
		t.Fatalf("expected 3 wildcards, got %d", p.Wildcards())
	}
}

func TestParseFirstInvalidCharWins(t *testing.T) {
	_, err := Parse("a-b.c")
	var charErr *CharError
	if !errors.As(err, &charErr) {
		t.Fatalf("expected *CharError, got %v", err)
	}
	if charErr.Char != '-' {
		t.Fatalf("expected '-', got %q", charErr.Char)
	}
}

func TestParseLengthCheckedBeforeChars(t *testing.T) {
	_, err := Parse("--")
	if !errors.Is(err, ErrInvalidWordLength) {
		t.Fatalf("expected length error, got %v", err)
	}
}

func TestParsedPatternsCompareCaseInsensitively(t *testing.T) {
	if MustParse("aargh") != MustParse("AARGH") {
		t.Fatalf("expected case-insensitive equality")
	}
}
