// Package word parses five-letter patterns and letter constraint sets.
package word

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWordLength matches any *LengthError.
	ErrInvalidWordLength = errors.New("invalid word length")
	// ErrInvalidCharValue matches any *CharError.
	ErrInvalidCharValue = errors.New("invalid char value")
)

// LengthError reports a pattern or candidate that is not exactly Len characters long.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("word must be %d characters long, given word has length of %d", Len, e.Len)
}

// Is reports whether target is ErrInvalidWordLength.
func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidWordLength
}

// CharError reports a character that is neither a letter nor a wildcard marker.
type CharError struct {
	Char rune
}

func (e *CharError) Error() string {
	return fmt.Sprintf("can not parse char %q as wildcard or letter", e.Char)
}

// Is reports whether target is ErrInvalidCharValue.
func (e *CharError) Is(target error) bool {
	return target == ErrInvalidCharValue
}
