// Package tui provides the Bubble Tea narrowing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/words/internal/search"
	"github.com/verte-zerg/words/internal/word"
)

type letterKind int

const (
	letterPlain letterKind = iota
	letterFixed
	letterIncluded
)

var (
	plainLetterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	fixedLetterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Background(lipgloss.Color("#6AAA64")).Bold(true)
	includedLetterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Background(lipgloss.Color("#C9B458")).Bold(true)
)

// classifyLetters marks each position of candidate as fixed by the pattern,
// holding an included letter, or plain.
func classifyLetters(candidate word.Pattern, q search.Query) [word.Len]letterKind {
	var kinds [word.Len]letterKind
	for i, slot := range candidate {
		letter, ok := slot.Letter()
		if !ok {
			continue
		}
		switch {
		case q.Pattern[i] == slot:
			kinds[i] = letterFixed
		case q.Included.Contains(letter):
			kinds[i] = letterIncluded
		}
	}
	return kinds
}

func highlightWord(candidate word.Pattern, q search.Query) string {
	kinds := classifyLetters(candidate, q)
	var b strings.Builder
	for i, slot := range candidate {
		cell := " " + slot.String() + " "
		switch kinds[i] {
		case letterFixed:
			b.WriteString(fixedLetterStyle.Render(cell))
		case letterIncluded:
			b.WriteString(includedLetterStyle.Render(cell))
		default:
			b.WriteString(plainLetterStyle.Render(cell))
		}
	}
	return b.String()
}
