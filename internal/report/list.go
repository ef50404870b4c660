package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header opens every match report.
const Header = "List of possible matching words:"

const columnGap = 3

// WriteList writes the header followed by a 1-based numbered line per word.
func WriteList(w io.Writer, words []string) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for i, word := range words {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, word); err != nil {
			return err
		}
	}
	return nil
}

// WriteColumns writes the same numbered entries as WriteList, laid out
// column-major so that every line fits in width cells.
func WriteColumns(w io.Writer, words []string, width int) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	entries := make([]string, len(words))
	numWidth := len(strconv.Itoa(len(words)))
	cellWidth := 0
	for i, word := range words {
		num := strconv.Itoa(i + 1)
		entries[i] = strings.Repeat(" ", numWidth-len(num)) + num + ". " + word
		if dw := DisplayWidth(entries[i]); dw > cellWidth {
			cellWidth = dw
		}
	}

	cols := ColumnCount(width, cellWidth)
	rows := (len(entries) + cols - 1) / cols
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			idx := c*rows + r
			if idx >= len(entries) {
				break
			}
			if c > 0 {
				b.WriteString(strings.Repeat(" ", columnGap))
			}
			b.WriteString(padCell(entries[idx], cellWidth, false))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// ColumnCount returns how many cells of cellWidth fit in width, at least one.
func ColumnCount(width, cellWidth int) int {
	if width <= 0 || cellWidth <= 0 {
		return 1
	}
	cols := (width + columnGap) / (cellWidth + columnGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}
