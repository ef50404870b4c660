// Package wordlist loads, filters and writes dictionary files.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineFunc receives a 1-based line number and the trimmed line.
type LineFunc func(lineNo int, line string) error

// Scan calls fn for every line of r in order. Lines of any length are passed
// through whole. Returning an error from fn stops the scan.
func Scan(r io.Reader, fn LineFunc) error {
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}
		lineNo++
		if ferr := fn(lineNo, strings.TrimSpace(line)); ferr != nil {
			return ferr
		}
		if err != nil {
			return nil
		}
	}
}

// LoadWords reads one word per line from the provided file path, skipping blank lines.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	err = Scan(file, func(_ int, line string) error {
		if line != "" {
			words = append(words, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
