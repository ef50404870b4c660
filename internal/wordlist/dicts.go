package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dict describes an installed dictionary file.
type Dict struct {
	Name  string
	Path  string
	Words int
}

// ListDicts returns the *.txt dictionaries in dir sorted by name, with the
// number of five-letter words each holds.
func ListDicts(dir string) ([]Dict, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dicts []Dict
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		count, err := CountWords(path, FiveLetters(FilterForLang("")))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		dicts = append(dicts, Dict{
			Name:  strings.TrimSuffix(entry.Name(), ".txt"),
			Path:  path,
			Words: count,
		})
	}
	sort.Slice(dicts, func(i, j int) bool { return dicts[i].Name < dicts[j].Name })
	return dicts, nil
}

// CountWords returns the number of lines in path accepted by keep.
func CountWords(path string, keep FilterFunc) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = file.Close()
	}()
	count := 0
	err = Scan(file, func(_ int, line string) error {
		if keep(line) {
			count++
		}
		return nil
	})
	return count, err
}
