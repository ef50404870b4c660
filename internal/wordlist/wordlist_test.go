package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestScanTrimsAndNumbersLines(t *testing.T) {
	var got []string
	var numbers []int
	err := Scan(strings.NewReader("  aahed \n\naalii\r\n"), func(lineNo int, line string) error {
		numbers = append(numbers, lineNo)
		got = append(got, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"aahed", "", "aalii"}) {
		t.Fatalf("unexpected lines %q", got)
	}
	if !reflect.DeepEqual(numbers, []int{1, 2, 3}) {
		t.Fatalf("unexpected line numbers %v", numbers)
	}
}

func TestScanPassesLongLinesWhole(t *testing.T) {
	long := strings.Repeat("x", 200000)
	var got []string
	err := Scan(strings.NewReader("a\n"+long+"\nb"), func(_ int, line string) error {
		got = append(got, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != long || got[2] != "b" {
		t.Fatalf("unexpected lines: %d lines", len(got))
	}
}

func TestScanStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Scan(strings.NewReader("a\nb\nc\n"), func(int, string) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("expected scan to stop after first line, got %v after %d calls", err, calls)
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	if err := os.WriteFile(path, []byte("aahed\n\n aargh\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"aahed", "aargh"}) {
		t.Fatalf("unexpected words %q", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestWriteWordsThenListDicts(t *testing.T) {
	dir := t.TempDir()
	if err := WriteWords(filepath.Join(dir, "en.txt"), []string{"aahed", "aalii", "toolong"}); err != nil {
		t.Fatalf("WriteWords failed: %v", err)
	}
	if err := WriteWords(filepath.Join(dir, "de.txt"), []string{"apfel"}); err != nil {
		t.Fatalf("WriteWords failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	dicts, err := ListDicts(dir)
	if err != nil {
		t.Fatalf("ListDicts failed: %v", err)
	}
	if len(dicts) != 2 {
		t.Fatalf("expected 2 dicts, got %+v", dicts)
	}
	if dicts[0].Name != "de" || dicts[0].Words != 1 {
		t.Fatalf("unexpected first dict %+v", dicts[0])
	}
	if dicts[1].Name != "en" || dicts[1].Words != 2 {
		t.Fatalf("unexpected second dict %+v", dicts[1])
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "wordlist-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}
