// Package search runs a filtering pass of dictionary words against a query.
package search

import (
	"fmt"
	"io"

	"github.com/verte-zerg/words/internal/match"
	"github.com/verte-zerg/words/internal/model"
	"github.com/verte-zerg/words/internal/word"
	"github.com/verte-zerg/words/internal/wordlist"
)

// Query is a parsed pattern with its letter constraints.
type Query struct {
	Pattern  word.Pattern
	Excluded word.Excluded
	Included word.Included
}

// ParseQuery parses the raw query. Only the pattern can fail.
func ParseQuery(q model.Query) (Query, error) {
	pattern, err := word.Parse(q.Pattern)
	if err != nil {
		return Query{}, fmt.Errorf("invalid pattern %q: %w", q.Pattern, err)
	}
	return Query{
		Pattern:  pattern,
		Excluded: word.ParseExcluded(q.Exclude),
		Included: word.ParseIncluded(q.Include),
	}, nil
}

// Options controls how a pass treats malformed lines.
type Options struct {
	// Strict aborts the pass on the first malformed line instead of skipping it.
	Strict bool
}

// Summary counts what a pass saw.
type Summary struct {
	Lines    int
	Blank    int
	Skipped  int
	Accepted int
}

// LineError reports a malformed dictionary line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Run streams r line by line through a new result for q.
func Run(r io.Reader, q Query, opts Options) (*match.Result, Summary, error) {
	result := match.NewResult(q.Pattern)
	var summary Summary
	err := wordlist.Scan(r, func(lineNo int, line string) error {
		return evaluate(result, &summary, q, opts, lineNo, line)
	})
	if err != nil {
		return result, summary, err
	}
	return result, summary, nil
}

// RunWords is Run over an in-memory word list. Malformed words are always skipped.
func RunWords(words []string, q Query) (*match.Result, Summary) {
	result := match.NewResult(q.Pattern)
	var summary Summary
	for i, w := range words {
		// evaluate only fails in strict mode
		_ = evaluate(result, &summary, q, Options{}, i+1, w)
	}
	return result, summary
}

func evaluate(result *match.Result, summary *Summary, q Query, opts Options, lineNo int, line string) error {
	summary.Lines++
	if line == "" {
		summary.Blank++
		return nil
	}
	ok, err := result.IsWordPossible(line, q.Excluded, q.Included)
	if err != nil {
		if opts.Strict {
			return &LineError{Line: lineNo, Text: line, Err: err}
		}
		summary.Skipped++
		return nil
	}
	if ok {
		summary.Accepted++
	}
	return nil
}
