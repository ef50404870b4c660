package wordlist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultSelector = "body"
	maxSourceBytes  = 64 << 20
	requestTimeout  = 60 * time.Second
)

// ImportOptions controls how Import reads and filters a source.
type ImportOptions struct {
	// Lang picks the character filter, see FilterForLang.
	Lang string
	// Selector limits HTML sources to the text of matching nodes. Defaults to "body".
	Selector string
	// Client is used for http(s) sources. Defaults to a client with a 60s timeout.
	Client *http.Client
}

// Import reads a local file or http(s) URL and returns its five-letter words,
// lowercased and deduplicated in first-seen order. HTML sources are reduced to
// the text of the nodes matched by opts.Selector.
func Import(ctx context.Context, source string, opts ImportOptions) ([]string, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("source is required")
	}

	var (
		data []byte
		html bool
		err  error
	)
	if isURL(source) {
		data, html, err = fetch(ctx, opts.Client, source)
	} else {
		data, err = os.ReadFile(source)
		ext := strings.ToLower(filepath.Ext(source))
		html = ext == ".html" || ext == ".htm"
	}
	if err != nil {
		return nil, err
	}

	text := string(data)
	if html {
		text, err = htmlText(data, opts.Selector)
		if err != nil {
			return nil, err
		}
	}

	words := Extract(text, FiveLetters(FilterForLang(opts.Lang)))
	if len(words) == 0 {
		return nil, fmt.Errorf("no five-letter words found in %s", source)
	}
	return words, nil
}

// Extract splits text on whitespace, trims surrounding punctuation,
// lowercases and keeps the words accepted by keep, without duplicates.
func Extract(text string, keep FilterFunc) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, field := range strings.Fields(text) {
		w := strings.ToLower(strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r)
		}))
		if _, ok := seen[w]; ok || !keep(w) {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func fetch(ctx context.Context, client *http.Client, source string) ([]byte, bool, error) {
	resp, err := httpRequest(ctx, client, source)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status fetching %s: %s", source, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read response: %w", err)
	}
	return data, isHTMLContentType(resp.Header.Get("Content-Type")), nil
}

func httpRequest(ctx context.Context, client *http.Client, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func isHTMLContentType(value string) bool {
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

func htmlText(data []byte, selector string) (string, error) {
	if strings.TrimSpace(selector) == "" {
		selector = defaultSelector
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return "", fmt.Errorf("selector %q matched nothing", selector)
	}
	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		collectText(s, &parts)
	})
	return strings.Join(parts, " "), nil
}

// collectText appends text nodes under sel in document order, skipping scripts and styles.
func collectText(sel *goquery.Selection, parts *[]string) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			*parts = append(*parts, s.Text())
		case "script", "style", "noscript":
		default:
			collectText(s, parts)
		}
	})
}
