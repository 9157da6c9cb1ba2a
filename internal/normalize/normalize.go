// Package normalize converts raw page input (HTML or plain text) into the
// cleaned text the extractors operate on.
package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxHeadlineLength is the longest headline the normalizer will emit.
// Schema.org recommends Article headlines of at most 110 characters.
const MaxHeadlineLength = 110

// Content is the normalized form of one page. Ephemeral: created per request
// and discarded after extraction.
type Content struct {
	Text     string
	Headline string
}

// Normalize strips markup from raw input and extracts a best-effort headline.
// It is total: any input, including empty, produces a usable Content.
func Normalize(raw string) Content {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Content{}
	}

	var headline string
	text := raw

	if looksLikeHTML(raw) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			headline = strings.TrimSpace(doc.Find("h1").First().Text())
			doc.Find("script, style, noscript, nav, footer, header").Remove()
			text = doc.Find("body").Text()
			if strings.TrimSpace(text) == "" {
				text = doc.Text()
			}
		}
	}

	text = cleanWhitespace(text)
	if headline == "" {
		headline = firstLine(text)
	}

	return Content{
		Text:     text,
		Headline: truncate(headline, MaxHeadlineLength),
	}
}

// looksLikeHTML reports whether the input appears to contain markup worth
// parsing. Plain text passes through untouched.
func looksLikeHTML(raw string) bool {
	return strings.Contains(raw, "<") && strings.Contains(raw, ">")
}

// cleanWhitespace collapses runs of whitespace inside lines and drops empty
// lines, preserving line boundaries for the line-oriented extractors.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

// firstLine returns the first non-empty line of text, or "".
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// truncate shortens s to at most max characters (by rune).
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
