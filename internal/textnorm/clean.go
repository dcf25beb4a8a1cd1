// Package textnorm normalizes noisy article text into plain, single-line
// prose suitable for heuristics and prompt construction.
package textnorm

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes text in a fixed order: HTML entities are unescaped,
// markup is stripped, URL-shaped substrings are removed, the result is
// NFKD-normalized, non-printable runes are dropped and whitespace runs
// collapse to a single space. Clean is total: it never fails, and it
// returns "" for input that reduces to nothing.
func Clean(text string) string {
	text = html.UnescapeString(text)
	text = stripMarkup(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = norm.NFKD.String(text)
	text = dropNonPrintable(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// CleanValue cleans a loosely-typed JSON value. Non-string values carry no
// usable text and normalize to "".
func CleanValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Clean(s)
}

// stripMarkup extracts the text content of HTML-like input, separating
// adjacent text nodes with a space so that tags act as word boundaries.
// Plain text without markup passes through unchanged.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	var parts []string
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode && strings.TrimSpace(n.Data) != "" {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return strings.Join(parts, " ")
}

func dropNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}
