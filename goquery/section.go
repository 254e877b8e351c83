package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/secmda"
	"golang.org/x/net/html"
)

// DefaultLayoutPattern matches the style declaration that marks a table as
// spaced layout rather than narrative text.
var DefaultLayoutPattern = regexp.MustCompile(`(?i)margin-bottom\s*:\s*\d+pt`)

// DefaultKeywordPattern matches section heading text. Tables with a span
// matching it are kept because they act as headings. The mojibake apostrophe
// appears in filings decoded with the wrong charset.
var DefaultKeywordPattern = regexp.MustCompile(`(?i)Item\s*\d|Management(?:’|'|â€™)s Discussion and Analysis`)

// DefaultTrimWidth is how many characters before the end of the last heading
// marker are kept by TrimBeforeLastMarker. The value is a heuristic tuned on
// EDGAR filings where it retains the tail of the item number.
const DefaultTrimWidth = 5

// FilterTables removes layout tables from doc and returns their inner HTML
// in document order. A table is removed when one of its style declarations
// matches layout and none of its spans has text matching keyword.
func FilterTables(doc *goquery.Document, layout, keyword *regexp.Regexp) []string {
	return filterTables(doc, layout, keyword, styleCache{})
}

func filterTables(doc *goquery.Document, layout, keyword *regexp.Regexp, styles styleCache) []string {
	root := doc.Get(0)
	var removed []string

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		n := table.Get(0)
		// Nested tables go away with their removed ancestor.
		if !attached(n, root) {
			return
		}

		style, ok := styles.lookup(n)
		if !ok || !style.Matches(layout) {
			return
		}

		heading := false
		table.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
			heading = keyword.MatchString(span.Text())
			return !heading
		})
		if heading {
			return
		}

		inner, _ := table.Html()
		removed = append(removed, strings.TrimSpace(inner))
		table.Remove()
	})

	return removed
}

// FindSectionStart returns the last styled div whose text matches current.
// Earlier matches are usually table of contents entries or cross references.
// The returned selection is empty when nothing matches.
func FindSectionStart(doc *goquery.Document, current *regexp.Regexp) *goquery.Selection {
	return findSectionStart(doc, current, styleCache{})
}

func findSectionStart(doc *goquery.Document, current *regexp.Regexp, styles styleCache) *goquery.Selection {
	return doc.Find("div").FilterFunction(func(_ int, div *goquery.Selection) bool {
		if _, ok := styles.lookup(div.Get(0)); !ok {
			return false
		}
		return current.MatchString(div.Text())
	}).Last()
}

// CollectSpan concatenates the text of start and the following sibling
// elements with the same tag, stopping before the first sibling whose text
// matches stop. The start node is always included. Per-node text is trimmed,
// fragments are joined by single spaces and non-breaking spaces are removed.
// An empty start yields secmda.NotFound.
func CollectSpan(start *goquery.Selection, stop *regexp.Regexp) string {
	if start.Length() == 0 {
		return secmda.NotFound
	}

	n := start.Get(0)
	var parts []string
	for cur := n; cur != nil; {
		parts = append(parts, strings.TrimSpace(nodeText(cur)))
		cur = nextSiblingElement(cur, n.Data)
		if cur != nil && stop.MatchString(nodeText(cur)) {
			break
		}
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	return strings.ReplaceAll(text, "\u00a0", "")
}

// TrimBeforeLastMarker drops everything up to width characters before the
// end of the last match of marker, then trims surrounding whitespace.
// Text without a match is returned unchanged. The start never moves past the
// beginning of the text.
func TrimBeforeLastMarker(text string, marker *regexp.Regexp, width int) string {
	matches := marker.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	start := matches[len(matches)-1][1]
	for i := 0; i < width && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}

	return strings.TrimSpace(text[start:])
}

func nextSiblingElement(n *html.Node, tag string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == tag {
			return s
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attached(n, root *html.Node) bool {
	for n.Parent != nil {
		n = n.Parent
	}
	return n == root
}
