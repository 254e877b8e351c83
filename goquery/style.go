package goquery

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Declaration is a single property declaration of an inline style attribute.
type Declaration struct {
	Property string
	Value    string
}

// String returns the declaration in "property:value" form.
func (d Declaration) String() string {
	return d.Property + ":" + d.Value
}

// Style is a parsed inline style attribute.
type Style []Declaration

// ParseStyle splits an inline style attribute into declarations.
// Property names are lowercased; entries without a colon are ignored.
func ParseStyle(attr string) Style {
	var style Style
	for _, part := range strings.Split(attr, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		style = append(style, Declaration{Property: prop, Value: strings.TrimSpace(value)})
	}
	return style
}

// Get returns the value of the last declaration of property.
func (s Style) Get(property string) (string, bool) {
	property = strings.ToLower(property)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Property == property {
			return s[i].Value, true
		}
	}
	return "", false
}

// Matches reports whether any declaration matches re.
func (s Style) Matches(re *regexp.Regexp) bool {
	for _, d := range s {
		if re.MatchString(d.String()) {
			return true
		}
	}
	return false
}

type styleEntry struct {
	style Style
	ok    bool
}

// styleCache parses each node's style attribute at most once per extraction.
type styleCache map[*html.Node]styleEntry

func (c styleCache) lookup(n *html.Node) (Style, bool) {
	if e, ok := c[n]; ok {
		return e.style, e.ok
	}
	var e styleEntry
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			e = styleEntry{style: ParseStyle(a.Val), ok: true}
			break
		}
	}
	c[n] = e
	return e.style, e.ok
}
