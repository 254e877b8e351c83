package secmda

import (
	"regexp"
	"slices"
	"strings"
)

// Category is the regulatory form type of a filing.
type Category string

// Supported filing categories.
const (
	Form10Q Category = "10-Q" // quarterly report
	Form10K Category = "10-K" // annual report
)

// SectionSpec describes the heading markers that bound the MD&A section
// for one filing category. All patterns are case-insensitive.
type SectionSpec struct {
	// Current matches the heading that opens the section.
	Current *regexp.Regexp

	// Next matches the heading of the section that follows it.
	Next *regexp.Regexp

	// Residue matches heading text repeated at the start of the collected span.
	Residue *regexp.Regexp
}

var sectionSpecs = map[Category]SectionSpec{
	Form10Q: {
		Current: regexp.MustCompile(`(?i)Item\s*2[^\w]+Management.*?Discussion.*?and.*?Analysis`),
		Next:    regexp.MustCompile(`(?i)Item\s*3`),
		Residue: regexp.MustCompile(`(?i)Item\s*2`),
	},
	Form10K: {
		Current: regexp.MustCompile(`(?i)Item\s*7[^\w]+Management.*?Discussion.*?and.*?Analysis`),
		Next:    regexp.MustCompile(`(?i)Item\s*8`),
		Residue: regexp.MustCompile(`(?i)Item\s*7`),
	},
}

// LookupSectionSpec returns the section markers for a filing category.
// Returns EUNSUPPORTED for categories without a known layout.
func LookupSectionSpec(c Category) (SectionSpec, error) {
	spec, ok := sectionSpecs[c]
	if !ok {
		return SectionSpec{}, Errorf(EUNSUPPORTED, "unsupported filing category %q (supported: %s)", c, supportedList())
	}
	return spec, nil
}

// ParseCategory normalizes s and returns the matching Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if _, err := LookupSectionSpec(c); err != nil {
		return "", err
	}
	return c, nil
}

// Categories returns the supported categories in sorted order.
func Categories() []Category {
	cs := make([]Category, 0, len(sectionSpecs))
	for c := range sectionSpecs {
		cs = append(cs, c)
	}
	slices.Sort(cs)
	return cs
}

func supportedList() string {
	cs := Categories()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
