package secmda

// NotFound is returned in place of section text when no heading matches the
// section's opening marker. It is a normal result, not an error; callers
// must check for it with IsNotFound before treating the text as content.
const NotFound = "Desired section not found."

// IsNotFound reports whether text is the NotFound sentinel.
func IsNotFound(text string) bool {
	return text == NotFound
}

// SectionExtractor isolates the MD&A narrative from a filing document.
type SectionExtractor interface {
	// ExtractSection parses raw filing HTML and returns the plain text of the
	// MD&A section for the given category, or NotFound.
	// Returns EUNSUPPORTED for unknown categories and EINVALID for empty input.
	ExtractSection(html string, category Category) (string, error)
}
