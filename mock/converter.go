package mock

import "github.com/fwojciec/secmda"

var _ secmda.Converter = (*Converter)(nil)

// Converter is a mock implementation of secmda.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
