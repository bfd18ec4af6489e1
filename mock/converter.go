package mock

import "github.com/fwojciec/reader"

var _ reader.Converter = (*Converter)(nil)

// Converter is a mock implementation of reader.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
