package mock

import "github.com/fwojciec/govlens"

var _ govlens.Converter = (*Converter)(nil)

// Converter is a mock implementation of govlens.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
