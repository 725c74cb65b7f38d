package mock

import "github.com/fwojciec/polarisdocs"

var (
	_ polarisdocs.TableExtractor = (*TableExtractor)(nil)
	_ polarisdocs.Converter      = (*Converter)(nil)
	_ polarisdocs.Cleaner        = (*Cleaner)(nil)
)

// TableExtractor is a mock implementation of polarisdocs.TableExtractor.
type TableExtractor struct {
	ExtractRowsFn func(html string) ([]polarisdocs.PropertyInfo, error)
}

func (e *TableExtractor) ExtractRows(html string) ([]polarisdocs.PropertyInfo, error) {
	return e.ExtractRowsFn(html)
}

// Converter is a mock implementation of polarisdocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Cleaner is a mock implementation of polarisdocs.Cleaner.
type Cleaner struct {
	CleanFn func(markup string) string
}

func (c *Cleaner) Clean(markup string) string {
	return c.CleanFn(markup)
}
