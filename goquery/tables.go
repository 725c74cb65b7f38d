// Package goquery extracts property rows from rendered HTML tables. The
// selector strategy lives entirely in this package behind the
// polarisdocs.TableExtractor interface, so it can track the documentation
// site's markup without touching the scraper.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/polarisdocs"
)

// Ensure Extractor implements polarisdocs.TableExtractor at compile time.
var _ polarisdocs.TableExtractor = (*Extractor)(nil)

// Column roles a property table can carry. Mapping is header-driven with a
// positional fallback when the table has no recognizable header row.
const (
	colName = iota
	colType
	colDefault
	colDescription
	colUnknown
)

// Extractor parses property tables out of HTML fragments. An optional
// Converter cleans inline HTML in description cells into markdown;
// without one, descriptions fall back to plain text.
type Extractor struct {
	conv polarisdocs.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter sets the converter used for description cells.
func WithConverter(conv polarisdocs.Converter) Option {
	return func(e *Extractor) {
		e.conv = conv
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractRows parses the first table in the fragment into property rows.
// A fragment with no table, or a table with no data rows, yields zero rows.
func (e *Extractor) ExtractRows(html string) ([]polarisdocs.PropertyInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, nil
	}

	roles := headerRoles(table)

	var rows []polarisdocs.PropertyInfo
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			// Header row or row-header-only row.
			return
		}

		var row polarisdocs.PropertyInfo
		cells.Each(func(i int, cell *goquery.Selection) {
			switch roleFor(roles, i) {
			case colName:
				row.Name = cellName(cell)
			case colType:
				row.Type = cleanText(cell.Text())
			case colDefault:
				row.Default = cleanText(cell.Text())
			case colDescription:
				row.Description = e.cellDescription(cell)
			}
		})

		if row.Name != "" {
			rows = append(rows, row)
		}
	})

	return rows, nil
}

// headerRoles maps column index to role from the table's header cells.
// Returns nil when no header cell is recognized, which selects the
// positional fallback.
func headerRoles(table *goquery.Selection) []int {
	headers := table.Find("thead th")
	if headers.Length() == 0 {
		headers = table.Find("tr").First().Find("th")
	}
	if headers.Length() == 0 {
		return nil
	}

	roles := make([]int, headers.Length())
	recognized := false
	headers.Each(func(i int, th *goquery.Selection) {
		roles[i] = classifyHeader(th.Text())
		if roles[i] != colUnknown {
			recognized = true
		}
	})
	if !recognized {
		return nil
	}
	return roles
}

// classifyHeader maps a header label to a column role.
func classifyHeader(label string) int {
	label = strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(label, "name") || strings.Contains(label, "prop") || strings.Contains(label, "event") || strings.Contains(label, "key"):
		return colName
	case strings.Contains(label, "type") || strings.Contains(label, "value"):
		return colType
	case strings.Contains(label, "default"):
		return colDefault
	case strings.Contains(label, "desc"):
		return colDescription
	default:
		return colUnknown
	}
}

// roleFor resolves the role of cell i under the header mapping, falling
// back to name/type/default/description column order.
func roleFor(roles []int, i int) int {
	if roles != nil {
		if i < len(roles) {
			return roles[i]
		}
		return colUnknown
	}
	if i <= colDescription {
		return i
	}
	return colUnknown
}

// cellName prefers an inline code-styled value over the cell's plain text.
func cellName(cell *goquery.Selection) string {
	if code := cell.Find("code").First(); code.Length() > 0 {
		if name := cleanText(code.Text()); name != "" {
			return name
		}
	}
	return cleanText(cell.Text())
}

// cellDescription converts the cell's inner HTML to markdown when a
// converter is configured, falling back to plain text.
func (e *Extractor) cellDescription(cell *goquery.Selection) string {
	if e.conv != nil {
		if html, err := cell.Html(); err == nil {
			if md, err := e.conv.Convert(html); err == nil {
				return cleanText(md)
			}
		}
	}
	return cleanText(cell.Text())
}

// cleanText collapses internal whitespace runs into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
