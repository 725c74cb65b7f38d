package polarisdocs

import (
	"context"
	"strings"
)

// NoDevelopData is rendered when a component has no property tables.
const NoDevelopData = "No property data available for this component."

// PropertyInfo is one row of a property, event, or accessibility table.
type PropertyInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Default string `json:"default"`
	// Required is never detected by the extraction and is always false.
	// Kept in the shape so the output format is stable if detection lands.
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// PropertiesSection is a named group of property rows, e.g. "Properties",
// "Events", or "Accessibility". Title is "Other" when the source heading
// was empty or unrecognized.
type PropertiesSection struct {
	Title      string         `json:"title"`
	Properties []PropertyInfo `json:"properties"`
}

// DevelopData holds the structured property data scraped from a component's
// develop view. Zero sections is a valid, renderable state.
type DevelopData struct {
	Sections []PropertiesSection `json:"sections"`
}

// DevelopService produces structured property data for a component.
type DevelopService interface {
	// Develop scrapes and returns the property tables for the component at
	// loc. Returns ETIMEOUT when the page does not render in time and
	// EBROWSER when the browser runtime cannot be started.
	Develop(ctx context.Context, loc Location) (*DevelopData, error)

	// Close releases the shared browser process. Safe to call when no
	// browser is running.
	Close() error
}

// TableExtractor turns rendered table HTML into property rows. Abstracting
// the selector strategy here lets it evolve without touching the scraper.
type TableExtractor interface {
	// ExtractRows parses an HTML fragment containing a table and returns
	// its rows. A fragment with no table yields zero rows, not an error.
	ExtractRows(html string) ([]PropertyInfo, error)
}

// FormatDevelop renders develop data as a sequence of per-section markdown
// tables. Pipe characters inside cell values are escaped so they cannot
// corrupt the column structure. Empty data renders as NoDevelopData.
func FormatDevelop(data *DevelopData) string {
	if data == nil || len(data.Sections) == 0 {
		return NoDevelopData
	}

	var sb strings.Builder
	for i, section := range data.Sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("## " + section.Title + "\n\n")
		sb.WriteString("| Name | Type | Default | Required | Description |\n")
		sb.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, p := range section.Properties {
			required := "No"
			if p.Required {
				required = "Yes"
			}
			sb.WriteString("| " + escapeCell(p.Name) +
				" | " + escapeCell(p.Type) +
				" | " + escapeCell(p.Default) +
				" | " + required +
				" | " + escapeCell(p.Description) + " |\n")
		}
	}
	return sb.String()
}

// escapeCell makes a value safe for a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
