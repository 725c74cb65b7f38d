package polarisdocs

import (
	"context"
	"time"
)

// DocKind selects one of a component's static documentation views.
type DocKind string

// Static documentation kinds. KindDevelop is the prose part of the develop
// view; the structured property tables come from DevelopService.
const (
	KindOverview   DocKind = "overview"
	KindGuidelines DocKind = "guidelines"
	KindDevelop    DocKind = "develop"
)

// DefaultExample is the example name used when the caller does not specify
// one.
const DefaultExample = "default"

// TTL classes per cached value kind. Scraped develop data is the most
// expensive to produce and keeps the longest TTL.
const (
	TTLRegistry = 60 * time.Minute
	TTLDoc      = 30 * time.Minute
	TTLExample  = 30 * time.Minute
	TTLDevelop  = 120 * time.Minute
)

// TreeEntry is one path in a repository tree listing.
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Source provides read access to the documentation repository.
type Source interface {
	// ListTree returns the full recursive tree of the source repository's
	// configured branch.
	ListTree(ctx context.Context) ([]TreeEntry, error)

	// FetchFile returns the raw contents of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	FetchFile(ctx context.Context, path string) (string, error)
}

// ContentService retrieves raw documentation markup for a component.
type ContentService interface {
	// FetchDoc returns the raw markup for one of the component's static
	// documentation views. Returns ENOTFOUND when the document does not
	// exist; cleanup of the markup happens outside this interface.
	FetchDoc(ctx context.Context, loc Location, kind DocKind) (string, error)

	// FetchExample returns the source of a named example snippet.
	// Returns ENOTFOUND when no such example exists.
	FetchExample(ctx context.Context, loc Location, name string) (string, error)
}

// Cleaner normalizes raw markup for display.
// Implementations are stateless string transforms.
type Cleaner interface {
	Clean(markup string) string
}

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
