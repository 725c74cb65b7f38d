// Package content fetches a component's static documentation views and
// example snippets from the source repository by deterministic path.
package content

import (
	"context"
	"fmt"
	"path"

	"github.com/fwojciec/polarisdocs"
)

// Defaults matching the Polaris repository layout.
const (
	DefaultExamplesRoot = "polaris.shopify.com/pages/examples"
	DefaultExampleExt   = "tsx"
)

// Ensure Fetcher implements polarisdocs.ContentService at compile time.
var _ polarisdocs.ContentService = (*Fetcher)(nil)

// Fetcher retrieves raw markup documents by (category, slug, kind) and
// example snippets by (slug, name). It performs no caching; wrap it in
// cache.NewContentService for that.
type Fetcher struct {
	source       polarisdocs.Source
	root         string
	ext          string
	examplesRoot string
	exampleExt   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithExamples overrides the examples directory and extension.
func WithExamples(root, ext string) Option {
	return func(f *Fetcher) {
		f.examplesRoot = root
		f.exampleExt = ext
	}
}

// NewFetcher creates a Fetcher over documents laid out as
// <root>/<category>/<slug>/<file>.<ext>.
func NewFetcher(source polarisdocs.Source, root, ext string, opts ...Option) *Fetcher {
	f := &Fetcher{
		source:       source,
		root:         root,
		ext:          ext,
		examplesRoot: DefaultExamplesRoot,
		exampleExt:   DefaultExampleExt,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchDoc returns the raw markup for one static documentation view. The
// overview lives in the component's index document; other kinds have their
// own files alongside it. A 404 propagates as ENOTFOUND, uncached and
// untouched, so callers can render "no such document" rather than a failure.
func (f *Fetcher) FetchDoc(ctx context.Context, loc polarisdocs.Location, kind polarisdocs.DocKind) (string, error) {
	file := string(kind)
	if kind == polarisdocs.KindOverview {
		file = "index"
	}
	p := path.Join(f.root, loc.Category, loc.Slug, file+"."+f.ext)

	doc, err := f.source.FetchFile(ctx, p)
	if err != nil {
		if polarisdocs.ErrorCode(err) == polarisdocs.ENOTFOUND {
			return "", err
		}
		return "", fmt.Errorf("fetching %s doc for %s: %w", kind, loc.Slug, err)
	}
	return doc, nil
}

// FetchExample returns the source of a named example snippet. An empty name
// selects the default example.
func (f *Fetcher) FetchExample(ctx context.Context, loc polarisdocs.Location, name string) (string, error) {
	if name == "" {
		name = polarisdocs.DefaultExample
	}
	p := path.Join(f.examplesRoot, loc.Slug+"-"+name+"."+f.exampleExt)

	src, err := f.source.FetchFile(ctx, p)
	if err != nil {
		if polarisdocs.ErrorCode(err) == polarisdocs.ENOTFOUND {
			return "", err
		}
		return "", fmt.Errorf("fetching example %s for %s: %w", name, loc.Slug, err)
	}
	return src, nil
}
