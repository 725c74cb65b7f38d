// Package registry builds the component index from the documentation
// repository: it lists the content tree, matches component index documents
// by path shape, and gathers per-component metadata concurrently.
package registry

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fwojciec/polarisdocs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel metadata fetches during a build.
const DefaultConcurrency = 8

// Ensure Builder implements polarisdocs.RegistryService at compile time.
var _ polarisdocs.RegistryService = (*Builder)(nil)

// Builder constructs a component registry from a Source. Every call to
// Registry performs a full build; callers wanting reuse wrap it in
// cache.NewRegistryService.
type Builder struct {
	source      polarisdocs.Source
	root        string
	ext         string
	concurrency int
	pathRe      *regexp.Regexp
}

// Option configures a Builder.
type Option func(*Builder)

// WithConcurrency bounds parallel metadata fetches. Defaults to
// DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		b.concurrency = n
	}
}

// NewBuilder creates a Builder that indexes component documents laid out as
// <root>/<category>/<slug>/index.<ext>. Any other nesting under root is
// ignored.
func NewBuilder(source polarisdocs.Source, root, ext string, opts ...Option) *Builder {
	b := &Builder{
		source:      source,
		root:        root,
		ext:         ext,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.pathRe = regexp.MustCompile(
		`^` + regexp.QuoteMeta(b.root) + `/([^/]+)/([^/]+)/index\.` + regexp.QuoteMeta(b.ext) + `$`,
	)
	return b
}

// matched is one component location found in the tree, with its index path.
type matched struct {
	loc  polarisdocs.Location
	path string
}

// Registry performs a full registry build. A failing tree listing is fatal.
// A missing component index document degrades that component to slug-only
// metadata; any other metadata fetch failure fails the whole build, so a
// partial registry is never returned.
func (b *Builder) Registry(ctx context.Context) (*polarisdocs.Registry, error) {
	entries, err := b.source.ListTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing content tree: %w", err)
	}

	var locations []matched
	for _, e := range entries {
		if e.Type != "blob" {
			continue
		}
		m := b.pathRe.FindStringSubmatch(e.Path)
		if m == nil {
			continue
		}
		locations = append(locations, matched{
			loc:  polarisdocs.Location{Category: m[1], Slug: m[2]},
			path: e.Path,
		})
	}

	// Metadata fetches run concurrently; indexed results preserve tree
	// order regardless of completion order.
	components := make([]polarisdocs.ComponentInfo, len(locations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, m := range locations {
		g.Go(func() error {
			info, err := b.componentInfo(gctx, m)
			if err != nil {
				return err
			}
			components[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return polarisdocs.NewRegistry(components), nil
}

// componentInfo fetches and parses one component's index document. A
// missing document is tolerated: the component keeps its slug as name.
func (b *Builder) componentInfo(ctx context.Context, m matched) (polarisdocs.ComponentInfo, error) {
	info := polarisdocs.ComponentInfo{
		Slug:     m.loc.Slug,
		Name:     m.loc.Slug,
		Category: m.loc.Category,
	}

	doc, err := b.source.FetchFile(ctx, m.path)
	if err != nil {
		if polarisdocs.ErrorCode(err) == polarisdocs.ENOTFOUND {
			return info, nil
		}
		return polarisdocs.ComponentInfo{}, fmt.Errorf("fetching metadata for %s: %w", m.loc.Slug, err)
	}

	fm := parseFrontmatter(doc)
	if fm.Title != "" {
		info.Name = fm.Title
	}
	info.Description = fm.Description
	return info, nil
}
