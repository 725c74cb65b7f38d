package mock

import (
	"context"

	"github.com/fwojciec/polarisdocs"
)

var _ polarisdocs.Source = (*Source)(nil)

// Source is a mock implementation of polarisdocs.Source.
type Source struct {
	ListTreeFn  func(ctx context.Context) ([]polarisdocs.TreeEntry, error)
	FetchFileFn func(ctx context.Context, path string) (string, error)
}

func (s *Source) ListTree(ctx context.Context) ([]polarisdocs.TreeEntry, error) {
	return s.ListTreeFn(ctx)
}

func (s *Source) FetchFile(ctx context.Context, path string) (string, error) {
	return s.FetchFileFn(ctx, path)
}
