package mock

import (
	"context"

	"github.com/fwojciec/polarisdocs"
)

var (
	_ polarisdocs.RegistryService = (*RegistryService)(nil)
	_ polarisdocs.ContentService  = (*ContentService)(nil)
	_ polarisdocs.DevelopService  = (*DevelopService)(nil)
)

// RegistryService is a mock implementation of polarisdocs.RegistryService.
type RegistryService struct {
	RegistryFn func(ctx context.Context) (*polarisdocs.Registry, error)
}

func (s *RegistryService) Registry(ctx context.Context) (*polarisdocs.Registry, error) {
	return s.RegistryFn(ctx)
}

// ContentService is a mock implementation of polarisdocs.ContentService.
type ContentService struct {
	FetchDocFn     func(ctx context.Context, loc polarisdocs.Location, kind polarisdocs.DocKind) (string, error)
	FetchExampleFn func(ctx context.Context, loc polarisdocs.Location, name string) (string, error)
}

func (s *ContentService) FetchDoc(ctx context.Context, loc polarisdocs.Location, kind polarisdocs.DocKind) (string, error) {
	return s.FetchDocFn(ctx, loc, kind)
}

func (s *ContentService) FetchExample(ctx context.Context, loc polarisdocs.Location, name string) (string, error) {
	return s.FetchExampleFn(ctx, loc, name)
}

// DevelopService is a mock implementation of polarisdocs.DevelopService.
type DevelopService struct {
	DevelopFn func(ctx context.Context, loc polarisdocs.Location) (*polarisdocs.DevelopData, error)
	CloseFn   func() error
}

func (s *DevelopService) Develop(ctx context.Context, loc polarisdocs.Location) (*polarisdocs.DevelopData, error) {
	return s.DevelopFn(ctx, loc)
}

func (s *DevelopService) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
