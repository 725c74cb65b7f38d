package cache

import (
	"context"
	"time"

	"github.com/fwojciec/polarisdocs"
)

// Cache keys combine an operation tag with the (category, slug[, kind/name])
// tuple. This is the de facto layout of all cached state; it is in-memory
// only and never serialized.

// Ensure decorators implement their interfaces at compile time.
var (
	_ polarisdocs.RegistryService = (*RegistryService)(nil)
	_ polarisdocs.ContentService  = (*ContentService)(nil)
	_ polarisdocs.DevelopService  = (*DevelopService)(nil)
)

// RegistryService wraps a RegistryService with a single-entry TTL cache.
// Only fully built registries are stored; a failing build caches nothing.
type RegistryService struct {
	next  polarisdocs.RegistryService
	cache *Cache[*polarisdocs.Registry]
	ttl   time.Duration
}

// NewRegistryService creates a caching decorator around next.
func NewRegistryService(next polarisdocs.RegistryService, ttl time.Duration, opts ...Option[*polarisdocs.Registry]) *RegistryService {
	return &RegistryService{next: next, cache: New(opts...), ttl: ttl}
}

// Registry returns the cached registry if present and unexpired, otherwise
// rebuilds it wholesale through the wrapped service.
func (s *RegistryService) Registry(ctx context.Context) (*polarisdocs.Registry, error) {
	if reg, ok := s.cache.Get("registry"); ok {
		return reg, nil
	}
	reg, err := s.next.Registry(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set("registry", reg, s.ttl)
	return reg, nil
}

// ContentService wraps a ContentService with per-document TTL caching.
// ENOTFOUND results are not cached.
type ContentService struct {
	next       polarisdocs.ContentService
	cache      *Cache[string]
	docTTL     time.Duration
	exampleTTL time.Duration
}

// NewContentService creates a caching decorator around next.
func NewContentService(next polarisdocs.ContentService, docTTL, exampleTTL time.Duration, opts ...Option[string]) *ContentService {
	return &ContentService{next: next, cache: New(opts...), docTTL: docTTL, exampleTTL: exampleTTL}
}

// FetchDoc returns the cached document or fetches and caches it.
func (s *ContentService) FetchDoc(ctx context.Context, loc polarisdocs.Location, kind polarisdocs.DocKind) (string, error) {
	key := "doc:" + loc.Category + ":" + loc.Slug + ":" + string(kind)
	if doc, ok := s.cache.Get(key); ok {
		return doc, nil
	}
	doc, err := s.next.FetchDoc(ctx, loc, kind)
	if err != nil {
		return "", err
	}
	s.cache.Set(key, doc, s.docTTL)
	return doc, nil
}

// FetchExample returns the cached example or fetches and caches it.
func (s *ContentService) FetchExample(ctx context.Context, loc polarisdocs.Location, name string) (string, error) {
	key := "example:" + loc.Category + ":" + loc.Slug + ":" + name
	if src, ok := s.cache.Get(key); ok {
		return src, nil
	}
	src, err := s.next.FetchExample(ctx, loc, name)
	if err != nil {
		return "", err
	}
	s.cache.Set(key, src, s.exampleTTL)
	return src, nil
}

// DevelopService wraps a DevelopService with TTL caching. Scraped data is
// the most expensive value to produce and carries the longest TTL.
type DevelopService struct {
	next  polarisdocs.DevelopService
	cache *Cache[*polarisdocs.DevelopData]
	ttl   time.Duration
}

// NewDevelopService creates a caching decorator around next.
func NewDevelopService(next polarisdocs.DevelopService, ttl time.Duration, opts ...Option[*polarisdocs.DevelopData]) *DevelopService {
	return &DevelopService{next: next, cache: New(opts...), ttl: ttl}
}

// Develop returns cached develop data or scrapes and caches it.
func (s *DevelopService) Develop(ctx context.Context, loc polarisdocs.Location) (*polarisdocs.DevelopData, error) {
	key := "develop:" + loc.Category + ":" + loc.Slug
	if data, ok := s.cache.Get(key); ok {
		return data, nil
	}
	data, err := s.next.Develop(ctx, loc)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, data, s.ttl)
	return data, nil
}

// Close delegates to the wrapped service.
func (s *DevelopService) Close() error {
	return s.next.Close()
}
