// Package slog provides logging decorators for the polarisdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/polarisdocs"
)

// Ensure ContentService implements polarisdocs.ContentService.
var _ polarisdocs.ContentService = (*ContentService)(nil)

// ContentService wraps a ContentService with debug logging.
type ContentService struct {
	next   polarisdocs.ContentService
	logger *slog.Logger
}

// NewContentService creates a new logging ContentService.
func NewContentService(next polarisdocs.ContentService, logger *slog.Logger) *ContentService {
	return &ContentService{next: next, logger: logger}
}

// FetchDoc logs the fetch and delegates to the wrapped service.
func (s *ContentService) FetchDoc(ctx context.Context, loc polarisdocs.Location, kind polarisdocs.DocKind) (doc string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch doc",
			"category", loc.Category,
			"slug", loc.Slug,
			"kind", string(kind),
			"bytes", len(doc),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchDoc(ctx, loc, kind)
}

// FetchExample logs the fetch and delegates to the wrapped service.
func (s *ContentService) FetchExample(ctx context.Context, loc polarisdocs.Location, name string) (src string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch example",
			"category", loc.Category,
			"slug", loc.Slug,
			"name", name,
			"bytes", len(src),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchExample(ctx, loc, name)
}
