package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/polarisdocs"
)

// Ensure DevelopService implements polarisdocs.DevelopService.
var _ polarisdocs.DevelopService = (*DevelopService)(nil)

// DevelopService wraps a DevelopService with debug logging for scrapes.
type DevelopService struct {
	next   polarisdocs.DevelopService
	logger *slog.Logger
}

// NewDevelopService creates a new logging DevelopService.
func NewDevelopService(next polarisdocs.DevelopService, logger *slog.Logger) *DevelopService {
	return &DevelopService{next: next, logger: logger}
}

// Develop logs the scrape and delegates to the wrapped service.
func (s *DevelopService) Develop(ctx context.Context, loc polarisdocs.Location) (data *polarisdocs.DevelopData, err error) {
	defer func(begin time.Time) {
		sections := 0
		if data != nil {
			sections = len(data.Sections)
		}
		s.logger.Info("scrape develop",
			"category", loc.Category,
			"slug", loc.Slug,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Develop(ctx, loc)
}

// Close delegates to the wrapped service.
func (s *DevelopService) Close() error {
	return s.next.Close()
}
