package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/donorlist"
)

// Ensure LoggingService implements donorlist.ExtractionService.
var _ donorlist.ExtractionService = (*LoggingService)(nil)

// LoggingService wraps an ExtractionService with run-level logs.
type LoggingService struct {
	next   donorlist.ExtractionService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next donorlist.ExtractionService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Extract delegates to the wrapped service and logs the run summary.
func (s *LoggingService) Extract(ctx context.Context, r io.ReaderAt, size int64) (*donorlist.Extraction, error) {
	begin := time.Now()
	extraction, err := s.next.Extract(ctx, r, size)
	if err != nil {
		s.logger.Error("extraction run failed",
			"code", donorlist.ErrorCode(err),
			"duration", time.Since(begin),
			"error", donorlist.ErrorMessage(err),
		)
		return nil, err
	}

	s.logger.Info("extraction run",
		"records", len(extraction.Records),
		"corrections", len(extraction.Corrections),
		"duration", time.Since(begin),
	)
	return extraction, nil
}
