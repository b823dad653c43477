// Package slog provides logging decorators for the domain interfaces,
// keeping the core packages logger-free.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/donorlist"
)

// Ensure LoggingExtractor implements donorlist.TextExtractor.
var _ donorlist.TextExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TextExtractor with timing logs.
type LoggingExtractor struct {
	next   donorlist.TextExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next donorlist.TextExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPages delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractPages(ctx context.Context, r io.ReaderAt, size int64) ([]string, error) {
	begin := time.Now()
	pages, err := e.next.ExtractPages(ctx, r, size)
	if err != nil {
		e.logger.Error("text extraction failed",
			"size", size,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	e.logger.Info("text extraction",
		"pages", len(pages),
		"size", size,
		"duration", time.Since(begin),
	)
	return pages, nil
}
