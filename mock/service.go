package mock

import (
	"context"
	"io"

	"github.com/fwojciec/donorlist"
)

var _ donorlist.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of donorlist.ExtractionService.
type ExtractionService struct {
	ExtractFn func(ctx context.Context, r io.ReaderAt, size int64) (*donorlist.Extraction, error)
}

func (s *ExtractionService) Extract(ctx context.Context, r io.ReaderAt, size int64) (*donorlist.Extraction, error) {
	return s.ExtractFn(ctx, r, size)
}
