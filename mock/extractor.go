package mock

import (
	"context"
	"io"

	"github.com/fwojciec/donorlist"
)

var _ donorlist.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of donorlist.TextExtractor.
type TextExtractor struct {
	ExtractPagesFn func(ctx context.Context, r io.ReaderAt, size int64) ([]string, error)
}

func (e *TextExtractor) ExtractPages(ctx context.Context, r io.ReaderAt, size int64) ([]string, error) {
	return e.ExtractPagesFn(ctx, r, size)
}
