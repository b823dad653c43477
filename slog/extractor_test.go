package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/donorlist/mock"
	donorslog "github.com/fwojciec/donorlist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_ExtractPages(t *testing.T) {
	t.Parallel()

	input := bytes.NewReader([]byte("%PDF-stub"))

	t.Run("logs page count with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			ExtractPagesFn: func(_ context.Context, _ io.ReaderAt, _ int64) ([]string, error) {
				return []string{"pagina um", "pagina dois"}, nil
			},
		}

		extractor := donorslog.NewLoggingExtractor(inner, logger)
		pages, err := extractor.ExtractPages(context.Background(), input, input.Size())

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		output := buf.String()
		assert.Contains(t, output, "text extraction")
		assert.Contains(t, output, "pages=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs extraction failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			ExtractPagesFn: func(_ context.Context, _ io.ReaderAt, _ int64) ([]string, error) {
				return nil, errors.New("corrupt xref table")
			},
		}

		extractor := donorslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.ExtractPages(context.Background(), input, input.Size())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "text extraction failed")
		assert.Contains(t, output, "corrupt xref table")
	})
}
