// Package pdf implements donorlist.TextExtractor on top of
// github.com/ledongthuc/pdf. It rebuilds each page's lines from text
// rows, producing the page-ordered plain-text blocks the parser
// consumes.
package pdf

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fwojciec/donorlist"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements donorlist.TextExtractor at compile time.
var _ donorlist.TextExtractor = (*Extractor)(nil)

// Extractor reads page-ordered plain text from PDF documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPages returns one text block per page. Pages without
// extractable text yield empty strings; any reader failure aborts the
// whole document.
func (e *Extractor) ExtractPages(ctx context.Context, r io.ReaderAt, size int64) (pages []string, err error) {
	// The underlying reader panics on some malformed documents.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := pageText(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// pageText joins a page's text rows into newline-separated lines.
// Row positions originate at the bottom of the page, so descending
// order is reading order.
func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Position > rows[j].Position })

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, text := range row.Content {
			sb.WriteString(text.S)
		}
	}
	return sb.String(), nil
}
