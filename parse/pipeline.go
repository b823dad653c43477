package parse

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/donorlist"
)

// Ensure Pipeline implements donorlist.ExtractionService at compile time.
var _ donorlist.ExtractionService = (*Pipeline)(nil)

// Pipeline runs one document end to end: text extraction, record
// parsing, and report generation. Each run gets a fresh parser and
// corrector, so a single Pipeline is safe for concurrent use.
type Pipeline struct {
	Extractor donorlist.TextExtractor

	// Now returns the report generation time. Defaults to time.Now.
	Now func() time.Time
}

// Extract implements donorlist.ExtractionService. Processing is
// strictly sequential over pages, then lines within a page.
func (p *Pipeline) Extract(ctx context.Context, r io.ReaderAt, size int64) (*donorlist.Extraction, error) {
	pages, err := p.Extractor.ExtractPages(ctx, r, size)
	if err != nil {
		return nil, donorlist.Errorf(donorlist.EEXTRACTION, "pdf processing failed: %v", err)
	}

	corrector := NewCorrector()
	parser := NewParser(corrector)

	var records []donorlist.Record
	for _, page := range pages {
		if page == "" {
			continue
		}
		records = append(records, parser.ParsePage(page)...)
	}

	if len(records) == 0 {
		return nil, donorlist.Errorf(donorlist.EEMPTY, "no donor records found in the document; check that the file format is correct")
	}

	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	return &donorlist.Extraction{
		Records:     records,
		Corrections: corrector.Corrections(),
		Report:      donorlist.FormatReport(records, corrector.Corrections(), now),
	}, nil
}
