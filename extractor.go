package donorlist

import (
	"context"
	"io"
)

// TextExtractor produces page-ordered plain text from a PDF document.
// Only strings cross this boundary; no layout or coordinate
// information.
type TextExtractor interface {
	// ExtractPages returns one text block per page, in page order.
	// Pages without extractable text yield empty strings.
	ExtractPages(ctx context.Context, r io.ReaderAt, size int64) ([]string, error)
}

// Extraction is the result of one processing run.
type Extraction struct {
	Records     []Record     `json:"records"`
	Corrections []Correction `json:"corrections"`
	Report      string       `json:"report"`
}

// ExtractionService runs one document end to end: text extraction,
// record parsing, email correction, and report generation.
type ExtractionService interface {
	// Extract processes one document. Returns EEXTRACTION if the text
	// extractor fails and EEMPTY if no donor records were found; there
	// is no partial result.
	Extract(ctx context.Context, r io.ReaderAt, size int64) (*Extraction, error)
}
