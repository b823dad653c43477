// Package donorlist extracts mailing lists from donor registry PDFs.
// It parses the free-form text produced by a PDF reader into donor
// records, repairs truncated email addresses heuristically, and emits a
// deduplicated, status-segmented mailing report.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., pdf/,
// http/), with the parsing core in parse/.
package donorlist
