package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/donorlist"
)

var (
	// donorIDRe matches structured donor identifiers such as
	// "SP.AB123.45/21": letter prefix, alphanumeric segment, digits,
	// then a two-digit registration year.
	donorIDRe = regexp.MustCompile(`[A-Za-z]+\.[A-Za-z0-9]+\.[0-9]+/[0-9]{2}`)

	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.[a-zA-Z0-9.]+`)
	dateRe       = regexp.MustCompile(`[0-9]{2}/[0-9]{2}/[0-9]{4}`)
	emailStartRe = regexp.MustCompile(`\w+@`)

	// nameRe matches a leading run of letters and spaces, covering the
	// accented set used in the source documents.
	nameRe = regexp.MustCompile(`^[A-ZÀÁÂÃÇÉÊÍÓÔÕÚ][A-ZÀÁÂÃÇÉÊÍÓÔÕÚa-zàáâãçéêíóôõú\s]+`)

	yearSuffixRe = regexp.MustCompile(`/([0-9]{2})$`)
)

// Parser scans page text line by line, tracking the current status
// section across lines and pages, and emits one record per matched
// donor identifier. One Parser handles exactly one document; the
// section state is never reset between pages.
type Parser struct {
	corrector donorlist.EmailCorrector
	status    donorlist.Status
}

// NewParser returns a Parser in the INDEFINIDO state.
func NewParser(corrector donorlist.EmailCorrector) *Parser {
	return &Parser{
		corrector: corrector,
		status:    donorlist.StatusIndefinido,
	}
}

// ParsePage processes one page's text block and returns the records it
// yields, in line order. Lines without a donor identifier contribute
// nothing.
func (p *Parser) ParsePage(text string) []donorlist.Record {
	var records []donorlist.Record
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := p.parseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

func (p *Parser) parseLine(line string) (donorlist.Record, bool) {
	upper := strings.ToUpper(line)

	// Section headers switch the running status for subsequent lines.
	switch {
	case strings.Contains(upper, "APTOS"):
		p.status = donorlist.StatusApto
	case strings.Contains(upper, "SUSPENSOS"):
		p.status = donorlist.StatusSuspenso
	case strings.Contains(upper, "ELIMINADOS"):
		p.status = donorlist.StatusEliminado
	}

	loc := donorIDRe.FindStringIndex(line)
	if loc == nil {
		return donorlist.Record{}, false
	}
	id := line[loc[0]:loc[1]]

	// A status keyword on the record's own line overrides the carried
	// section state.
	status := p.status
	switch {
	case strings.Contains(upper, "APTO"):
		status = donorlist.StatusApto
	case strings.Contains(upper, "SUSPENSO"):
		status = donorlist.StatusSuspenso
	case strings.Contains(upper, "ELIMINADO"):
		status = donorlist.StatusEliminado
	}

	emailOriginal := emailRe.FindString(line)
	emailCorrected, wasCorrected := p.corrector.Correct(emailOriginal)

	rec := donorlist.Record{
		ID:                id,
		Name:              extractName(line[loc[1]:]),
		EmailOriginal:     emailOriginal,
		EmailCorrected:    emailCorrected,
		EmailWasCorrected: wasCorrected,
		Status:            status,
		HasValidEmail:     p.corrector.Validate(emailCorrected),
	}

	if status == donorlist.StatusEliminado {
		if year, ok := registrationYear(id); ok {
			rec.RegistrationYear = &year
		}
	}

	return rec, true
}

// registrationYear derives a four-digit year from the identifier's
// two-digit suffix. Values below 50 belong to the 2000s, the rest to
// the 1900s.
func registrationYear(id string) (int, bool) {
	m := yearSuffixRe.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	yy, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if yy < 50 {
		return 2000 + yy, true
	}
	return 1900 + yy, true
}

// extractName takes the text following the identifier and returns the
// leading run of letters and spaces, cut before the first date pattern
// or email.
func extractName(rest string) string {
	rest = strings.TrimSpace(rest)

	cut := len(rest)
	if loc := dateRe.FindStringIndex(rest); loc != nil && loc[0] < cut {
		cut = loc[0]
	}
	if loc := emailStartRe.FindStringIndex(rest); loc != nil && loc[0] < cut {
		cut = loc[0]
	}

	return strings.TrimSpace(nameRe.FindString(rest[:cut]))
}
