// Package parse implements the record extraction core: the heuristic
// email corrector, the line-by-line parser with its running section
// state, and the pipeline tying them to a text extractor and the
// report formatter.
package parse

import (
	"regexp"
	"strings"

	"github.com/fwojciec/donorlist"
)

// knownDomain pairs a domain root with its valid extensions, most
// common first. The lookup is substring-based and the first matching
// root wins, so more specific roots must come before more general ones
// (gmail and hotmail before mail).
type knownDomain struct {
	root       string
	extensions []string
}

// knownDomains lists the email providers commonly seen in the source
// documents. Order is part of the matching contract.
var knownDomains = []knownDomain{
	{root: "gmail", extensions: []string{".com", ".pt"}},
	{root: "hotmail", extensions: []string{".com", ".pt"}},
	{root: "outlook", extensions: []string{".com", ".pt"}},
	{root: "sapo", extensions: []string{".pt"}},
	{root: "live", extensions: []string{".com", ".pt"}},
	{root: "yahoo", extensions: []string{".com", ".pt"}},
	{root: "icloud", extensions: []string{".com"}},
	{root: "mail", extensions: []string{".pt"}},
	{root: "iol", extensions: []string{".pt"}},
	{root: "clix", extensions: []string{".pt"}},
	{root: "netcabo", extensions: []string{".pt"}},
}

var (
	// truncatedComRe matches addresses whose ".com" lost its final m.
	truncatedComRe = regexp.MustCompile(`(?i)@[\w.-]+\.co$`)

	// truncatedTLDRe matches addresses cut at ".c" or a bare trailing
	// dot, capturing the domain part for the known-domain lookup.
	truncatedTLDRe = regexp.MustCompile(`(?i)@([\w.-]+)\.c?$`)

	// brokenSuffixRe is the suffix replaced by the inferred extension.
	brokenSuffixRe = regexp.MustCompile(`(?i)\.c?$`)

	validEmailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Ensure Corrector implements donorlist.EmailCorrector at compile time.
var _ donorlist.EmailCorrector = (*Corrector)(nil)

// Corrector repairs truncated email suffixes. The correction log is
// per-run state, so each document run needs its own instance; a
// Corrector is not safe for concurrent use.
type Corrector struct {
	log []donorlist.Correction
}

// NewCorrector returns a Corrector with an empty correction log.
func NewCorrector() *Corrector {
	return &Corrector{}
}

// Correct repairs a malformed address and reports whether it changed.
// Input is trimmed and stripped of internal spaces first. The two
// repair rules are mutually exclusive: an address ending in ".co" gets
// its m appended and never reaches the known-domain lookup.
func (c *Corrector) Correct(email string) (string, bool) {
	original := strings.ReplaceAll(strings.TrimSpace(email), " ", "")
	if original == "" {
		return "", false
	}

	corrected := original
	changed := false

	if truncatedComRe.MatchString(corrected) {
		corrected += "m"
		changed = true
	} else if m := truncatedTLDRe.FindStringSubmatch(corrected); m != nil {
		ext := ".com"
		domain := strings.ToLower(m[1])
		for _, known := range knownDomains {
			if strings.Contains(domain, known.root) {
				ext = known.extensions[0]
				break
			}
		}
		corrected = brokenSuffixRe.ReplaceAllString(corrected, ext)
		changed = true
	}

	if changed {
		c.log = append(c.log, donorlist.Correction{Original: original, Corrected: corrected})
	}

	return corrected, changed
}

// Validate reports whether the address matches the pragmatic
// local@host.tld shape.
func (c *Corrector) Validate(email string) bool {
	return validEmailRe.MatchString(strings.ReplaceAll(strings.TrimSpace(email), " ", ""))
}

// Corrections returns every repair applied so far, in order.
func (c *Corrector) Corrections() []donorlist.Correction {
	return c.log
}
