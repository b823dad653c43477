package donorlist

// EmailCorrector repairs malformed email suffixes and validates
// addresses. Implementations keep an ordered log of every applied
// repair for the lifetime of one processing run, so each run needs its
// own instance.
type EmailCorrector interface {
	// Correct returns the repaired address and whether it changed.
	// Blank input yields ("", false). Correct never fails; it returns
	// best-effort values.
	Correct(email string) (corrected string, changed bool)

	// Validate reports whether the address matches the pragmatic
	// local@host.tld shape. No DNS or MX checking.
	Validate(email string) bool

	// Corrections returns every repair applied so far, in order.
	Corrections() []Correction
}
