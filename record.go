package donorlist

// Status classifies a donor record. The document groups donors under
// section headers (APTOS, SUSPENSOS, ELIMINADOS); records seen before
// any header default to INDEFINIDO.
type Status string

// Status values, in the order they are reported.
const (
	StatusApto       Status = "APTO"
	StatusSuspenso   Status = "SUSPENSO"
	StatusEliminado  Status = "ELIMINADO"
	StatusIndefinido Status = "INDEFINIDO"
)

// Record represents one donor row matched in the document. Records are
// immutable once parsed; the parse produces one Record per matched line
// in document reading order.
type Record struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	EmailOriginal     string `json:"emailOriginal"`
	EmailCorrected    string `json:"emailCorrected"`
	EmailWasCorrected bool   `json:"emailWasCorrected"`
	Status            Status `json:"status"`
	HasValidEmail     bool   `json:"hasValidEmail"`

	// RegistrationYear is derived from the identifier's /YY suffix,
	// and only for eliminated donors. Nil otherwise.
	RegistrationYear *int `json:"registrationYear,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	if r.Status == "" {
		return Errorf(EINVALID, "record status required")
	}
	return nil
}

// Correction records one automatic email repair.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}
