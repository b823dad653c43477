package mock

import "github.com/fwojciec/donorlist"

var _ donorlist.EmailCorrector = (*EmailCorrector)(nil)

// EmailCorrector is a mock implementation of donorlist.EmailCorrector.
type EmailCorrector struct {
	CorrectFn     func(email string) (string, bool)
	ValidateFn    func(email string) bool
	CorrectionsFn func() []donorlist.Correction
}

func (c *EmailCorrector) Correct(email string) (string, bool) {
	return c.CorrectFn(email)
}

func (c *EmailCorrector) Validate(email string) bool {
	return c.ValidateFn(email)
}

func (c *EmailCorrector) Corrections() []donorlist.Correction {
	return c.CorrectionsFn()
}
