package amortization

import (
	"errors"
	"fmt"

	"github.com/iwvelando/loan-amortizer/pkg/constants"
)

// Validation messages returned to callers verbatim.
const (
	MsgPrincipalNotPositive = "Principal must be greater than 0"
	MsgRateOutOfRange       = "Interest rate must be between 0 and 100"
	MsgTermNotPositive      = "Term must be greater than 0"
	MsgScheduleNotFinite    = "Schedule is not finite for this interest rate and term"
)

// ValidationError reports loan input rejected before any computation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// Validate checks principal, rate and term, in that order.
func (in LoanInput) Validate() error {
	if err := validatePrincipal(in.Principal); err != nil {
		return err
	}
	if in.AnnualRatePercent < 0 || in.AnnualRatePercent > constants.MaxAnnualRatePercent {
		return &ValidationError{Message: MsgRateOutOfRange}
	}
	if in.TermMonths <= 0 {
		return &ValidationError{Message: MsgTermNotPositive}
	}
	return nil
}

func validatePrincipal(principal float64) error {
	// Written as a negated comparison so NaN is rejected as well.
	if !(principal > 0) {
		return &ValidationError{Message: MsgPrincipalNotPositive}
	}
	return nil
}

// TermToMonths converts a term expressed in unit ("months" or "years") into a
// count of monthly payments. An empty unit means months.
func TermToMonths(term int, unit string) (int, error) {
	switch unit {
	case "", constants.TermUnitMonths:
		return term, nil
	case constants.TermUnitYears:
		return term * constants.MonthsPerYear, nil
	default:
		return 0, fmt.Errorf("expected term unit of %s or %s, got %s",
			constants.TermUnitMonths, constants.TermUnitYears, unit)
	}
}
