package validation

import (
	"fmt"

	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/iwvelando/loan-amortizer/pkg/constants"
)

// ValidateExtraPayment rejects extra payments a borrower cannot make: a payment
// number before the first payment or a negative amount.
func ValidateExtraPayment(paymentNumber int, amount float64) error {
	if paymentNumber < 1 {
		return fmt.Errorf("extra payment number must be at least 1, got %d", paymentNumber)
	}
	if amount < 0 {
		return fmt.Errorf("extra payment for payment %d cannot be negative (%.2f)", paymentNumber, amount)
	}
	return nil
}

// ValidateExtraPayments applies ValidateExtraPayment to every entry, reporting
// the lowest offending payment number first.
func ValidateExtraPayments(extras amortization.ExtraPayments) error {
	for _, paymentNumber := range extras.PaymentNumbers() {
		if err := ValidateExtraPayment(paymentNumber, extras[paymentNumber]); err != nil {
			return err
		}
	}
	return nil
}

// RateWarning flags a rate the standard schedule would reject but the extra
// payment schedule accepts.
func RateWarning(annualRatePercent float64) string {
	if annualRatePercent < 0 || annualRatePercent > constants.MaxAnnualRatePercent {
		return fmt.Sprintf("Interest rate %.2f is outside 0-100 and is only accepted when extra payments are configured",
			annualRatePercent)
	}
	return ""
}
