// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/loan-amortizer/pkg/amortization"
)

// FindPayment finds a payment by number in the schedule.
// Returns a pointer to the record if found, nil otherwise.
func FindPayment(schedule []amortization.PaymentRecord, paymentNumber int) *amortization.PaymentRecord {
	for i := range schedule {
		if schedule[i].PaymentNumber == paymentNumber {
			return &schedule[i]
		}
	}
	return nil
}

// SumPrincipal totals the principal portion of every payment.
func SumPrincipal(schedule []amortization.PaymentRecord) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.PrincipalPayment
	}
	return total
}

// SumInterest totals the interest portion of every payment.
func SumInterest(schedule []amortization.PaymentRecord) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.InterestPayment
	}
	return total
}

// LastPayment returns the final record of the schedule, nil when empty.
func LastPayment(schedule []amortization.PaymentRecord) *amortization.PaymentRecord {
	if len(schedule) == 0 {
		return nil
	}
	return &schedule[len(schedule)-1]
}
