// Package amortization computes loan amortization schedules.
package amortization

import "sort"

// LoanInput holds the parameters of a single schedule computation.
type LoanInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate"`
	TermMonths        int     `json:"term_months"`
}

// PaymentRecord holds the values for a given payment.
type PaymentRecord struct {
	PaymentNumber    int     `json:"payment_number"`
	PaymentAmount    float64 `json:"payment_amount"`
	PrincipalPayment float64 `json:"principal_payment"`
	InterestPayment  float64 `json:"interest_payment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Result is a computed schedule with its aggregates.
type Result struct {
	// MonthlyPayment is the base periodic payment; it never includes extra
	// payments, read Schedule for realized amounts.
	MonthlyPayment float64         `json:"monthly_payment"`
	TotalInterest  float64         `json:"total_interest"`
	TotalPaid      float64         `json:"total_paid"`
	Schedule       []PaymentRecord `json:"schedule"`
}

// PayoffPeriods returns the number of payments needed to retire the loan.
func (r *Result) PayoffPeriods() int {
	if r == nil {
		return 0
	}
	return len(r.Schedule)
}

// ExtraPayments maps a payment number to an amount applied to principal in that
// period only.
type ExtraPayments map[int]float64

// Amount returns the extra payment for a payment number, zero when absent.
func (e ExtraPayments) Amount(paymentNumber int) float64 {
	return e[paymentNumber]
}

// Count returns the number of periods carrying a positive extra payment.
func (e ExtraPayments) Count() int {
	count := 0
	for _, amount := range e {
		if amount > 0 {
			count++
		}
	}
	return count
}

// Total sums the positive extra payments.
func (e ExtraPayments) Total() float64 {
	total := 0.0
	for _, amount := range e {
		if amount > 0 {
			total += amount
		}
	}
	return total
}

// PaymentNumbers returns the payment numbers carrying an entry, ascending.
func (e ExtraPayments) PaymentNumbers() []int {
	numbers := make([]int, 0, len(e))
	for paymentNumber := range e {
		numbers = append(numbers, paymentNumber)
	}
	sort.Ints(numbers)
	return numbers
}
