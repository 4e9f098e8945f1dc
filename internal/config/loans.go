package config

import (
	"fmt"

	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/iwvelando/loan-amortizer/pkg/validation"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Principal  float64
	AnnualRate float64 `yaml:"annualRate"` // percent
	Term       int
	TermUnit   string `yaml:"termUnit,omitempty"`  // months (default) or years
	StartDate  string `yaml:"startDate,omitempty"` // YYYY-MM of the first payment
}

// ExtraPayment indicates an additional principal payment, either one-time or
// recurring every Frequency payments.
type ExtraPayment struct {
	Name         string
	Amount       float64
	StartPayment int `yaml:"startPayment,omitempty"` // defaults to 1
	EndPayment   int `yaml:"endPayment,omitempty"`   // defaults to the last payment of the term
	Frequency    int `yaml:"frequency,omitempty"`    // payments between occurrences, 0 for one-time
	PaymentList  []int
}

// Validate rejects negative amounts and inverted or negative payment ranges.
func (event *ExtraPayment) Validate() error {
	if event.StartPayment < 0 {
		return fmt.Errorf("extra payment '%s': start payment cannot be negative", event.Name)
	}
	if err := validation.ValidateExtraPayment(event.first(), event.Amount); err != nil {
		return fmt.Errorf("extra payment '%s': %w", event.Name, err)
	}
	if event.Frequency < 0 {
		return fmt.Errorf("extra payment '%s': frequency cannot be negative", event.Name)
	}
	if event.EndPayment != 0 && event.EndPayment < event.first() {
		return fmt.Errorf("extra payment '%s': end payment %d is before start payment %d",
			event.Name, event.EndPayment, event.first())
	}
	return nil
}

func (event *ExtraPayment) first() int {
	if event.StartPayment == 0 {
		return 1
	}
	return event.StartPayment
}

// FormPaymentList identifies every payment number the event applies to and
// stores them in PaymentList. Payments after termMonths are dropped.
func (event *ExtraPayment) FormPaymentList(termMonths int) {
	start := event.first()
	end := event.EndPayment
	if end == 0 || end > termMonths {
		end = termMonths
	}

	var paymentList []int
	if event.Frequency == 0 {
		if start <= termMonths {
			paymentList = append(paymentList, start)
		}
	} else {
		for n := start; n <= end; n += event.Frequency {
			paymentList = append(paymentList, n)
		}
	}
	event.PaymentList = paymentList
}

// ParsePaymentLists expands every extra payment event over the loan term.
func (conf *Configuration) ParsePaymentLists() error {
	termMonths, err := conf.TermMonths()
	if err != nil {
		return err
	}
	for i := range conf.ExtraPayments {
		if err := conf.ExtraPayments[i].Validate(); err != nil {
			return err
		}
		conf.ExtraPayments[i].FormPaymentList(termMonths)
	}
	return nil
}

// ExtraPaymentMap sums the expanded extra payment events per payment number.
// ParsePaymentLists must have been called first.
func (conf *Configuration) ExtraPaymentMap() amortization.ExtraPayments {
	extras := make(amortization.ExtraPayments)
	for _, event := range conf.ExtraPayments {
		for _, paymentNumber := range event.PaymentList {
			extras[paymentNumber] += event.Amount
		}
	}
	return extras
}
