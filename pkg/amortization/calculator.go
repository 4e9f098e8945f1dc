package amortization

import (
	"fmt"
	"math"

	"github.com/iwvelando/loan-amortizer/pkg/constants"
	"github.com/iwvelando/loan-amortizer/pkg/mathutil"
	"go.uber.org/zap"
)

// MonthlyRate converts an annual percentage rate into the periodic rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / constants.PercentageMultiplier / constants.MonthsPerYear
}

// MonthlyPayment calculates the level payment that retires principal over
// termMonths at monthlyRate using the standard annuity formula.
func MonthlyPayment(principal, monthlyRate float64, termMonths int) float64 {
	if monthlyRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	rateFactor := math.Pow(1+monthlyRate, float64(termMonths))
	return principal * (monthlyRate * rateFactor) / (rateFactor - 1)
}

// Calculator builds amortization schedules. It holds no mutable state and is
// safe for concurrent use.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// ComputeSchedule validates the loan and produces its full amortization schedule.
func (c *Calculator) ComputeSchedule(principal, annualRatePercent float64, termMonths int) (*Result, error) {
	input := LoanInput{Principal: principal, AnnualRatePercent: annualRatePercent, TermMonths: termMonths}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	monthlyRate := MonthlyRate(annualRatePercent)
	monthlyPayment := MonthlyPayment(principal, monthlyRate, termMonths)

	b := newScheduleBuilder(principal, monthlyRate, termMonths)
	for paymentNumber := 1; paymentNumber <= termMonths; paymentNumber++ {
		b.pay(paymentNumber, monthlyPayment)
		if mathutil.IsPaidOff(b.balance) {
			break
		}
	}

	result := b.result(monthlyPayment)
	c.logger.Debug(fmt.Sprintf("computed schedule of %d payments at %.2f", len(result.Schedule), monthlyPayment),
		zap.String("op", "amortization.ComputeSchedule"),
		zap.Float64("principal", principal),
		zap.Float64("annual_rate", annualRatePercent),
		zap.Int("term_months", termMonths),
	)
	return result, nil
}

// ComputeScheduleWithExtraPayments produces a schedule where extraPayments are
// added to the base payment of their period. Only the principal is validated.
// The loop always stops after termMonths payments, even if extra payments are
// negative enough to keep the balance from shrinking.
func (c *Calculator) ComputeScheduleWithExtraPayments(principal, annualRatePercent float64, termMonths int,
	extraPayments ExtraPayments) (*Result, error) {
	if err := validatePrincipal(principal); err != nil {
		return nil, err
	}

	monthlyRate := MonthlyRate(annualRatePercent)
	baseMonthlyPayment := MonthlyPayment(principal, monthlyRate, termMonths)

	b := newScheduleBuilder(principal, monthlyRate, termMonths)
	// Written as a positive comparison so a NaN balance ends the loop.
	for paymentNumber := 1; b.balance > constants.BalanceEpsilon && paymentNumber <= termMonths; paymentNumber++ {
		extra := extraPayments.Amount(paymentNumber)
		if extra != 0 {
			c.logger.Debug(fmt.Sprintf("applying extra principal payment %.2f to payment %d", extra, paymentNumber),
				zap.String("op", "amortization.ComputeScheduleWithExtraPayments"),
			)
		}
		b.pay(paymentNumber, baseMonthlyPayment+extra)
	}

	result := b.result(baseMonthlyPayment)
	c.logger.Debug(fmt.Sprintf("computed schedule of %d payments with %d extra payments",
		len(result.Schedule), extraPayments.Count()),
		zap.String("op", "amortization.ComputeScheduleWithExtraPayments"),
		zap.Float64("principal", principal),
		zap.Float64("annual_rate", annualRatePercent),
		zap.Int("term_months", termMonths),
		zap.Float64("extra_total", extraPayments.Total()),
	)
	return result, nil
}

// scheduleBuilder carries the running balance shared by both schedule variants.
type scheduleBuilder struct {
	principal     float64
	monthlyRate   float64
	balance       float64
	totalInterest float64
	schedule      []PaymentRecord
}

func newScheduleBuilder(principal, monthlyRate float64, termMonths int) *scheduleBuilder {
	capacity := termMonths
	if capacity < 0 {
		capacity = 0
	}
	return &scheduleBuilder{
		principal:   principal,
		monthlyRate: monthlyRate,
		balance:     principal,
		schedule:    make([]PaymentRecord, 0, capacity),
	}
}

// pay applies one period in which up to payment is paid toward the loan.
func (b *scheduleBuilder) pay(paymentNumber int, payment float64) {
	interest := b.balance * b.monthlyRate

	var principalPayment float64
	if b.balance < payment {
		// Final period: pay off what is left.
		principalPayment = b.balance
	} else {
		principalPayment = payment - interest
	}

	b.balance -= principalPayment
	b.totalInterest += interest

	b.schedule = append(b.schedule, PaymentRecord{
		PaymentNumber:    paymentNumber,
		PaymentAmount:    principalPayment + interest,
		PrincipalPayment: principalPayment,
		InterestPayment:  interest,
		RemainingBalance: mathutil.ClampNonNegative(b.balance),
	})
}

func (b *scheduleBuilder) result(monthlyPayment float64) *Result {
	return &Result{
		MonthlyPayment: monthlyPayment,
		TotalInterest:  b.totalInterest,
		TotalPaid:      b.principal + b.totalInterest,
		Schedule:       b.schedule,
	}
}
