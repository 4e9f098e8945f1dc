// Package schedule turns a loan configuration into a computed amortization
// schedule together with its payment dates and extra payment savings.
package schedule

import (
	"fmt"

	"github.com/iwvelando/loan-amortizer/internal/config"
	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/iwvelando/loan-amortizer/pkg/datetime"
	"github.com/iwvelando/loan-amortizer/pkg/mathutil"
	"go.uber.org/zap"
)

// Schedule holds everything computed for one loan configuration.
type Schedule struct {
	Result *amortization.Result
	// Baseline and Savings are only set when extra payments were applied.
	Baseline      *amortization.Result
	Savings       *amortization.Savings
	ExtraPayments amortization.ExtraPayments
	Dates         []string
	Warnings      []string
}

// GetSchedule computes the amortization schedule described by conf. When any
// extra payment falls within the term the extra payment variant is used and
// compared against the same loan without extras.
func GetSchedule(logger *zap.Logger, conf *config.Configuration) (*Schedule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	termMonths, err := conf.TermMonths()
	if err != nil {
		return nil, err
	}
	// The extra payment variant does not check the term itself, and a zero
	// term would produce an infinite payment.
	if termMonths <= 0 {
		return nil, &amortization.ValidationError{Message: amortization.MsgTermNotPositive}
	}
	if err := conf.ParsePaymentLists(); err != nil {
		return nil, err
	}

	loan := conf.Loan
	calc := amortization.NewCalculator(logger)
	out := &Schedule{Warnings: conf.ValidateConfiguration()}

	extras := conf.ExtraPaymentMap()
	if len(extras) > 0 {
		out.ExtraPayments = extras
		out.Result, err = calc.ComputeScheduleWithExtraPayments(loan.Principal, loan.AnnualRate, termMonths, extras)
		if err != nil {
			return nil, err
		}
		out.Baseline, err = calc.ComputeScheduleWithExtraPayments(loan.Principal, loan.AnnualRate, termMonths, nil)
		if err != nil {
			return nil, err
		}
		savings := amortization.CompareSchedules(out.Baseline, out.Result)
		out.Savings = &savings
		logger.Debug(fmt.Sprintf("extra payments save %.2f interest and %d payments",
			savings.InterestSaved, savings.PeriodsSaved),
			zap.String("op", "schedule.GetSchedule"),
		)
	} else {
		out.Result, err = calc.ComputeSchedule(loan.Principal, loan.AnnualRate, termMonths)
		if err != nil {
			return nil, err
		}
	}

	// Rates far outside 0-100 are accepted with extra payments and can
	// overflow the payment formula.
	if !isFinite(out.Result) {
		return nil, &amortization.ValidationError{Message: amortization.MsgScheduleNotFinite}
	}

	if loan.StartDate != "" {
		out.Dates, err = datetime.PaymentDates(loan.StartDate, out.Result.PayoffPeriods())
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func isFinite(result *amortization.Result) bool {
	if !mathutil.IsFinite(result.MonthlyPayment) || !mathutil.IsFinite(result.TotalInterest) ||
		!mathutil.IsFinite(result.TotalPaid) {
		return false
	}
	for _, payment := range result.Schedule {
		if !mathutil.IsFinite(payment.PaymentAmount) || !mathutil.IsFinite(payment.PrincipalPayment) ||
			!mathutil.IsFinite(payment.InterestPayment) || !mathutil.IsFinite(payment.RemainingBalance) {
			return false
		}
	}
	return true
}
