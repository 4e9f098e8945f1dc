package schedule

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/iwvelando/loan-amortizer/internal/config"
	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/iwvelando/loan-amortizer/pkg/constants"
	"go.uber.org/zap"
)

func TestGetScheduleStandard(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	conf := &config.Configuration{
		Loan: config.Loan{Principal: 100000, AnnualRate: 6, Term: 30, TermUnit: "years", StartDate: "2025-01"},
	}

	result, err := GetSchedule(logger, conf)
	if err != nil {
		t.Fatalf("GetSchedule() error = %v", err)
	}

	if result.Baseline != nil || result.Savings != nil || result.ExtraPayments != nil {
		t.Error("expected no baseline comparison without extra payments")
	}
	if math.Abs(result.Result.MonthlyPayment-599.55) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, expected 599.55", result.Result.MonthlyPayment)
	}
	if len(result.Dates) != 360 {
		t.Fatalf("expected 360 dates, got %d", len(result.Dates))
	}
	if result.Dates[0] != "2025-01" || result.Dates[359] != "2054-12" {
		t.Errorf("unexpected date range %s..%s", result.Dates[0], result.Dates[359])
	}
}

func TestGetScheduleWithExtraPayments(t *testing.T) {
	conf := &config.Configuration{
		Loan: config.Loan{Principal: 10000, AnnualRate: 5, Term: 24},
		ExtraPayments: []config.ExtraPayment{
			{Name: "lump sum", Amount: 500, StartPayment: 1},
		},
	}

	result, err := GetSchedule(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetSchedule() error = %v", err)
	}

	if result.Baseline == nil || result.Savings == nil {
		t.Fatal("expected baseline comparison with extra payments")
	}
	if result.Result.PayoffPeriods() >= 24 {
		t.Errorf("expected early payoff, got %d payments", result.Result.PayoffPeriods())
	}
	if result.Savings.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %.2f, expected positive", result.Savings.InterestSaved)
	}
	if result.ExtraPayments.Count() != 1 || result.ExtraPayments.Total() != 500 {
		t.Errorf("unexpected extra payments %v", result.ExtraPayments)
	}
	if result.Dates != nil {
		t.Errorf("expected no dates without a start date, got %v", result.Dates)
	}
}

func TestGetScheduleIgnoresExtrasOutsideTerm(t *testing.T) {
	conf := &config.Configuration{
		Loan:          config.Loan{Principal: 10000, AnnualRate: 5, Term: 24},
		ExtraPayments: []config.ExtraPayment{{Name: "too late", Amount: 500, StartPayment: 30}},
	}

	result, err := GetSchedule(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetSchedule() error = %v", err)
	}
	if result.Baseline != nil {
		t.Error("expected the standard schedule when no extra payment applies")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the extra payment after the term")
	}
}

func TestGetScheduleAcceptsHighRateWithExtras(t *testing.T) {
	conf := &config.Configuration{
		Loan:          config.Loan{Principal: 1000, AnnualRate: 150, Term: 12},
		ExtraPayments: []config.ExtraPayment{{Name: "lump sum", Amount: 100, StartPayment: 2}},
	}

	result, err := GetSchedule(nil, conf)
	if err != nil {
		t.Fatalf("GetSchedule() error = %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a rate warning")
	}

	conf.ExtraPayments = nil
	if _, err := GetSchedule(nil, conf); !amortization.IsValidationError(err) {
		t.Errorf("expected validation error without extras, got %v", err)
	}
}

func TestGetScheduleRejectsNonFiniteSchedule(t *testing.T) {
	conf := &config.Configuration{
		Loan:          config.Loan{Principal: 1000, AnnualRate: 1e6, Term: 360},
		ExtraPayments: []config.ExtraPayment{{Name: "lump sum", Amount: 10, StartPayment: 1}},
	}

	_, err := GetSchedule(zap.NewNop(), conf)
	if !amortization.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != amortization.MsgScheduleNotFinite {
		t.Errorf("error = %q, expected %q", err.Error(), amortization.MsgScheduleNotFinite)
	}
}

func TestGetScheduleErrors(t *testing.T) {
	tests := []struct {
		name            string
		conf            *config.Configuration
		validationError bool
	}{
		{
			name:            "Zero principal",
			conf:            &config.Configuration{Loan: config.Loan{Principal: 0, AnnualRate: 5, Term: 12}},
			validationError: true,
		},
		{
			name: "Zero term with extras",
			conf: &config.Configuration{
				Loan:          config.Loan{Principal: 1000, AnnualRate: 5, Term: 0},
				ExtraPayments: []config.ExtraPayment{{Name: "x", Amount: 10}},
			},
			validationError: true,
		},
		{
			name: "Unknown term unit",
			conf: &config.Configuration{Loan: config.Loan{Principal: 1000, AnnualRate: 5, Term: 1, TermUnit: "days"}},
		},
		{
			name: "Negative extra payment",
			conf: &config.Configuration{
				Loan:          config.Loan{Principal: 1000, AnnualRate: 5, Term: 12},
				ExtraPayments: []config.ExtraPayment{{Name: "x", Amount: -10}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetSchedule(zap.NewNop(), tt.conf)
			if err == nil {
				t.Fatal("GetSchedule() expected error but got none")
			}
			if amortization.IsValidationError(err) != tt.validationError {
				t.Errorf("IsValidationError() = %v, expected %v (%v)", !tt.validationError, tt.validationError, err)
			}
		})
	}
}

func TestGetScheduleExampleConfig(t *testing.T) {
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	result, err := GetSchedule(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetSchedule() error = %v", err)
	}

	if result.ExtraPayments.Count() != 11 {
		t.Errorf("expected 11 extra payments (1 lump sum + 10 annual bonuses), got %d", result.ExtraPayments.Count())
	}
	if result.Result.PayoffPeriods() >= 360 {
		t.Errorf("expected early payoff, got %d payments", result.Result.PayoffPeriods())
	}
	if len(result.Dates) != result.Result.PayoffPeriods() {
		t.Errorf("expected %d dates, got %d", result.Result.PayoffPeriods(), len(result.Dates))
	}
}
