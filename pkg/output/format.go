// Package output provides utilities for formatting and displaying amortization results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/loan-amortizer/pkg/amortization"
)

// PrettyFormat writes a human-readable rather than machine-readable summary and
// table. dates may be nil, in which case the Date column is omitted.
func PrettyFormat(w io.Writer, result *amortization.Result, dates []string) error {
	if result == nil {
		return fmt.Errorf("no amortization result to format")
	}

	lines := []string{
		"--- Amortization summary ---",
		fmt.Sprintf("Monthly payment: %.2f", result.MonthlyPayment),
		fmt.Sprintf("Total interest:  %.2f", result.TotalInterest),
		fmt.Sprintf("Total paid:      %.2f", result.TotalPaid),
		fmt.Sprintf("Payoff time:     %d payments", result.PayoffPeriods()),
		"",
	}
	withDates := len(dates) >= len(result.Schedule) && len(result.Schedule) > 0
	if withDates {
		lines = append(lines,
			"#   | Date    | Payment | Principal | Interest | Balance",
			"_   | ____    | _______ | _________ | ________ | _______",
		)
	} else {
		lines = append(lines,
			"#   | Payment | Principal | Interest | Balance",
			"_   | _______ | _________ | ________ | _______",
		)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	for i, payment := range result.Schedule {
		var err error
		if withDates {
			_, err = fmt.Fprintf(w, "%d | %s | %.2f | %.2f | %.2f | %.2f\n", payment.PaymentNumber, dates[i],
				payment.PaymentAmount, payment.PrincipalPayment, payment.InterestPayment, payment.RemainingBalance)
		} else {
			_, err = fmt.Fprintf(w, "%d | %.2f | %.2f | %.2f | %.2f\n", payment.PaymentNumber,
				payment.PaymentAmount, payment.PrincipalPayment, payment.InterestPayment, payment.RemainingBalance)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat writes the comma-separated text export of the schedule.
func CsvFormat(w io.Writer, schedule []amortization.PaymentRecord) error {
	_, err := io.WriteString(w, amortization.ExportToText(schedule))
	return err
}
