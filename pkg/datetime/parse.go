// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-amortizer/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for loan start dates and is also the
	// payment date label format.
	DateTimeLayout = constants.DateTimeLayout
)

// ValidateDate checks that a date is in the YYYY-MM layout.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM: %w", date, err)
	}
	return nil
}

// PaymentDates labels count consecutive monthly payments, the first one falling
// in the month of startDate.
func PaymentDates(startDate string, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	start, err := time.Parse(DateTimeLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q, expected YYYY-MM: %w", startDate, err)
	}

	dates := make([]string, count)
	for i := range dates {
		dates[i] = start.AddDate(0, i, 0).Format(DateTimeLayout)
	}
	return dates, nil
}
