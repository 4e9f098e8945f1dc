package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/iwvelando/loan-amortizer/pkg/mathutil"
	"github.com/xuri/excelize/v2"
)

const (
	scheduleSheet = "Schedule"
	summarySheet  = "Summary"
)

type scheduleColumn struct {
	Header string
	Value  func(i int, p amortization.PaymentRecord) interface{}
}

func scheduleColumns(dates []string) []scheduleColumn {
	cols := []scheduleColumn{
		{"Payment Number", func(_ int, p amortization.PaymentRecord) interface{} { return p.PaymentNumber }},
	}
	if dates != nil {
		cols = append(cols, scheduleColumn{"Date", func(i int, _ amortization.PaymentRecord) interface{} { return dates[i] }})
	}
	return append(cols,
		scheduleColumn{"Payment Amount", func(_ int, p amortization.PaymentRecord) interface{} { return mathutil.Round(p.PaymentAmount) }},
		scheduleColumn{"Principal", func(_ int, p amortization.PaymentRecord) interface{} { return mathutil.Round(p.PrincipalPayment) }},
		scheduleColumn{"Interest", func(_ int, p amortization.PaymentRecord) interface{} { return mathutil.Round(p.InterestPayment) }},
		scheduleColumn{"Remaining Balance", func(_ int, p amortization.PaymentRecord) interface{} { return mathutil.Round(p.RemainingBalance) }},
	)
}

// XLSXFormat writes the schedule as a spreadsheet with a Schedule sheet and a
// Summary sheet. dates is optional; when given it must cover every payment.
func XLSXFormat(w io.Writer, result *amortization.Result, dates []string) error {
	if result == nil {
		return fmt.Errorf("no amortization result to export")
	}
	if dates != nil && len(dates) < len(result.Schedule) {
		return fmt.Errorf("expected %d payment dates, got %d", len(result.Schedule), len(dates))
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), scheduleSheet); err != nil {
		return fmt.Errorf("failed to name schedule sheet: %w", err)
	}

	cols := scheduleColumns(dates)
	for i, col := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(scheduleSheet, cell, col.Header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", col.Header, err)
		}
	}

	for rowIdx, payment := range result.Schedule {
		for colIdx, col := range cols {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(scheduleSheet, cell, col.Value(rowIdx, payment)); err != nil {
				return fmt.Errorf("failed to write payment %d: %w", payment.PaymentNumber, err)
			}
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	summary := [][2]interface{}{
		{"Monthly Payment", mathutil.Round(result.MonthlyPayment)},
		{"Total Interest", mathutil.Round(result.TotalInterest)},
		{"Total Paid", mathutil.Round(result.TotalPaid)},
		{"Payments", result.PayoffPeriods()},
	}
	for i, row := range summary {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
			return err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to render spreadsheet: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
