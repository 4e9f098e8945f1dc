package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/loan-amortizer/pkg/amortization"
	"github.com/xuri/excelize/v2"
)

func zeroRateResult(t *testing.T) *amortization.Result {
	t.Helper()
	result, err := amortization.NewCalculator(nil).ComputeSchedule(1200, 0, 12)
	if err != nil {
		t.Fatalf("ComputeSchedule() error = %v", err)
	}
	return result
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, zeroRateResult(t), nil); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"--- Amortization summary ---",
		"Monthly payment: 100.00",
		"Total interest:  0.00",
		"Total paid:      1200.00",
		"Payoff time:     12 payments",
		"#   | Payment | Principal | Interest | Balance",
		"1 | 100.00 | 100.00 | 0.00 | 1100.00",
		"12 | 100.00 | 100.00 | 0.00 | 0.00",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat missing %q", want)
		}
	}
	if strings.Contains(output, "$") || strings.Contains(output, "1,200") {
		t.Error("PrettyFormat should not apply currency formatting")
	}
}

func TestPrettyFormatWithDates(t *testing.T) {
	result := zeroRateResult(t)
	dates := make([]string, 12)
	for i := range dates {
		dates[i] = "2025-01"
	}
	dates[11] = "2025-12"

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, result, dates); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "#   | Date    | Payment") {
		t.Error("PrettyFormat missing date column header")
	}
	if !strings.Contains(output, "12 | 2025-12 | 100.00 | 100.00 | 0.00 | 0.00") {
		t.Error("PrettyFormat missing dated final row")
	}
}

func TestPrettyFormatNilResult(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, nil, nil); err == nil {
		t.Error("expected error for nil result")
	}
}

func TestCsvFormatMatchesExportToText(t *testing.T) {
	result := zeroRateResult(t)

	var buf bytes.Buffer
	if err := CsvFormat(&buf, result.Schedule); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	if buf.String() != amortization.ExportToText(result.Schedule) {
		t.Error("CsvFormat output differs from ExportToText")
	}
}

func TestXLSXFormat(t *testing.T) {
	result := zeroRateResult(t)

	var buf bytes.Buffer
	if err := XLSXFormat(&buf, result, nil); err != nil {
		t.Fatalf("XLSXFormat() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to open generated spreadsheet: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(scheduleSheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 13 {
		t.Fatalf("expected header plus 12 rows, got %d", len(rows))
	}
	expectedHeader := []string{"Payment Number", "Payment Amount", "Principal", "Interest", "Remaining Balance"}
	for i, want := range expectedHeader {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, expected %q", i, rows[0][i], want)
		}
	}
	if rows[12][0] != "12" {
		t.Errorf("last payment number = %q, expected 12", rows[12][0])
	}

	label, err := f.GetCellValue(summarySheet, "A4")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if label != "Payments" {
		t.Errorf("summary label = %q, expected Payments", label)
	}
	count, err := f.GetCellValue(summarySheet, "B4")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if count != "12" {
		t.Errorf("summary payments = %q, expected 12", count)
	}
}

func TestXLSXFormatWithDates(t *testing.T) {
	result := zeroRateResult(t)
	dates := []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06",
		"2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12"}

	var buf bytes.Buffer
	if err := XLSXFormat(&buf, result, dates); err != nil {
		t.Fatalf("XLSXFormat() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to open generated spreadsheet: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	header, err := f.GetCellValue(scheduleSheet, "B1")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if header != "Date" {
		t.Errorf("B1 = %q, expected Date", header)
	}
	last, err := f.GetCellValue(scheduleSheet, "B13")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if last != "2025-12" {
		t.Errorf("B13 = %q, expected 2025-12", last)
	}
}

func TestXLSXFormatRejectsShortDates(t *testing.T) {
	var buf bytes.Buffer
	if err := XLSXFormat(&buf, zeroRateResult(t), []string{"2025-01"}); err == nil {
		t.Error("expected error when dates do not cover the schedule")
	}
}
