package amortization

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-amortizer/pkg/constants"
)

// ExportToText renders a schedule as comma-separated text with a header line.
// Every line, including the last, ends in a newline.
func ExportToText(schedule []PaymentRecord) string {
	var builder strings.Builder
	builder.WriteString(constants.TextExportHeader)
	builder.WriteByte('\n')

	for _, payment := range schedule {
		fmt.Fprintf(&builder, "%d,%.2f,%.2f,%.2f,%.2f\n",
			payment.PaymentNumber,
			payment.PaymentAmount,
			payment.PrincipalPayment,
			payment.InterestPayment,
			payment.RemainingBalance,
		)
	}

	return builder.String()
}
