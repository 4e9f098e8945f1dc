// Package constants provides shared constants for the loan-amortizer application.
package constants

// DateTimeLayout is the format used for loan start dates and payment date labels.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxAnnualRatePercent is the highest accepted annual interest rate
	MaxAnnualRatePercent = 100.0

	// BalanceEpsilon is the remaining balance at or below which a loan is paid off
	BalanceEpsilon = 0.001

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Term unit constants
const (
	// TermUnitMonths expresses a term as a count of monthly payments
	TermUnitMonths = "months"

	// TermUnitYears expresses a term in years of monthly payments
	TermUnitYears = "years"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the comma-separated text export format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX is the spreadsheet export format
	OutputFormatXLSX = "xlsx"
)

// Export constants
const (
	// TextExportHeader is the first line of every text export
	TextExportHeader = "Payment Number,Payment Amount,Principal,Interest,Remaining Balance"

	// TextExportFilename is the suggested file name for text exports
	TextExportFilename = "amortization_schedule.csv"

	// XLSXExportFilename is the suggested file name for spreadsheet exports
	XLSXExportFilename = "amortization_schedule.xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// ServerConfigEnvVar names the environment variable that can point at the server config
	ServerConfigEnvVar = "AMORTIZER_SERVER_CONFIG"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
