package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/loan-amortizer/internal/config"
	"github.com/iwvelando/loan-amortizer/internal/logging"
	"github.com/iwvelando/loan-amortizer/internal/schedule"
	"github.com/iwvelando/loan-amortizer/pkg/constants"
	"github.com/iwvelando/loan-amortizer/pkg/output"
	"github.com/iwvelando/loan-amortizer/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, xlsx")
	outputPath := flag.String("output", "", "write output to this file instead of stdout")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	result, err := schedule.GetSchedule(logger, conf)
	if err != nil {
		logger.Fatal("failed to compute amortization schedule",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	for _, warning := range result.Warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if result.Savings != nil {
		logger.Info(fmt.Sprintf("%d extra payments totaling %.2f save %.2f interest and %d payments",
			result.ExtraPayments.Count(), result.ExtraPayments.Total(),
			result.Savings.InterestSaved, result.Savings.PeriodsSaved),
			zap.String("op", "main"),
		)
	}

	var w io.Writer = os.Stdout
	if *outputPath != "" {
		file, err := os.Create(*outputPath)
		if err != nil {
			logger.Fatal("failed to create output file",
				zap.String("op", "main"),
				zap.String("path", *outputPath),
				zap.Error(err),
			)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				logger.Error("failed to close output file",
					zap.String("op", "main"),
					zap.Error(closeErr),
				)
			}
		}()
		w = file
	}

	if err := writeOutput(w, outputFormat, result); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.String("format", outputFormat),
			zap.Error(err),
		)
	}
}

// writeOutput renders the computed schedule in the requested format.
func writeOutput(w io.Writer, outputFormat string, result *schedule.Schedule) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return output.PrettyFormat(w, result.Result, result.Dates)
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, result.Result.Schedule)
	case constants.OutputFormatXLSX:
		return output.XLSXFormat(w, result.Result, result.Dates)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
