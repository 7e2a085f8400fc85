// Command usd_totals prints the USD total of one SKU from a transactions CSV and a rates XML file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/usd_totals/internal/adapters/fileloader"
	"github.com/SscSPs/usd_totals/internal/core/conversion"
)

const usage = "Usage: usd_totals transactions_file rates_file sku"

const (
	exitOK         = 0
	exitFailure    = 1
	exitUsageError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// stdout only ever carries the total
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if len(args) != 3 {
		fmt.Fprintln(stderr, usage)
		return exitUsageError
	}
	transactionsFile, ratesFile, sku := args[0], args[1], args[2]

	loader := fileloader.NewLoader()
	txns, err := loader.LoadTransactionsFile(transactionsFile)
	if err != nil {
		logger.Error("Failed to load transactions", slog.String("file", transactionsFile), slog.String("error", err.Error()))
		return exitFailure
	}
	rates, err := loader.LoadRatesFile(ratesFile)
	if err != nil {
		logger.Error("Failed to load rates", slog.String("file", ratesFile), slog.String("error", err.Error()))
		return exitFailure
	}

	total, err := conversion.Total(txns, conversion.NewCatalog(rates), sku)
	if err != nil {
		logger.Error("Failed to total SKU", slog.String("sku", sku), slog.String("error", err.Error()))
		return exitFailure
	}

	fmt.Fprintln(stdout, total.StringFixed(conversion.USDPlaces))
	return exitOK
}
