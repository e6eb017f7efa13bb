package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"expense-tally/internal/gateway"
	"expense-tally/internal/logger"
	"expense-tally/internal/storage"
	"expense-tally/internal/usecase"
)

func main() {
	csvPath := flag.String("csv", "", "Path to the bank statement CSV export (required, or CSV_FILEPATH)")
	databasePath := flag.String("database", "", "Path to the expense manager SQLite file (required, or DATABASE_FILEPATH)")
	flag.Parse()

	log := logger.New()

	// Flags win; the environment (optionally a .env file) fills in whatever
	// was not given on the command line.
	_ = godotenv.Load()
	if *csvPath == "" {
		*csvPath = os.Getenv("CSV_FILEPATH")
	}
	if *databasePath == "" {
		*databasePath = os.Getenv("DATABASE_FILEPATH")
	}

	if *csvPath == "" || *databasePath == "" {
		fmt.Println("Error: both -csv and -database are required.")
		flag.Usage()
		os.Exit(1)
	}

	// --- Dependency Injection (Wiring the application) ---
	ledgerSource := gateway.NewCSVLedgerSource()
	expenseSource, err := storage.NewDatabase(*databasePath)
	if err != nil {
		log.Fatal().Err(err).Str("database", *databasePath).Msg("cannot open expense database")
	}

	reconciliationUseCase := usecase.NewReconciliationUseCase(ledgerSource, expenseSource, log)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), *csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliation failed")
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate JSON report")
	}

	fmt.Println(string(output))
}
