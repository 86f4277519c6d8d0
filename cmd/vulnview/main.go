package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sunghoyun/vulnview/internal/cli"
	"github.com/sunghoyun/vulnview/internal/db"
	"github.com/sunghoyun/vulnview/internal/repository"
	"github.com/sunghoyun/vulnview/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Records live in memory by default; the record tree is session-scoped.
	// VULNVIEW_DB points at a file for anyone who wants runs to survive.
	dbPath := os.Getenv("VULNVIEW_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	groupRepo := repository.NewSQLiteDateGroupRepo(database)
	diagRepo := repository.NewSQLiteDiagnosisRepo(database)
	actionRepo := repository.NewSQLiteActionRepo(database)
	seqRepo := repository.NewSQLiteRecordSequenceRepo(database)
	checkRepo := repository.NewSQLiteCheckRepo(database)

	app := &cli.App{
		Records: service.NewRecordService(groupRepo, diagRepo, actionRepo, seqRepo),
		Checks:  service.NewCheckService(checkRepo),
		Reports: service.NewReportService(diagRepo, actionRepo),
	}

	// The bare invocation launches the TUI, so require a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
