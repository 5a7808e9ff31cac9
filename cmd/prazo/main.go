package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/prazo/internal/cli"
	"github.com/alexanderramin/prazo/internal/config"
	"github.com/alexanderramin/prazo/internal/db"
	"github.com/alexanderramin/prazo/internal/repository"
	"github.com/alexanderramin/prazo/internal/scenario"
	"github.com/alexanderramin/prazo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(os.Getenv("PRAZO_CONFIG"))
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	registry, err := scenario.NewDefaultRegistry(cfg.ScenarioDir)
	if err != nil {
		return fmt.Errorf("loading scenarios: %w", err)
	}
	provider, err := cfg.HolidayProvider()
	if err != nil {
		return fmt.Errorf("loading holidays: %w", err)
	}

	// Observers: structured log to stderr on request, metrics when a textfile
	// target is configured.
	var observers []service.UseCaseObserver
	if cfg.Log {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}
	if cfg.MetricsFile != "" {
		metrics := service.NewMetricsObserver()
		observers = append(observers, metrics)
		defer func() {
			if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil && err == nil {
				err = werr
			}
		}()
	}
	observer := service.NewMultiObserver(observers...)

	uow := db.NewSQLiteUnitOfWork(database)
	app := &cli.App{
		Deadlines: service.NewDeadlineService(registry, provider, uow, service.CalendarOptions{
			Pattern:          cfg.Pattern(),
			HorizonYears:     cfg.Holidays.HorizonYears,
			BatchConcurrency: cfg.BatchConcurrency,
		}, observer),
		Runs:      service.NewRunService(repository.NewSQLiteRunRepo(database), observer),
		Scenarios: service.NewScenarioService(registry),
	}
	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
