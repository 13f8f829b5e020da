package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/timebox/internal/cli"
	"github.com/alexanderramin/timebox/internal/db"
	"github.com/alexanderramin/timebox/internal/intelligence"
	"github.com/alexanderramin/timebox/internal/llm"
	"github.com/alexanderramin/timebox/internal/repository"
	"github.com/alexanderramin/timebox/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	database, err := db.OpenDB(db.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work for transactional saves.
	planRepo := repository.NewSQLitePlanRepo(database)
	presetRepo := repository.NewSQLitePresetRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the AI client.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewGeminiClient(llmCfg, observer)
	scheduler := intelligence.NewScheduleService(client)

	planSvc := service.NewPlanService(planRepo, uow, scheduler)
	presetSvc := service.NewPresetService(presetRepo, planSvc)

	app := &cli.App{
		Plans:   planSvc,
		Presets: presetSvc,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Seed the starter preset catalog on first run.
	if err := presetSvc.EnsureDefaults(context.Background()); err != nil {
		return fmt.Errorf("seeding presets: %w", err)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
