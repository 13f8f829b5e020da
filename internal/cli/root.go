package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/timebox/internal/repository"
	"github.com/alexanderramin/timebox/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans   service.PlanService
	Presets service.PresetService

	// IsInteractive reports whether stdin is a terminal. The TUI only
	// starts when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "timebox" command and registers all
// subcommands against the provided App. Running it without a subcommand
// opens the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timebox",
		Short: "AI-assisted timeboxing planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newPlanCmd(app),
		newPresetCmd(app),
		newExportCmd(app),
	)

	return root
}

// runTUI resumes the latest plan and starts the interactive program.
func runTUI(app *App) error {
	resumed, err := app.Plans.Resume(context.Background())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("resuming last plan: %w", err)
	}

	p := tea.NewProgram(newAppModel(app, resumed), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
