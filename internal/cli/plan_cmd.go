package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timebox/internal/cli/formatter"
	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/intelligence"
	"github.com/spf13/cobra"
)

// resolvePlanRecord loads the record for an optional id argument, falling
// back to the most recently updated plan. An id may be a unique prefix.
func resolvePlanRecord(ctx context.Context, app *App, args []string) (*domain.PlanRecord, error) {
	if len(args) == 0 {
		return app.Plans.Resume(ctx)
	}
	input := args[0]

	if rec, err := app.Plans.Get(ctx, input); err == nil {
		return rec, nil
	}

	recs, err := app.Plans.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	var matches []*domain.PlanRecord
	for _, rec := range recs {
		if strings.HasPrefix(rec.ID, input) {
			matches = append(matches, rec)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("plan not found: %q", input)
	case 1:
		return app.Plans.Get(ctx, matches[0].ID)
	default:
		return nil, fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage timebox plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanRefineCmd(app),
		newPlanListCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var start, end, tasks, preferences string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new plan from a task dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			windowStart, err := parseWallInput(start)
			if err != nil {
				return fmt.Errorf("invalid start %q: %w", start, err)
			}
			windowEnd, err := parseWallInput(end)
			if err != nil {
				return fmt.Errorf("invalid end %q: %w", end, err)
			}

			rec, err := app.Plans.Generate(context.Background(), intelligence.PlanRequest{
				WindowStart: windowStart,
				WindowEnd:   windowEnd,
				Tasks:       tasks,
				Preferences: preferences,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n%s\n", formatter.ScheduleLines(rec.Plan.Schedule), formatter.PlanSummary(rec.Plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Window start (HH:MM or YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Window end (HH:MM or YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&tasks, "tasks", "", "Task dump, free form")
	cmd.Flags().StringVar(&preferences, "prefs", "", "Scheduling preferences, free form")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("tasks")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a plan (latest when no ID is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := resolvePlanRecord(context.Background(), app, args)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n\n", formatter.Bold(rec.WindowStart.Format("Jan 2 15:04")+" – "+rec.WindowEnd.Format("Jan 2 15:04")), formatter.Dim(rec.ID))
			fmt.Printf("%s\n", formatter.ScheduleLines(rec.Plan.Schedule))
			if summary := formatter.PlanSummary(rec.Plan); summary != "" {
				fmt.Printf("\n%s\n", summary)
			}
			return nil
		},
	}
}

func newPlanRefineCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "refine INSTRUCTION",
		Short: "Ask the AI to rework the schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var idArgs []string
			if id != "" {
				idArgs = []string{id}
			}
			rec, err := resolvePlanRecord(ctx, app, idArgs)
			if err != nil {
				return err
			}

			updated, err := app.Plans.Refine(ctx, rec, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.ScheduleLines(updated.Plan.Schedule))
			if updated.Plan.Feedback != "" {
				fmt.Printf("\n%s\n", updated.Plan.Feedback)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Plan ID (defaults to the latest plan)")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Plans.List(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(recs) == 0 {
				fmt.Println("No plans saved.")
				return nil
			}

			for _, rec := range recs {
				window := rec.WindowStart.Format("Mon Jan 2 15:04") + " – " + rec.WindowEnd.Format("15:04")
				fmt.Printf("%s  %s  %s\n",
					formatter.Dim(rec.ID[:8]),
					formatter.Bold(window),
					formatter.Dim(rec.UpdatedAt.Format("updated 2006-01-02")),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of plans to list")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := resolvePlanRecord(ctx, app, args)
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, rec.ID); err != nil {
				return err
			}
			fmt.Printf("Removed plan %s\n", rec.ID)
			return nil
		},
	}
}
