package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timebox/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage block presets",
	}

	cmd.AddCommand(
		newPresetListCmd(app),
		newPresetAddCmd(app),
		newPresetApplyCmd(app),
	)

	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := app.Presets.List(context.Background())
			if err != nil {
				return err
			}

			if len(presets) == 0 {
				fmt.Println("No presets found.")
				return nil
			}

			for _, p := range presets {
				fmt.Printf("%s  %s %s %s\n",
					formatter.Dim(p.ID[:8]),
					formatter.BlockIcon(p.Type),
					formatter.Bold(p.Name),
					formatter.Dim("("+formatter.Duration(p.DurationMinutes)+", "+string(p.Type)+")"),
				)
			}
			return nil
		},
	}
}

func newPresetAddCmd(app *App) *cobra.Command {
	var name, duration, typeStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, ok, err := app.Presets.Create(context.Background(), name, duration, typeStr)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("preset name is required")
			}
			fmt.Printf("Created preset %s (%s, %s)\n", preset.Name, formatter.Duration(preset.DurationMinutes), preset.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Preset name")
	cmd.Flags().StringVar(&duration, "duration", "60", "Block duration in minutes")
	cmd.Flags().StringVar(&typeStr, "type", "FOCUS", "Block type (FOCUS|BREAK|ROUTINE|SOCIAL|ADMIN)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPresetApplyCmd(app *App) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "apply PRESET_ID",
		Short: "Append a preset block to a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var idArgs []string
			if planID != "" {
				idArgs = []string{planID}
			}
			rec, err := resolvePlanRecord(ctx, app, idArgs)
			if err != nil {
				return err
			}

			if err := app.Presets.Apply(ctx, rec, args[0]); err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.ScheduleLines(rec.Plan.Schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID (defaults to the latest plan)")

	return cmd
}
