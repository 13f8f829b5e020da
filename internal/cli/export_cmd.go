package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timebox/internal/exporter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format string
	var copyFlag bool

	cmd := &cobra.Command{
		Use:   "export [ID]",
		Short: "Export a plan as shareable text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := resolvePlanRecord(context.Background(), app, args)
			if err != nil {
				return err
			}

			text, err := exporter.Render(format, rec.Plan.Schedule)
			if err != nil {
				return err
			}

			if copyFlag {
				if err := exporter.CopyToClipboard(text); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println("Copied to clipboard.")
				return nil
			}

			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", exporter.FormatQuickEntry, "Export format (quick-entry|prompt)")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy to the clipboard instead of printing")

	return cmd
}
