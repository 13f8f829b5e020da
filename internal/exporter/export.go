// Package exporter renders a schedule into plain-text formats meant for
// pasting into external calendar tools. Nothing here touches the filesystem;
// output goes to the terminal or the clipboard.
package exporter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/atotto/clipboard"
)

const (
	clockLayout = "15:04"
	dateLayout  = "01/02/2006"
)

// Format names accepted by the export command.
const (
	FormatQuickEntry = "quick-entry"
	FormatPrompt     = "prompt"
)

// QuickEntryList renders one line per item in the store's existing order,
// shaped for calendar quick-entry boxes that parse natural language:
//
//	Write report at 09:00 on 01/05/2026 to 10:00
func QuickEntryList(items []domain.ScheduleItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%s at %s on %s to %s",
			item.Title,
			item.StartTime.Format(clockLayout),
			item.StartTime.Format(dateLayout),
			item.EndTime.Format(clockLayout),
		)
	}
	return strings.Join(lines, "\n")
}

// CalendarPrompt renders an instruction block followed by one bullet per
// item, meant to be pasted into an assistant that can emit calendar links.
func CalendarPrompt(items []domain.ScheduleItem) string {
	var b strings.Builder
	b.WriteString("Please create Google Calendar event links for the following schedule.\n\nEvents:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "\n* %s, %s, %s on to %s",
			item.Title,
			item.StartTime.Format(dateLayout),
			item.StartTime.Format(clockLayout),
			item.EndTime.Format(clockLayout),
		)
	}
	return b.String()
}

// Render dispatches on the format name.
func Render(format string, items []domain.ScheduleItem) (string, error) {
	switch format {
	case FormatQuickEntry:
		return QuickEntryList(items), nil
	case FormatPrompt:
		return CalendarPrompt(items), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want %s or %s)", format, FormatQuickEntry, FormatPrompt)
	}
}

// CopyToClipboard places the rendered text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
