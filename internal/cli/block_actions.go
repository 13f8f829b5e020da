package cli

import (
	"context"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// scheduleSavedMsg signals that a schedule mutation has been persisted.
type scheduleSavedMsg struct {
	err error
}

// saveScheduleCmd persists an edited schedule on the active plan record.
func saveScheduleCmd(state *SharedState, items []domain.ScheduleItem) tea.Cmd {
	app, rec := state.App, state.Record
	return func() tea.Msg {
		err := app.Plans.UpdateSchedule(context.Background(), rec, items)
		return scheduleSavedMsg{err: err}
	}
}

// blockFormValues holds the string-typed field values for the block edit form.
type blockFormValues struct {
	title       string
	start       string
	end         string
	typeStr     string
	description string
}

// blockForm builds the huh form for editing a block's fields.
func blockForm(vals *blockFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&vals.title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Start (HH:MM or full timestamp)").
				Value(&vals.start).
				Validate(validateWallTime),
			huh.NewInput().
				Title("End (HH:MM or full timestamp)").
				Value(&vals.end).
				Validate(validateWallTime),
			blockTypeSelect("Type", &vals.typeStr),
			huh.NewInput().
				Title("Description").
				Value(&vals.description),
		),
	).WithTheme(timeboxHuhTheme()).WithShowHelp(false)
}

// editBlockWizard pushes a form wizard editing the given block. On completion
// the patched schedule is persisted.
func editBlockWizard(state *SharedState, item domain.ScheduleItem) tea.Cmd {
	vals := &blockFormValues{
		title:       item.Title,
		start:       item.StartTime.Format("2006-01-02T15:04"),
		end:         item.EndTime.Format("2006-01-02T15:04"),
		typeStr:     string(item.Type),
		description: item.Description,
	}

	wv := newWizardView(state, "Edit Block", blockForm(vals), func() tea.Cmd {
		start, err := parseWallInputOn(item.StartTime, vals.start)
		if err != nil {
			return statusCmd("Invalid start time.")
		}
		end, err := parseWallInputOn(item.EndTime, vals.end)
		if err != nil {
			return statusCmd("Invalid end time.")
		}
		blockType := domain.ParseBlockType(vals.typeStr)

		items := schedule.ApplyEdit(state.Record.Plan.Schedule, item.ID, schedule.ItemPatch{
			Title:       &vals.title,
			StartTime:   &start,
			EndTime:     &end,
			Type:        &blockType,
			Description: &vals.description,
		})
		return saveScheduleCmd(state, items)
	})

	return pushView(wv)
}

// editShortHelp is shared by form-driven views.
var editShortHelp = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
