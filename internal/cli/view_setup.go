package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/timebox/internal/cli/formatter"
	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/intelligence"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// planReadyMsg signals that plan generation has finished.
type planReadyMsg struct {
	rec *domain.PlanRecord
	err error
}

// setupView collects the planning window, task dump, and preferences,
// then hands them to the AI for scheduling.
type setupView struct {
	state *SharedState
	form  *huh.Form

	startStr    string
	endStr      string
	tasks       string
	preferences string

	generating bool
	err        error
}

func newSetupView(state *SharedState) *setupView {
	v := &setupView{state: state}

	// Default window: the next full hour, eight hours long.
	start := time.Now().Truncate(time.Hour).Add(time.Hour)
	v.startStr = start.Format("2006-01-02T15:04")
	v.endStr = start.Add(8 * time.Hour).Format("2006-01-02T15:04")

	v.form = v.buildForm()
	return v
}

func (v *setupView) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Window Start").
				Placeholder("2026-01-05T08:00").
				Value(&v.startStr).
				Validate(validateWallTime),
			huh.NewInput().
				Title("Window End").
				Placeholder("2026-01-05T18:00").
				Value(&v.endStr).
				Validate(validateWallTime),
			huh.NewText().
				Title("Tasks").
				Description("Everything on your plate, in any form. One per line works well.").
				Value(&v.tasks).
				Validate(validateRequired),
			huh.NewText().
				Title("Preferences").
				Description("Optional: energy patterns, fixed appointments, break habits.").
				Value(&v.preferences),
		),
	).WithTheme(timeboxHuhTheme()).WithShowHelp(false)
}

func (v *setupView) ID() ViewID    { return ViewSetup }
func (v *setupView) Title() string { return "New Plan" }

func (v *setupView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *setupView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *setupView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		v.generating = false
		if msg.err != nil {
			v.err = msg.err
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		v.state.Record = msg.rec
		return v, replaceView(newTimelineView(v.state))

	case tea.KeyMsg:
		if v.generating {
			return v, nil
		}
		// Escape returns to the current plan when one exists.
		if msg.Type == tea.KeyEsc && v.state.HasPlan() {
			return v, replaceView(newTimelineView(v.state))
		}
	}

	if v.generating {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.generating = true
		v.err = nil
		return v, tea.Batch(cmd, v.generate())
	}

	return v, cmd
}

func (v *setupView) generate() tea.Cmd {
	app := v.state.App
	startStr, endStr := v.startStr, v.endStr
	tasks, preferences := v.tasks, v.preferences
	return func() tea.Msg {
		start, err := parseWallInput(startStr)
		if err != nil {
			return planReadyMsg{err: err}
		}
		end, err := parseWallInput(endStr)
		if err != nil {
			return planReadyMsg{err: err}
		}

		rec, err := app.Plans.Generate(context.Background(), intelligence.PlanRequest{
			WindowStart: start,
			WindowEnd:   end,
			Tasks:       tasks,
			Preferences: preferences,
		})
		return planReadyMsg{rec: rec, err: err}
	}
}

func (v *setupView) View() string {
	if v.generating {
		return "\n  " + formatter.Dim("Thinking through your schedule...")
	}

	out := v.form.View()
	if v.err != nil {
		out = "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n" + out
	}
	return out
}
