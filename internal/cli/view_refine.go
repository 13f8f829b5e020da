package cli

import (
	"context"

	"github.com/alexanderramin/timebox/internal/cli/formatter"
	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// refineDoneMsg signals that an AI refinement round has finished.
type refineDoneMsg struct {
	rec *domain.PlanRecord
	err error
}

// refineView collects a free-form refinement instruction and sends the
// current plan back to the AI for another pass.
type refineView struct {
	state    *SharedState
	input    textinput.Model
	refining bool
	err      error
}

func newRefineView(state *SharedState) *refineView {
	ti := textinput.New()
	ti.Placeholder = "move the gym session to the evening"
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	return &refineView{state: state, input: ti}
}

func (v *refineView) ID() ViewID    { return ViewRefine }
func (v *refineView) Title() string { return "Refine" }

func (v *refineView) ShortHelp() []key.Binding {
	return editShortHelp
}

func (v *refineView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *refineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refineDoneMsg:
		v.refining = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.state.Record = msg.rec
		cmds := []tea.Cmd{popView(), refreshView()}
		if msg.rec.Plan.Feedback != "" {
			cmds = append(cmds, statusCmd(msg.rec.Plan.Feedback))
		}
		return v, tea.Batch(cmds...)

	case tea.KeyMsg:
		if v.refining {
			return v, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyEnter:
			instruction := v.input.Value()
			if instruction == "" {
				return v, nil
			}
			v.refining = true
			v.err = nil
			return v, v.refine(instruction)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *refineView) refine(instruction string) tea.Cmd {
	app, rec := v.state.App, v.state.Record
	return func() tea.Msg {
		updated, err := app.Plans.Refine(context.Background(), rec, instruction)
		return refineDoneMsg{rec: updated, err: err}
	}
}

func (v *refineView) View() string {
	if v.refining {
		return "\n  " + formatter.Dim("Reworking the schedule...")
	}

	out := "\n  " + formatter.Bold("How should the schedule change?") + "\n\n  " + v.input.View()
	if v.err != nil {
		out += "\n\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return out
}
