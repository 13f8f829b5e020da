package cli

import (
	"github.com/alexanderramin/timebox/internal/cli/formatter"
	"github.com/alexanderramin/timebox/internal/exporter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// exportView previews the plan in an export format and copies it to the
// clipboard.
type exportView struct {
	state  *SharedState
	format string
	err    error
}

func newExportView(state *SharedState) *exportView {
	return &exportView{state: state, format: exporter.FormatQuickEntry}
}

func (v *exportView) ID() ViewID    { return ViewExport }
func (v *exportView) Title() string { return "Export" }

func (v *exportView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch format")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy to clipboard")),
	}
}

func (v *exportView) Init() tea.Cmd {
	return nil
}

func (v *exportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			if v.format == exporter.FormatQuickEntry {
				v.format = exporter.FormatPrompt
			} else {
				v.format = exporter.FormatQuickEntry
			}
			v.err = nil
		case "c":
			text, err := exporter.Render(v.format, v.state.Record.Plan.Schedule)
			if err == nil {
				err = exporter.CopyToClipboard(text)
			}
			if err != nil {
				v.err = err
				return v, nil
			}
			return v, statusCmd("Copied to clipboard.")
		}
	}
	return v, nil
}

func (v *exportView) View() string {
	label := "Quick Entry"
	if v.format == exporter.FormatPrompt {
		label = "Calendar Prompt"
	}

	text, err := exporter.Render(v.format, v.state.Record.Plan.Schedule)
	if err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+err.Error())
	}

	out := "\n  " + formatter.Header(label) + "\n\n" + text
	if v.err != nil {
		out += "\n\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return out
}
