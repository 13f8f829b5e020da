package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timebox/internal/cli/formatter"
	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// presetsLoadedMsg signals that the preset catalog has been loaded.
type presetsLoadedMsg struct {
	presets []*domain.Preset
	err     error
}

// presetAppliedMsg signals that a preset block was appended to the plan.
type presetAppliedMsg struct {
	name string
	err  error
}

// presetsView lists the preset catalog and applies a preset to the
// active plan.
type presetsView struct {
	state   *SharedState
	presets []*domain.Preset
	cursor  int
	loading bool
	err     error
}

func newPresetsView(state *SharedState) *presetsView {
	return &presetsView{state: state, loading: true}
}

func (v *presetsView) ID() ViewID    { return ViewPresets }
func (v *presetsView) Title() string { return "Presets" }

func (v *presetsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to plan")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new preset")),
	}
}

func (v *presetsView) Init() tea.Cmd {
	return v.loadPresets()
}

func (v *presetsView) loadPresets() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		presets, err := app.Presets.List(context.Background())
		return presetsLoadedMsg{presets: presets, err: err}
	}
}

func (v *presetsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case presetsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.presets = msg.presets
		if v.cursor >= len(v.presets) {
			v.cursor = len(v.presets) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case presetAppliedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, tea.Batch(popView(), refreshView(), statusCmd(fmt.Sprintf("Added %q to the plan.", msg.name)))

	case refreshViewMsg:
		return v, v.loadPresets()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.presets)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.presets) {
				return v, v.applyPreset(v.presets[v.cursor])
			}
		case "a":
			return v, addPresetWizard(v.state)
		}
	}
	return v, nil
}

func (v *presetsView) applyPreset(preset *domain.Preset) tea.Cmd {
	app, rec := v.state.App, v.state.Record
	return func() tea.Msg {
		err := app.Presets.Apply(context.Background(), rec, preset.ID)
		return presetAppliedMsg{name: preset.Name, err: err}
	}
}

func (v *presetsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading presets...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.presets) == 0 {
		return "\n  " + formatter.Dim("No presets. Press a to create one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range v.presets {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		fmt.Fprintf(&b, "  %s%s %s %s\n",
			cursor,
			formatter.BlockIcon(p.Type),
			p.Name,
			formatter.Dim("("+formatter.Duration(p.DurationMinutes)+")"),
		)
	}
	return b.String()
}

// addPresetWizard pushes a form wizard creating a new preset.
func addPresetWizard(state *SharedState) tea.Cmd {
	var name, duration, typeStr string
	typeStr = string(domain.BlockFocus)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("60").
				Value(&duration).
				Validate(validatePositiveInt),
			blockTypeSelect("Type", &typeStr),
		),
	).WithTheme(timeboxHuhTheme()).WithShowHelp(false)

	wv := newWizardView(state, "New Preset", form, func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			ctx := context.Background()
			_, ok, err := app.Presets.Create(ctx, name, duration, typeStr)
			if err != nil {
				return statusMsg{text: "Error: " + err.Error()}
			}
			if !ok {
				return statusMsg{text: "Preset name is required."}
			}
			// Reload the catalog so the new preset shows up immediately.
			presets, err := app.Presets.List(ctx)
			return presetsLoadedMsg{presets: presets, err: err}
		}
	})

	return pushView(wv)
}
