package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timebox/internal/cli/formatter"
	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// timelineRow is a flattened row of the day-grouped schedule:
// either a day header or a block.
type timelineRow struct {
	isDay     bool
	date      time.Time
	item      domain.ScheduleItem
	sortedIdx int // position in the time-sorted order, for swap and merge
}

// timelineView shows the current plan grouped by day and hosts all
// block editing actions.
type timelineView struct {
	state  *SharedState
	rows   []timelineRow
	cursor int

	// Swap is a two-step action: mark a source block, then pick the target.
	swapFrom int // sorted index of the marked block, -1 when inactive

	// Pending delete confirmation for the block under the cursor.
	confirmDelete bool

	err error
}

func newTimelineView(state *SharedState) *timelineView {
	v := &timelineView{state: state, swapFrom: -1}
	v.rebuild()
	return v
}

func (v *timelineView) ID() ViewID { return ViewTimeline }

func (v *timelineView) Title() string {
	if v.state.HasPlan() {
		return "Timeline"
	}
	return ""
}

func (v *timelineView) ShortHelp() []key.Binding {
	if v.confirmDelete {
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm delete")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("any", "cancel")),
		}
	}
	if v.swapFrom >= 0 {
		return []key.Binding{
			key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "swap with marked")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("w again", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge next")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "swap")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "presets")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refine")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "export")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new plan")),
	}
}

func (v *timelineView) Init() tea.Cmd {
	return nil
}

// rebuild flattens the plan's day buckets into display rows and clamps
// the cursor onto a block row.
func (v *timelineView) rebuild() {
	v.rows = v.rows[:0]
	if !v.state.HasPlan() {
		return
	}
	for _, bucket := range schedule.GroupByDay(v.state.Record.Plan.Schedule) {
		v.rows = append(v.rows, timelineRow{isDay: true, date: bucket.Date})
		for i, item := range bucket.Items {
			v.rows = append(v.rows, timelineRow{item: item, sortedIdx: bucket.SortedIndices[i]})
		}
	}
	v.clampCursor()
}

// clampCursor moves the cursor onto the nearest block row.
func (v *timelineView) clampCursor() {
	if len(v.rows) == 0 {
		v.cursor = 0
		return
	}
	if v.cursor >= len(v.rows) {
		v.cursor = len(v.rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	// Day headers are not selectable; walk down, then up.
	for i := v.cursor; i < len(v.rows); i++ {
		if !v.rows[i].isDay {
			v.cursor = i
			return
		}
	}
	for i := v.cursor; i >= 0; i-- {
		if !v.rows[i].isDay {
			v.cursor = i
			return
		}
	}
}

// currentRow returns the block row under the cursor, or false when the
// schedule is empty.
func (v *timelineView) currentRow() (timelineRow, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) || v.rows[v.cursor].isDay {
		return timelineRow{}, false
	}
	return v.rows[v.cursor], true
}

func (v *timelineView) moveCursor(delta int) {
	for i := v.cursor + delta; i >= 0 && i < len(v.rows); i += delta {
		if !v.rows[i].isDay {
			v.cursor = i
			return
		}
	}
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduleSavedMsg:
		v.err = msg.err
		v.rebuild()
		return v, nil

	case refreshViewMsg:
		v.rebuild()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *timelineView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation intercepts everything.
	if v.confirmDelete {
		v.confirmDelete = false
		if msg.String() == "y" {
			if row, ok := v.currentRow(); ok {
				items := schedule.Delete(v.state.Record.Plan.Schedule, row.item.ID)
				return v, saveScheduleCmd(v.state, items)
			}
		}
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)

	case "e":
		if row, ok := v.currentRow(); ok {
			return v, editBlockWizard(v.state, row.item)
		}

	case "s":
		if row, ok := v.currentRow(); ok {
			items, err := schedule.Split(v.state.Record.Plan.Schedule, row.item.ID)
			if err != nil {
				return v, statusCmd(err.Error())
			}
			return v, saveScheduleCmd(v.state, items)
		}

	case "m":
		if row, ok := v.currentRow(); ok {
			items := schedule.MergeWithNext(v.state.Record.Plan.Schedule, row.sortedIdx)
			if len(items) == len(v.state.Record.Plan.Schedule) {
				return v, statusCmd("Nothing to merge with.")
			}
			return v, saveScheduleCmd(v.state, items)
		}

	case "w":
		row, ok := v.currentRow()
		if !ok {
			break
		}
		switch {
		case v.swapFrom < 0:
			v.swapFrom = row.sortedIdx
		case v.swapFrom == row.sortedIdx:
			v.swapFrom = -1
		default:
			items := schedule.SwapSlots(v.state.Record.Plan.Schedule, v.swapFrom, row.sortedIdx)
			v.swapFrom = -1
			return v, saveScheduleCmd(v.state, items)
		}

	case "x":
		if _, ok := v.currentRow(); ok {
			v.confirmDelete = true
		}

	case "p":
		return v, pushView(newPresetsView(v.state))

	case "r":
		return v, pushView(newRefineView(v.state))

	case "o":
		return v, pushView(newExportView(v.state))

	case "n":
		return v, replaceView(newSetupView(v.state))
	}

	return v, nil
}

func (v *timelineView) View() string {
	if !v.state.HasPlan() {
		return "\n  " + formatter.Dim("No plan loaded. Press n to create one.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n\n")
	}

	if len(v.rows) == 0 {
		b.WriteString("  " + formatter.Dim("Schedule is empty. Press p to add a preset block.") + "\n")
	}

	for i, row := range v.rows {
		if row.isDay {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("  " + formatter.StyleHeader.Render(row.date.Format("Monday, Jan 2")) + "\n")
			continue
		}
		b.WriteString(v.renderBlockRow(row, i == v.cursor))
		b.WriteByte('\n')
	}

	if row, ok := v.currentRow(); ok && v.confirmDelete {
		b.WriteString("\n  " + formatter.StyleRed.Render(fmt.Sprintf("Delete %q? (y/n)", row.item.Title)) + "\n")
	}

	plan := v.state.Record.Plan
	if plan.Summary != "" {
		b.WriteString("\n  " + formatter.Dim(plan.Summary) + "\n")
	}
	if plan.Feedback != "" {
		b.WriteString("  " + formatter.StyleGreen.Render("↳ ") + formatter.Dim(plan.Feedback) + "\n")
	}
	if plan.Suggestions != "" {
		b.WriteString("  " + formatter.Dim("Tip: "+plan.Suggestions) + "\n")
	}

	return b.String()
}

func (v *timelineView) renderBlockRow(row timelineRow, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	marker := ""
	if v.swapFrom == row.sortedIdx {
		marker = " " + formatter.StyleYellow.Render("⇅")
	}

	item := row.item
	line := fmt.Sprintf("  %s%s %s  %s %s%s",
		cursor,
		formatter.BlockIcon(item.Type),
		formatter.Dim(formatter.TimeRange(item)),
		item.Title,
		formatter.Dim("("+formatter.Duration(item.DurationMinutes())+")"),
		marker,
	)
	if isCursor && item.Description != "" {
		line += "\n      " + formatter.Dim(item.Description)
	}
	return line
}
