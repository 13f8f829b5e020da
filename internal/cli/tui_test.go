package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnSetupWithoutPlan(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, nil)

	assert.Equal(t, ViewSetup, d.ActiveViewID())
	assert.Contains(t, d.View(), "Window Start")
}

func TestTUI_ResumesTimelineWithPlan(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "Monday, Jan 5")
	assert.Contains(t, view, "Write report")
	assert.Contains(t, view, "Email triage")
	assert.Contains(t, view, "A focused morning.")
}

func TestTUI_QuitWithQ(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, seedPlan(t, app))

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, nil)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_GeneratedPlanReplacesSetup(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, nil)
	require.Equal(t, ViewSetup, d.ActiveViewID())

	rec := seedPlan(t, app)
	d.Send(planReadyMsg{rec: rec})

	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	assert.Same(t, rec, d.State().Record)
	assert.Contains(t, d.View(), "Write report")
}

func TestTUI_SplitPersists(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	// Cursor starts on the first block.
	d.PressKey('s')

	assert.Contains(t, d.View(), "Write report (Part 2)")
	assert.Len(t, rec.Plan.Schedule, 4)

	stored, err := app.Plans.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Plan.Schedule, 4)
}

func TestTUI_MergeCombinesAdjacentBlocks(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	d.PressKey('m')

	view := d.View()
	assert.Contains(t, view, "Write report & Email triage")
	assert.Len(t, rec.Plan.Schedule, 2)
}

func TestTUI_DeleteRequiresConfirmation(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	d.PressKey('x')
	assert.Contains(t, d.View(), "Delete \"Write report\"?")

	// Any key but y cancels.
	d.PressKey('n')
	assert.Len(t, rec.Plan.Schedule, 3)

	d.PressKey('x')
	d.PressKey('y')
	assert.Len(t, rec.Plan.Schedule, 2)
	assert.NotContains(t, d.View(), "Write report")
}

func TestTUI_SwapExchangesTimeSlots(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	// Mark the first block, move to the last, swap.
	d.PressKey('w')
	d.PressDown()
	d.PressDown()
	d.PressKey('w')

	byTitle := make(map[string]domain.ScheduleItem)
	for _, item := range rec.Plan.Schedule {
		byTitle[item.Title] = item
	}
	assert.Equal(t, "10:30", byTitle["Write report"].StartTime.Format("15:04"))
	assert.Equal(t, "11:00", byTitle["Write report"].EndTime.Format("15:04"))
	assert.Equal(t, "09:00", byTitle["Coffee break"].StartTime.Format("15:04"))
	assert.Equal(t, "10:00", byTitle["Coffee break"].EndTime.Format("15:04"))
}

func TestTUI_SwapSameBlockCancelsMark(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	d.PressKey('w')
	d.PressKey('w')

	// Nothing changed.
	assert.Equal(t, "09:00", rec.Plan.Schedule[0].StartTime.Format("15:04"))
}

func TestTUI_PresetsApplyAppendsBlock(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	d.PressKey('p')
	require.Equal(t, ViewPresets, d.ActiveViewID())
	assert.Contains(t, d.View(), "Deep Work Session")

	d.PressEnter()

	// Applying pops back to the timeline with the block appended after
	// the latest end time.
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	require.Len(t, rec.Plan.Schedule, 4)
	added := rec.Plan.Schedule[3]
	assert.Equal(t, "Deep Work Session", added.Title)
	assert.Equal(t, "11:00", added.StartTime.Format("15:04"))
	assert.Equal(t, "12:30", added.EndTime.Format("15:04"))
}

func TestTUI_RefineUpdatesPlan(t *testing.T) {
	app, scheduler := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	refined := testPlan(t)
	refined.Summary = "Tighter mornings."
	refined.Feedback = "Front-loaded the deep work."
	scheduler.plan = refined

	d.PressKey('r')
	require.Equal(t, ViewRefine, d.ActiveViewID())

	d.Type("more focus before lunch")
	d.PressEnter()

	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	assert.Equal(t, "Tighter mornings.", d.State().Record.Plan.Summary)
	assert.Contains(t, d.View(), "Tighter mornings.")
}

func TestTUI_RefineEscReturnsToTimeline(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, seedPlan(t, app))

	d.PressKey('r')
	require.Equal(t, ViewRefine, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
}

func TestTUI_ExportPreviewAndFormatToggle(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, seedPlan(t, app))

	d.PressKey('o')
	require.Equal(t, ViewExport, d.ActiveViewID())

	view := d.View()
	assert.Contains(t, view, "Write report at 09:00 on 01/05/2026 to 10:00")

	d.PressTab()
	assert.Contains(t, d.View(), "Google Calendar")

	d.PressTab()
	assert.Contains(t, d.View(), "Write report at 09:00 on 01/05/2026 to 10:00")
}

func TestTUI_EditOpensFormWizard(t *testing.T) {
	app, _ := testApp(t)
	rec := seedPlan(t, app)
	d := NewTestDriver(t, app, rec)

	d.PressKey('e')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.View(), "Title")

	// Esc cancels the wizard without touching the schedule.
	d.PressEsc()
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	assert.Equal(t, "Cancelled.", d.State().Status)
	assert.Len(t, rec.Plan.Schedule, 3)
}

func TestTUI_EscPopsToTimeline(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, seedPlan(t, app))

	d.PressKey('p')
	require.Equal(t, []ViewID{ViewTimeline, ViewPresets}, d.ViewStackIDs())

	d.PressEsc()
	assert.Equal(t, []ViewID{ViewTimeline}, d.ViewStackIDs())
}

func TestTUI_NewPlanReplacesTimelineWithSetup(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app, seedPlan(t, app))

	d.PressKey('n')
	assert.Equal(t, ViewSetup, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	// Esc returns to the existing plan.
	d.PressEsc()
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
}
