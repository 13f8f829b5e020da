package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/intelligence"
	"github.com/alexanderramin/timebox/internal/repository"
	"github.com/alexanderramin/timebox/internal/service"
	"github.com/alexanderramin/timebox/internal/teatest"
	"github.com/alexanderramin/timebox/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testScheduler returns canned plans so TUI tests never touch the network.
type testScheduler struct {
	plan *domain.TimeboxPlan
	err  error
}

func (s *testScheduler) Generate(_ context.Context, _ intelligence.PlanRequest) (*domain.TimeboxPlan, error) {
	if s.err != nil {
		return nil, s.err
	}
	plan := *s.plan
	return &plan, nil
}

func (s *testScheduler) Refine(_ context.Context, _ intelligence.PlanRequest, _ *domain.TimeboxPlan, _ string) (*domain.TimeboxPlan, error) {
	if s.err != nil {
		return nil, s.err
	}
	plan := *s.plan
	return &plan, nil
}

func (s *testScheduler) Available(_ context.Context) bool { return true }

func tuiWallTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := domain.ParseWallTime(s)
	require.NoError(t, err)
	return ts
}

// testPlan is a three-block single-day schedule.
func testPlan(t *testing.T) *domain.TimeboxPlan {
	t.Helper()
	return &domain.TimeboxPlan{
		Schedule: []domain.ScheduleItem{
			{
				ID:        "blk-1",
				Title:     "Write report",
				StartTime: tuiWallTime(t, "2026-01-05T09:00:00"),
				EndTime:   tuiWallTime(t, "2026-01-05T10:00:00"),
				Type:      domain.BlockFocus,
			},
			{
				ID:        "blk-2",
				Title:     "Email triage",
				StartTime: tuiWallTime(t, "2026-01-05T10:00:00"),
				EndTime:   tuiWallTime(t, "2026-01-05T10:30:00"),
				Type:      domain.BlockAdmin,
			},
			{
				ID:        "blk-3",
				Title:     "Coffee break",
				StartTime: tuiWallTime(t, "2026-01-05T10:30:00"),
				EndTime:   tuiWallTime(t, "2026-01-05T11:00:00"),
				Type:      domain.BlockBreak,
			},
		},
		Summary:     "A focused morning.",
		Suggestions: "Leave the afternoon flexible.",
	}
}

// testApp wires an App over an in-memory database and a canned scheduler.
func testApp(t *testing.T) (*App, *testScheduler) {
	t.Helper()
	database := testutil.NewTestDB(t)
	scheduler := &testScheduler{plan: testPlan(t)}

	plans := service.NewPlanService(
		repository.NewSQLitePlanRepo(database),
		testutil.NewTestUoW(database),
		scheduler,
	)
	presets := service.NewPresetService(repository.NewSQLitePresetRepo(database), plans)
	require.NoError(t, presets.EnsureDefaults(context.Background()))

	return &App{Plans: plans, Presets: presets}, scheduler
}

// seedPlan generates and persists a plan through the service stack.
func seedPlan(t *testing.T, app *App) *domain.PlanRecord {
	t.Helper()
	rec, err := app.Plans.Generate(context.Background(), intelligence.PlanRequest{
		WindowStart: tuiWallTime(t, "2026-01-05T08:00:00"),
		WindowEnd:   tuiWallTime(t, "2026-01-05T18:00:00"),
		Tasks:       "report, email, coffee",
		Preferences: "mornings",
	})
	require.NoError(t, err)
	return rec
}

// TestDriver wraps teatest.Driver with app-specific inspection methods.
// It provides access to appModel internals (view stack, shared state)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App, optionally resuming
// an existing plan record. It sets terminal size and drains Init().
func NewTestDriver(t *testing.T, app *App, resumed *domain.PlanRecord) *TestDriver {
	t.Helper()

	m := newAppModel(app, resumed)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
