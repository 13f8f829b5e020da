package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/repository"
	"github.com/alexanderramin/timebox/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresetService(t *testing.T) (PresetService, PlanService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := NewPlanService(
		repository.NewSQLitePlanRepo(database),
		testutil.NewTestUoW(database),
		&stubScheduler{plan: stubPlan(t)},
	)
	presets := NewPresetService(repository.NewSQLitePresetRepo(database), plans)
	return presets, plans
}

func TestPresetService_EnsureDefaults_SeedsOnce(t *testing.T) {
	presets, _ := newPresetService(t)
	ctx := context.Background()

	require.NoError(t, presets.EnsureDefaults(ctx))
	first, err := presets.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, "Deep Work Session", first[0].Name)

	// A second call must not duplicate the catalog.
	require.NoError(t, presets.EnsureDefaults(ctx))
	second, err := presets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 4)
}

func TestPresetService_Create(t *testing.T) {
	presets, _ := newPresetService(t)
	ctx := context.Background()

	preset, ok, err := presets.Create(ctx, "Standup", "15", "SOCIAL")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 15, preset.DurationMinutes)
	assert.Equal(t, domain.BlockSocial, preset.Type)

	listed, err := presets.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Standup", listed[0].Name)
}

func TestPresetService_Create_BlankNameIsNoOp(t *testing.T) {
	presets, _ := newPresetService(t)
	ctx := context.Background()

	_, ok, err := presets.Create(ctx, "  ", "30", "FOCUS")
	require.NoError(t, err)
	assert.False(t, ok)

	listed, err := presets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestPresetService_Apply_AppendsAndPersists(t *testing.T) {
	presets, plans := newPresetService(t)
	ctx := context.Background()

	rec, err := plans.Generate(ctx, testPlanRequest(t))
	require.NoError(t, err)
	require.Len(t, rec.Plan.Schedule, 1)

	preset, ok, err := presets.Create(ctx, "Quick Break", "15", "BREAK")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, presets.Apply(ctx, rec, preset.ID))
	require.Len(t, rec.Plan.Schedule, 2)

	added := rec.Plan.Schedule[1]
	assert.Equal(t, "Quick Break", added.Title)
	assert.Equal(t, domain.BlockBreak, added.Type)
	// Appended after the latest end time of the existing schedule.
	assert.Equal(t, wallTime(t, "2026-01-05T10:00:00"), added.StartTime)
	assert.Equal(t, wallTime(t, "2026-01-05T10:15:00"), added.EndTime)

	stored, err := plans.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Plan.Schedule, 2)
}

func TestPresetService_Apply_UnknownPreset(t *testing.T) {
	presets, plans := newPresetService(t)
	ctx := context.Background()

	rec, err := plans.Generate(ctx, testPlanRequest(t))
	require.NoError(t, err)

	err = presets.Apply(ctx, rec, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Len(t, rec.Plan.Schedule, 1)
}
