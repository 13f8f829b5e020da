package schedule

import (
	"testing"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreset_RequiresName(t *testing.T) {
	_, ok := NewPreset("", "30", "FOCUS")
	assert.False(t, ok)

	_, ok = NewPreset("   ", "30", "FOCUS")
	assert.False(t, ok)
}

func TestNewPreset_Defaults(t *testing.T) {
	p, ok := NewPreset("Deep Work", "", "")
	require.True(t, ok)
	assert.Equal(t, DefaultPresetMinutes, p.DurationMinutes)
	assert.Equal(t, domain.BlockFocus, p.Type)
	assert.Equal(t, "Deep Work", p.DefaultTitle)
	assert.NotEmpty(t, p.ID)

	p, ok = NewPreset("Nap", "not-a-number", "BREAK")
	require.True(t, ok)
	assert.Equal(t, DefaultPresetMinutes, p.DurationMinutes)
	assert.Equal(t, domain.BlockBreak, p.Type)

	p, ok = NewPreset("Standup", "-5", "SOCIAL")
	require.True(t, ok)
	assert.Equal(t, DefaultPresetMinutes, p.DurationMinutes)
}

func TestApplyPreset_EmptyScheduleStartsAtWindow(t *testing.T) {
	windowStart := wt(t, "2026-01-05T08:00:00")
	preset := domain.Preset{ID: "p", Name: "Meal", DurationMinutes: 45, Type: domain.BlockRoutine}

	out := ApplyPreset(nil, preset, windowStart)
	require.Len(t, out, 1)
	assert.Equal(t, windowStart, out[0].StartTime)
	assert.Equal(t, wt(t, "2026-01-05T08:45:00"), out[0].EndTime)
	assert.Equal(t, "Meal", out[0].Title)
	assert.Equal(t, "Added from preset: Meal", out[0].Description)
}

func TestApplyPreset_AppendsAfterLatestEndByValue(t *testing.T) {
	// The item with the latest end is stored first; the max is found by
	// value, not by array position.
	items := []domain.ScheduleItem{
		block(t, "b", "Late", "2026-01-05T14:00:00", "2026-01-05T16:00:00"),
		block(t, "a", "Early", "2026-01-05T09:00:00", "2026-01-05T10:00:00"),
	}
	preset := domain.Preset{ID: "p", Name: "Sync", DurationMinutes: 30, Type: domain.BlockSocial, DefaultTitle: "Team Sync"}

	out := ApplyPreset(items, preset, wt(t, "2026-01-05T08:00:00"))
	require.Len(t, out, 3)

	added := out[2]
	assert.Equal(t, wt(t, "2026-01-05T16:00:00"), added.StartTime)
	assert.Equal(t, wt(t, "2026-01-05T16:30:00"), added.EndTime)
	assert.Equal(t, "Team Sync", added.Title)
	assert.Equal(t, domain.BlockSocial, added.Type)
}

func TestDefaultPresets_SeedCatalog(t *testing.T) {
	presets := DefaultPresets()
	require.Len(t, presets, 4)

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
		assert.NotEmpty(t, p.ID)
		assert.Greater(t, p.DurationMinutes, 0)
	}
	assert.Equal(t, []string{"Deep Work Session", "Quick Break", "Meeting / Sync", "Meal"}, names)
}
