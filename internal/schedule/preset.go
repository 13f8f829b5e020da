package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/google/uuid"
)

// DefaultPresetMinutes is used when a preset is created without a usable
// duration.
const DefaultPresetMinutes = 60

// NewPreset builds a preset from raw form input. An empty name returns false
// and no preset (the create is a no-op). A missing or non-numeric duration
// falls back to DefaultPresetMinutes; an unrecognized type falls back to
// FOCUS.
func NewPreset(name, durationStr, typeStr string) (domain.Preset, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Preset{}, false
	}

	minutes := DefaultPresetMinutes
	if n, err := strconv.Atoi(strings.TrimSpace(durationStr)); err == nil && n > 0 {
		minutes = n
	}

	return domain.Preset{
		ID:              uuid.NewString(),
		Name:            name,
		DurationMinutes: minutes,
		Type:            domain.ParseBlockType(typeStr),
		DefaultTitle:    name,
	}, true
}

// ApplyPreset appends a new block built from the preset to the chronological
// end of the schedule: after the latest EndTime across all items (found by
// value, regardless of storage order), or at windowStart when the schedule is
// empty.
func ApplyPreset(items []domain.ScheduleItem, p domain.Preset, windowStart time.Time) []domain.ScheduleItem {
	start := windowStart
	if len(items) > 0 {
		start = latestEnd(items)
	}

	block := domain.ScheduleItem{
		ID:          uuid.NewString(),
		Title:       p.TitleForBlock(),
		StartTime:   start,
		EndTime:     start.Add(time.Duration(p.DurationMinutes) * time.Minute),
		Type:        p.Type,
		Description: "Added from preset: " + p.Name,
	}

	out := make([]domain.ScheduleItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, block)
}

func latestEnd(items []domain.ScheduleItem) time.Time {
	latest := items[0].EndTime
	for _, item := range items[1:] {
		if item.EndTime.After(latest) {
			latest = item.EndTime
		}
	}
	return latest
}

// DefaultPresets is the catalog seeded on first run.
func DefaultPresets() []domain.Preset {
	return []domain.Preset{
		{ID: uuid.NewString(), Name: "Deep Work Session", DurationMinutes: 90, Type: domain.BlockFocus},
		{ID: uuid.NewString(), Name: "Quick Break", DurationMinutes: 15, Type: domain.BlockBreak},
		{ID: uuid.NewString(), Name: "Meeting / Sync", DurationMinutes: 30, Type: domain.BlockSocial},
		{ID: uuid.NewString(), Name: "Meal", DurationMinutes: 45, Type: domain.BlockRoutine},
	}
}
