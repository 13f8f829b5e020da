package schedule

import (
	"testing"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDay_EmptyList(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
	assert.Empty(t, GroupByDay([]domain.ScheduleItem{}))
}

func TestGroupByDay_SingleItem(t *testing.T) {
	items := []domain.ScheduleItem{
		block(t, "a", "A", "2026-01-05T09:00:00", "2026-01-05T10:00:00"),
	}

	buckets := GroupByDay(items)
	require.Len(t, buckets, 1)
	assert.Len(t, buckets[0].Items, 1)
	assert.Equal(t, []int{0}, buckets[0].SortedIndices)
	assert.True(t, domain.SameWallDay(buckets[0].Date, items[0].StartTime))
}

func TestGroupByDay_SplitsAcrossDates(t *testing.T) {
	// Stored out of order on purpose; grouping sorts first.
	items := []domain.ScheduleItem{
		block(t, "c", "Day two", "2026-01-06T09:00:00", "2026-01-06T10:00:00"),
		block(t, "a", "Morning", "2026-01-05T08:00:00", "2026-01-05T09:00:00"),
		block(t, "b", "Evening", "2026-01-05T20:00:00", "2026-01-05T21:00:00"),
	}

	buckets := GroupByDay(items)
	require.Len(t, buckets, 2)

	assert.Equal(t, []string{"a", "b"}, itemIDs(buckets[0].Items))
	assert.Equal(t, []int{0, 1}, buckets[0].SortedIndices)

	assert.Equal(t, []string{"c"}, itemIDs(buckets[1].Items))
	assert.Equal(t, []int{2}, buckets[1].SortedIndices)
}

func itemIDs(items []domain.ScheduleItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
