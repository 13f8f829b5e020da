package schedule

import (
	"time"

	"github.com/alexanderramin/timebox/internal/domain"
)

// DayBucket is a contiguous run of time-sorted items sharing one calendar
// date. SortedIndices holds each item's position in the full time-sorted
// order so editing actions rendered per-bucket can be routed back to
// operations that take sorted indices (swap, merge).
type DayBucket struct {
	Date          time.Time
	Items         []domain.ScheduleItem
	SortedIndices []int
}

// GroupByDay partitions items into day buckets for display: sort by StartTime
// ascending, walk once, and start a new bucket whenever the calendar date
// changes. In a fully sorted sequence this yields one bucket per distinct
// date in chronological order. The result is derived fresh on every call and
// never cached; the flat item list stays the single source of truth.
func GroupByDay(items []domain.ScheduleItem) []DayBucket {
	sorted := SortByStart(items)
	if len(sorted) == 0 {
		return nil
	}

	var buckets []DayBucket
	current := DayBucket{Date: sorted[0].StartTime}

	for i, item := range sorted {
		if !domain.SameWallDay(item.StartTime, current.Date) {
			buckets = append(buckets, current)
			current = DayBucket{Date: item.StartTime}
		}
		current.Items = append(current.Items, item)
		current.SortedIndices = append(current.SortedIndices, i)
	}
	return append(buckets, current)
}
