// Package schedule implements the client-local editing model for a timebox
// plan: reorder, split, merge, edit, delete, day grouping, and preset
// application. All operations are pure functions over a slice of items and
// return a fresh slice, so the application shell can replace its store
// through a single update channel without stale references.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/google/uuid"
)

// MinSplitMinutes is the smallest block that can still be split in half.
const MinSplitMinutes = 10

// ErrBlockTooSmall is returned by Split for blocks under MinSplitMinutes.
var ErrBlockTooSmall = fmt.Errorf("block too small to split (minimum %d minutes)", MinSplitMinutes)

// SortByStart returns a copy of items ordered by StartTime ascending.
// Storage order is never guaranteed to be time-sorted; every view that needs
// chronology sorts fresh.
func SortByStart(items []domain.ScheduleItem) []domain.ScheduleItem {
	sorted := make([]domain.ScheduleItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}

// SwapSlots exchanges the time ranges of the items at positions src and dst
// of the time-sorted view. Ids, titles, and types stay with their items: the
// two blocks trade slots, nothing shifts. src == dst or an out-of-range index
// is a no-op returning the input unchanged.
func SwapSlots(items []domain.ScheduleItem, src, dst int) []domain.ScheduleItem {
	if src == dst {
		return items
	}
	sorted := SortByStart(items)
	if src < 0 || src >= len(sorted) || dst < 0 || dst >= len(sorted) {
		return items
	}

	srcID, dstID := sorted[src].ID, sorted[dst].ID
	srcStart, srcEnd := sorted[src].StartTime, sorted[src].EndTime
	dstStart, dstEnd := sorted[dst].StartTime, sorted[dst].EndTime

	out := make([]domain.ScheduleItem, len(items))
	copy(out, items)
	for i := range out {
		switch out[i].ID {
		case srcID:
			out[i].StartTime, out[i].EndTime = dstStart, dstEnd
		case dstID:
			out[i].StartTime, out[i].EndTime = srcStart, srcEnd
		}
	}
	return out
}

// Split bisects the item with the given id at the floor-division midpoint of
// its duration. The original keeps [start, midpoint); a new item with a fresh
// id covers [midpoint, end) under the same title suffixed " (Part 2)", and is
// appended to the store; render-time sorting places it next to its sibling.
// Blocks under MinSplitMinutes fail with ErrBlockTooSmall and no mutation.
func Split(items []domain.ScheduleItem, id string) ([]domain.ScheduleItem, error) {
	idx := indexByID(items, id)
	if idx < 0 {
		return items, fmt.Errorf("schedule item %q not found", id)
	}

	item := items[idx]
	duration := item.DurationMinutes()
	if duration < MinSplitMinutes {
		return items, ErrBlockTooSmall
	}

	midpoint := item.StartTime.Add(time.Duration(duration/2) * time.Minute)

	second := item
	second.ID = uuid.NewString()
	second.StartTime = midpoint
	second.Title = item.Title + " (Part 2)"

	out := make([]domain.ScheduleItem, len(items), len(items)+1)
	copy(out, items)
	out[idx].EndTime = midpoint
	out = append(out, second)
	return out, nil
}

// MergeWithNext coalesces the item at position i of the time-sorted view with
// its chronological successor. The first item absorbs the second's EndTime and
// keeps its own id; titles join with " & "; non-empty descriptions concatenate
// with ". " between them; the second item is removed. Merging the last item
// (no successor) is a no-op returning the input unchanged.
func MergeWithNext(items []domain.ScheduleItem, i int) []domain.ScheduleItem {
	sorted := SortByStart(items)
	if i < 0 || i+1 >= len(sorted) {
		return items
	}

	first, second := sorted[i], sorted[i+1]

	merged := first
	merged.EndTime = second.EndTime
	merged.Title = first.Title + " & " + second.Title
	merged.Description = joinDescriptions(first.Description, second.Description)

	out := make([]domain.ScheduleItem, 0, len(items)-1)
	for _, item := range items {
		switch item.ID {
		case second.ID:
			// dropped
		case first.ID:
			out = append(out, merged)
		default:
			out = append(out, item)
		}
	}
	return out
}

// ItemPatch carries the field edits for ApplyEdit. Nil pointers leave the
// corresponding field untouched.
type ItemPatch struct {
	Title       *string
	StartTime   *time.Time
	EndTime     *time.Time
	Type        *domain.BlockType
	Description *string
}

// ApplyEdit replaces the patched fields on the item with the given id.
// StartTime < EndTime is deliberately not validated: an inverted or
// zero-length interval is accepted state.
func ApplyEdit(items []domain.ScheduleItem, id string, patch ItemPatch) []domain.ScheduleItem {
	out := make([]domain.ScheduleItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Title != nil {
			out[i].Title = *patch.Title
		}
		if patch.StartTime != nil {
			out[i].StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			out[i].EndTime = *patch.EndTime
		}
		if patch.Type != nil {
			out[i].Type = *patch.Type
		}
		if patch.Description != nil {
			out[i].Description = *patch.Description
		}
		break
	}
	return out
}

// Delete removes the item with the given id. The caller is responsible for
// user confirmation; the operation itself is unconditional and irreversible.
func Delete(items []domain.ScheduleItem, id string) []domain.ScheduleItem {
	out := make([]domain.ScheduleItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

func indexByID(items []domain.ScheduleItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func joinDescriptions(first, second string) string {
	if first == "" {
		return second
	}
	if second == "" {
		return first
	}
	return first + ". " + second
}
