package domain

import "time"

// ScheduleItem is one timeboxed block in a plan.
//
// StartTime and EndTime are naive wall-clock values (see WallTimeLayout).
// StartTime < EndTime should hold but is deliberately not enforced: the user
// may edit a block into an inverted or zero-length interval, and overlap
// between items is permitted.
type ScheduleItem struct {
	ID          string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Type        BlockType
	Description string
	Notes       string
}

// DurationMinutes returns the block length in whole minutes.
func (s ScheduleItem) DurationMinutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}

// TimeboxPlan is the full AI-generated output: the schedule plus narrative
// text. Feedback is present on refinement responses only.
type TimeboxPlan struct {
	Schedule    []ScheduleItem
	Summary     string
	Feedback    string
	Suggestions string
}

// Preset is a reusable named template for quickly appending a time block.
// Presets are create-only: no delete operation exists.
type Preset struct {
	ID              string
	Name            string
	DurationMinutes int
	Type            BlockType
	DefaultTitle    string
}

// TitleForBlock returns the title a block created from this preset gets.
func (p Preset) TitleForBlock() string {
	if p.DefaultTitle != "" {
		return p.DefaultTitle
	}
	return p.Name
}

// PlanRecord is a persisted plan: the TimeboxPlan together with the setup
// inputs that produced it, so a refinement can re-send the original
// constraints and the app can resume the last session.
type PlanRecord struct {
	ID          string
	WindowStart time.Time
	WindowEnd   time.Time
	Tasks       string
	Preferences string
	Plan        TimeboxPlan
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
