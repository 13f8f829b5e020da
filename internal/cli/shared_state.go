package cli

import "github.com/alexanderramin/timebox/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// The plan currently being viewed and edited. Nil until a plan
	// is generated or resumed.
	Record *domain.PlanRecord

	// Transient status bar message, cleared on the next key press.
	Status string

	// Terminal dimensions
	Width  int
	Height int
}

// HasPlan reports whether a plan is loaded.
func (s *SharedState) HasPlan() bool {
	return s.Record != nil
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
