package service

import (
	"context"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/intelligence"
)

// PlanService orchestrates plan generation, refinement, editing, and
// persistence. Every mutation is written through to storage so a later run
// can resume the session.
type PlanService interface {
	// Generate builds a new plan from the setup inputs and persists it.
	Generate(ctx context.Context, req intelligence.PlanRequest) (*domain.PlanRecord, error)

	// Refine sends the record's current schedule plus an instruction to the
	// model and persists the updated plan under the same record id.
	Refine(ctx context.Context, rec *domain.PlanRecord, instruction string) (*domain.PlanRecord, error)

	// UpdateSchedule replaces the record's item list and persists it.
	UpdateSchedule(ctx context.Context, rec *domain.PlanRecord, items []domain.ScheduleItem) error

	// Resume returns the most recently updated plan record.
	Resume(ctx context.Context) (*domain.PlanRecord, error)

	Get(ctx context.Context, id string) (*domain.PlanRecord, error)
	List(ctx context.Context, limit int) ([]*domain.PlanRecord, error)
	Delete(ctx context.Context, id string) error
}

// PresetService manages the preset catalog and applies presets to plans.
type PresetService interface {
	// EnsureDefaults seeds the starter catalog when the table is empty.
	EnsureDefaults(ctx context.Context) error

	List(ctx context.Context) ([]*domain.Preset, error)

	// Create builds a preset from raw form input and persists it. Returns
	// false without error when the name is blank.
	Create(ctx context.Context, name, durationStr, typeStr string) (*domain.Preset, bool, error)

	// Apply appends a block built from the preset to the record's schedule
	// and persists the change.
	Apply(ctx context.Context, rec *domain.PlanRecord, presetID string) error
}
