package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/repository"
	"github.com/alexanderramin/timebox/internal/schedule"
)

type presetService struct {
	presets repository.PresetRepo
	plans   PlanService
}

// NewPresetService creates a PresetService.
func NewPresetService(presets repository.PresetRepo, plans PlanService) PresetService {
	return &presetService{presets: presets, plans: plans}
}

func (s *presetService) EnsureDefaults(ctx context.Context) error {
	n, err := s.presets.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range schedule.DefaultPresets() {
		preset := p
		if err := s.presets.Create(ctx, &preset); err != nil {
			return fmt.Errorf("seeding preset %s: %w", p.Name, err)
		}
	}
	return nil
}

func (s *presetService) List(ctx context.Context) ([]*domain.Preset, error) {
	return s.presets.List(ctx)
}

func (s *presetService) Create(ctx context.Context, name, durationStr, typeStr string) (*domain.Preset, bool, error) {
	preset, ok := schedule.NewPreset(name, durationStr, typeStr)
	if !ok {
		return nil, false, nil
	}
	if err := s.presets.Create(ctx, &preset); err != nil {
		return nil, false, err
	}
	return &preset, true, nil
}

func (s *presetService) Apply(ctx context.Context, rec *domain.PlanRecord, presetID string) error {
	if rec == nil {
		return fmt.Errorf("no plan record to apply preset to")
	}
	preset, err := s.presets.GetByID(ctx, presetID)
	if err != nil {
		return err
	}

	items := schedule.ApplyPreset(rec.Plan.Schedule, *preset, rec.WindowStart)
	return s.plans.UpdateSchedule(ctx, rec, items)
}
