package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timebox/internal/db"
	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/intelligence"
	"github.com/alexanderramin/timebox/internal/llm"
	"github.com/alexanderramin/timebox/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	plans     repository.PlanRepo
	uow       db.UnitOfWork
	scheduler intelligence.ScheduleService
}

// NewPlanService creates a PlanService. Reads go through the plans repo;
// writes run inside a transaction so a failed save never leaves a plan row
// without its items.
func NewPlanService(plans repository.PlanRepo, uow db.UnitOfWork, scheduler intelligence.ScheduleService) PlanService {
	return &planService{plans: plans, uow: uow, scheduler: scheduler}
}

func (s *planService) Generate(ctx context.Context, req intelligence.PlanRequest) (*domain.PlanRecord, error) {
	// Fail fast with an actionable message when the endpoint or key is unusable.
	if !s.scheduler.Available(ctx) {
		return nil, fmt.Errorf("AI service is not reachable; check TIMEBOX_API_KEY and TIMEBOX_LLM_ENDPOINT: %w", llm.ErrServiceUnavailable)
	}

	plan, err := s.scheduler.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	rec := &domain.PlanRecord{
		ID:          uuid.NewString(),
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
		Tasks:       req.Tasks,
		Preferences: req.Preferences,
		Plan:        *plan,
	}
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *planService) Refine(ctx context.Context, rec *domain.PlanRecord, instruction string) (*domain.PlanRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("refine requires an existing plan record")
	}

	req := intelligence.PlanRequest{
		WindowStart: rec.WindowStart,
		WindowEnd:   rec.WindowEnd,
		Tasks:       rec.Tasks,
		Preferences: rec.Preferences,
	}
	plan, err := s.scheduler.Refine(ctx, req, &rec.Plan, instruction)
	if err != nil {
		return nil, err
	}

	updated := *rec
	updated.Plan = *plan
	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *planService) UpdateSchedule(ctx context.Context, rec *domain.PlanRecord, items []domain.ScheduleItem) error {
	if rec == nil {
		return fmt.Errorf("no plan record to update")
	}

	// The caller's record is only touched once the write commits.
	updated := *rec
	updated.Plan.Schedule = items
	if err := s.save(ctx, &updated); err != nil {
		return err
	}
	*rec = updated
	return nil
}

func (s *planService) Resume(ctx context.Context) (*domain.PlanRecord, error) {
	return s.plans.GetLatest(ctx)
}

func (s *planService) Get(ctx context.Context, id string) (*domain.PlanRecord, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context, limit int) ([]*domain.PlanRecord, error) {
	return s.plans.List(ctx, limit)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

func (s *planService) save(ctx context.Context, rec *domain.PlanRecord) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Save(ctx, rec)
	})
}
