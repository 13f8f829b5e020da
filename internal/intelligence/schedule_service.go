// Package intelligence turns free-form planning input into structured
// timebox plans by prompting a generative model and validating its output
// fail-closed.
package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/llm"
	"github.com/google/uuid"
)

// PlanRequest carries the setup inputs for an initial generation.
type PlanRequest struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Tasks       string
	Preferences string
}

// ScheduleService generates and refines timebox plans.
type ScheduleService interface {
	// Generate builds a fresh plan from the setup inputs.
	Generate(ctx context.Context, req PlanRequest) (*domain.TimeboxPlan, error)

	// Refine updates an existing plan per a free-form instruction, sending
	// the current schedule as context. The input plan is never mutated.
	Refine(ctx context.Context, req PlanRequest, plan *domain.TimeboxPlan, instruction string) (*domain.TimeboxPlan, error)

	// Available reports whether the backing model endpoint is usable with
	// the configured credential.
	Available(ctx context.Context) bool
}

type scheduleService struct {
	client llm.Client
}

// NewScheduleService creates a ScheduleService backed by a model client.
func NewScheduleService(client llm.Client) ScheduleService {
	return &scheduleService{client: client}
}

// aiScheduleItem is the wire shape of one block in the model's JSON output.
// Ids are never carried on the wire; they are assigned after validation.
type aiScheduleItem struct {
	Title       string `json:"title"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// aiPlanResponse is the full JSON structure the model outputs.
type aiPlanResponse struct {
	Schedule    []aiScheduleItem `json:"schedule"`
	Summary     string           `json:"summary"`
	Feedback    string           `json:"feedback"`
	Suggestions string           `json:"suggestions"`
}

func (s *scheduleService) Generate(ctx context.Context, req PlanRequest) (*domain.TimeboxPlan, error) {
	prompt := buildGeneratePrompt(req.WindowStart, req.WindowEnd, req.Tasks, req.Preferences)
	return s.call(ctx, llm.TaskGenerate, prompt)
}

func (s *scheduleService) Refine(ctx context.Context, req PlanRequest, plan *domain.TimeboxPlan, instruction string) (*domain.TimeboxPlan, error) {
	if plan == nil {
		return nil, fmt.Errorf("refine requires an existing plan")
	}
	prompt := buildRefinePrompt(req.WindowStart, req.WindowEnd, plan, instruction)
	return s.call(ctx, llm.TaskRefine, prompt)
}

func (s *scheduleService) Available(ctx context.Context) bool {
	return s.client.Available(ctx)
}

func (s *scheduleService) call(ctx context.Context, task llm.TaskType, prompt string) (*domain.TimeboxPlan, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: scheduleSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("llm schedule call failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[aiPlanResponse](resp.Text, validatePlanResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract plan: %w", err)
	}

	return toPlan(parsed)
}

// validatePlanResponse rejects any response that does not fully satisfy the
// schema. A single bad item discards the whole response; nothing partial ever
// reaches the store.
func validatePlanResponse(resp aiPlanResponse) error {
	if resp.Summary == "" {
		return fmt.Errorf("summary field is required")
	}
	if resp.Schedule == nil {
		return fmt.Errorf("schedule field is required")
	}
	for i, item := range resp.Schedule {
		if item.Title == "" {
			return fmt.Errorf("schedule[%d]: title is required", i)
		}
		if !domain.ValidBlockTypes[domain.BlockType(item.Type)] {
			return fmt.Errorf("schedule[%d]: unknown block type %q", i, item.Type)
		}
		if _, err := domain.ParseWallTime(item.StartTime); err != nil {
			return fmt.Errorf("schedule[%d]: bad startTime: %v", i, err)
		}
		if _, err := domain.ParseWallTime(item.EndTime); err != nil {
			return fmt.Errorf("schedule[%d]: bad endTime: %v", i, err)
		}
	}
	return nil
}

// toPlan converts the validated wire shape into the domain model, assigning a
// fresh id to every block.
func toPlan(resp aiPlanResponse) (*domain.TimeboxPlan, error) {
	items := make([]domain.ScheduleItem, len(resp.Schedule))
	for i, wire := range resp.Schedule {
		start, err := domain.ParseWallTime(wire.StartTime)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d]: %w", i, err)
		}
		end, err := domain.ParseWallTime(wire.EndTime)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d]: %w", i, err)
		}
		items[i] = domain.ScheduleItem{
			ID:          uuid.NewString(),
			Title:       wire.Title,
			StartTime:   start,
			EndTime:     end,
			Type:        domain.BlockType(wire.Type),
			Description: wire.Description,
			Notes:       wire.Notes,
		}
	}

	return &domain.TimeboxPlan{
		Schedule:    items,
		Summary:     resp.Summary,
		Feedback:    resp.Feedback,
		Suggestions: resp.Suggestions,
	}, nil
}
