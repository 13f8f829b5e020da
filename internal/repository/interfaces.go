package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/timebox/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type PresetRepo interface {
	Create(ctx context.Context, p *domain.Preset) error
	GetByID(ctx context.Context, id string) (*domain.Preset, error)
	List(ctx context.Context) ([]*domain.Preset, error)
	Count(ctx context.Context) (int, error)
}

type PlanRepo interface {
	Save(ctx context.Context, rec *domain.PlanRecord) error
	GetByID(ctx context.Context, id string) (*domain.PlanRecord, error)
	GetLatest(ctx context.Context) (*domain.PlanRecord, error)
	List(ctx context.Context, limit int) ([]*domain.PlanRecord, error)
	Delete(ctx context.Context, id string) error
}
