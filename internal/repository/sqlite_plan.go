package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/timebox/internal/db"
	"github.com/alexanderramin/timebox/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
//
// Save replaces the full item list for the plan; items carry a position
// column preserving the store order, which is user-visible in exports.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, rec *domain.PlanRecord) error {
	now := time.Now().UTC()
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	rec.CreatedAt = createdAt
	rec.UpdatedAt = now

	query := `INSERT INTO plans
		(id, window_start, window_end, tasks, preferences, summary, feedback, suggestions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			window_start = excluded.window_start,
			window_end   = excluded.window_end,
			tasks        = excluded.tasks,
			preferences  = excluded.preferences,
			summary      = excluded.summary,
			feedback     = excluded.feedback,
			suggestions  = excluded.suggestions,
			updated_at   = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		domain.FormatWallTime(rec.WindowStart),
		domain.FormatWallTime(rec.WindowEnd),
		rec.Tasks,
		rec.Preferences,
		rec.Plan.Summary,
		rec.Plan.Feedback,
		rec.Plan.Suggestions,
		createdAt.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting plan: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_items WHERE plan_id = ?`, rec.ID); err != nil {
		return fmt.Errorf("clearing schedule items: %w", err)
	}

	itemQuery := `INSERT INTO schedule_items
		(id, plan_id, position, title, start_time, end_time, type, description, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, item := range rec.Plan.Schedule {
		_, err := r.db.ExecContext(ctx, itemQuery,
			item.ID,
			rec.ID,
			i,
			item.Title,
			domain.FormatWallTime(item.StartTime),
			domain.FormatWallTime(item.EndTime),
			string(item.Type),
			item.Description,
			item.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting schedule item %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	query := `SELECT id, window_start, window_end, tasks, preferences, summary, feedback, suggestions, created_at, updated_at
		FROM plans WHERE id = ?`
	rec, err := r.scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	if err := r.loadItems(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLitePlanRepo) GetLatest(ctx context.Context) (*domain.PlanRecord, error) {
	query := `SELECT id, window_start, window_end, tasks, preferences, summary, feedback, suggestions, created_at, updated_at
		FROM plans ORDER BY updated_at DESC, id DESC LIMIT 1`
	rec, err := r.scanPlan(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("latest plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	if err := r.loadItems(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns plan records newest first, without their schedule items.
// A non-positive limit returns every record.
func (r *SQLitePlanRepo) List(ctx context.Context, limit int) ([]*domain.PlanRecord, error) {
	if limit <= 0 {
		// SQLite treats LIMIT 0 as "no rows"; -1 means unbounded.
		limit = -1
	}
	query := `SELECT id, window_start, window_end, tasks, preferences, summary, feedback, suggestions, created_at, updated_at
		FROM plans ORDER BY updated_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var recs []*domain.PlanRecord
	for rows.Next() {
		rec, err := r.scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row rowScanner) (*domain.PlanRecord, error) {
	var rec domain.PlanRecord
	var windowStart, windowEnd, createdAt, updatedAt string
	err := row.Scan(
		&rec.ID,
		&windowStart,
		&windowEnd,
		&rec.Tasks,
		&rec.Preferences,
		&rec.Plan.Summary,
		&rec.Plan.Feedback,
		&rec.Plan.Suggestions,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rec.WindowStart, err = domain.ParseWallTime(windowStart); err != nil {
		return nil, fmt.Errorf("parsing window_start: %w", err)
	}
	if rec.WindowEnd, err = domain.ParseWallTime(windowEnd); err != nil {
		return nil, fmt.Errorf("parsing window_end: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}

func (r *SQLitePlanRepo) loadItems(ctx context.Context, rec *domain.PlanRecord) error {
	query := `SELECT id, title, start_time, end_time, type, description, notes
		FROM schedule_items WHERE plan_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, rec.ID)
	if err != nil {
		return fmt.Errorf("loading schedule items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ScheduleItem
		var startTime, endTime, blockType string
		if err := rows.Scan(&item.ID, &item.Title, &startTime, &endTime, &blockType, &item.Description, &item.Notes); err != nil {
			return fmt.Errorf("scanning schedule item: %w", err)
		}
		if item.StartTime, err = domain.ParseWallTime(startTime); err != nil {
			return fmt.Errorf("parsing item start_time: %w", err)
		}
		if item.EndTime, err = domain.ParseWallTime(endTime); err != nil {
			return fmt.Errorf("parsing item end_time: %w", err)
		}
		item.Type = domain.BlockType(blockType)
		rec.Plan.Schedule = append(rec.Plan.Schedule, item)
	}
	return rows.Err()
}
