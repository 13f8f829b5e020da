package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/timebox/internal/db"
	"github.com/alexanderramin/timebox/internal/domain"
)

// SQLitePresetRepo implements PresetRepo using a SQLite database.
type SQLitePresetRepo struct {
	db db.DBTX
}

// NewSQLitePresetRepo creates a new SQLitePresetRepo.
func NewSQLitePresetRepo(conn db.DBTX) *SQLitePresetRepo {
	return &SQLitePresetRepo{db: conn}
}

func (r *SQLitePresetRepo) Create(ctx context.Context, p *domain.Preset) error {
	query := `INSERT INTO presets (id, name, duration_min, type, default_title, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.DurationMinutes,
		string(p.Type),
		p.DefaultTitle,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting preset: %w", err)
	}
	return nil
}

func (r *SQLitePresetRepo) GetByID(ctx context.Context, id string) (*domain.Preset, error) {
	query := `SELECT id, name, duration_min, type, default_title FROM presets WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPreset(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("preset %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preset: %w", err)
	}
	return p, nil
}

func (r *SQLitePresetRepo) List(ctx context.Context) ([]*domain.Preset, error) {
	// rowid breaks created_at ties in insertion order, which keeps the
	// seeded catalog stable.
	query := `SELECT id, name, duration_min, type, default_title FROM presets ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var presets []*domain.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning preset row: %w", err)
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *SQLitePresetRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM presets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting presets: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*domain.Preset, error) {
	var p domain.Preset
	var blockType string
	if err := row.Scan(&p.ID, &p.Name, &p.DurationMinutes, &blockType, &p.DefaultTitle); err != nil {
		return nil, err
	}
	p.Type = domain.BlockType(blockType)
	return &p, nil
}
