package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passgen/passgen-go/internal/model"
)

var ErrPresetNotFound = errors.New("preset not found")

// PresetRepository handles preset persistence.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// Upsert creates the preset or replaces its settings.
func (r *PresetRepository) Upsert(ctx context.Context, p *model.Preset) error {
	query := `INSERT INTO presets (name, length, numbers, symbols) VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE length = VALUES(length), numbers = VALUES(numbers), symbols = VALUES(symbols)`

	_, err := r.db.ExecContext(ctx, query, p.Name, p.Length, p.Numbers, p.Symbols)
	return err
}

// Get retrieves a preset by name.
func (r *PresetRepository) Get(ctx context.Context, name string) (*model.Preset, error) {
	query := `SELECT name, length, numbers, symbols, created_at, updated_at FROM presets WHERE name = ?`

	p := &model.Preset{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&p.Name, &p.Length, &p.Numbers, &p.Symbols, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	return p, nil
}

// List returns all presets ordered by name.
func (r *PresetRepository) List(ctx context.Context) ([]model.Preset, error) {
	query := `SELECT name, length, numbers, symbols, created_at, updated_at FROM presets ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	presets := []model.Preset{}
	for rows.Next() {
		var p model.Preset
		if err := rows.Scan(&p.Name, &p.Length, &p.Numbers, &p.Symbols, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

// Delete removes a preset.
func (r *PresetRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	return nil
}
