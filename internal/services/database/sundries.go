package database

import (
	"context"
	"fmt"

	"boiler-quote-engine/internal/models"
)

// SundryRepository handles sundry cost catalog database operations.
type SundryRepository struct {
	db *DB
}

// NewSundryRepository creates a new sundry repository.
func NewSundryRepository(db *DB) *SundryRepository {
	return &SundryRepository{db: db}
}

// GetAll retrieves all sundry cost entries.
func (r *SundryRepository) GetAll(ctx context.Context) ([]models.SundryCost, error) {
	query := `
		SELECT id, name, description, price
		FROM sundries
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sundries: %w", err)
	}
	defer rows.Close()

	var sundries []models.SundryCost
	for rows.Next() {
		var s models.SundryCost
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price); err != nil {
			return nil, fmt.Errorf("failed to scan sundry: %w", err)
		}
		sundries = append(sundries, s)
	}

	return sundries, nil
}

// Upsert inserts or updates a sundry cost entry by name.
func (r *SundryRepository) Upsert(ctx context.Context, s *models.SundryCost) error {
	query := `
		INSERT INTO sundries (name, description, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			price = EXCLUDED.price`

	_, err := r.db.ExecContext(ctx, query, s.Name, s.Description, s.Price)
	if err != nil {
		return fmt.Errorf("failed to upsert sundry: %w", err)
	}
	return nil
}
