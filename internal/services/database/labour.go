package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"boiler-quote-engine/internal/models"
)

// LabourCostRepository handles labour cost catalog database operations.
type LabourCostRepository struct {
	db *DB
}

// NewLabourCostRepository creates a new labour cost repository.
func NewLabourCostRepository(db *DB) *LabourCostRepository {
	return &LabourCostRepository{db: db}
}

// GetAll retrieves all labour cost entries.
func (r *LabourCostRepository) GetAll(ctx context.Context) ([]models.LabourCost, error) {
	query := `
		SELECT id, job_type, tier, price
		FROM labour_costs
		ORDER BY job_type, tier`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query labour costs: %w", err)
	}
	defer rows.Close()

	var costs []models.LabourCost
	for rows.Next() {
		var c models.LabourCost
		var tier string
		if err := rows.Scan(&c.ID, &c.JobType, &tier, &c.Price); err != nil {
			return nil, fmt.Errorf("failed to scan labour cost: %w", err)
		}
		c.Tier = models.LabourTier(tier)
		costs = append(costs, c)
	}

	return costs, nil
}

// GetByType retrieves the labour cost for a job type and tier, or nil when
// no rate is configured for that combination.
func (r *LabourCostRepository) GetByType(ctx context.Context, jobType string, tier models.LabourTier) (*models.LabourCost, error) {
	query := `
		SELECT id, job_type, tier, price
		FROM labour_costs
		WHERE job_type = $1 AND tier = $2`

	var c models.LabourCost
	var tierStr string

	err := r.db.QueryRowContext(ctx, query, jobType, string(tier)).Scan(
		&c.ID, &c.JobType, &tierStr, &c.Price,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get labour cost: %w", err)
	}

	c.Tier = models.LabourTier(tierStr)
	return &c, nil
}

// Upsert inserts or updates a labour cost entry.
func (r *LabourCostRepository) Upsert(ctx context.Context, c *models.LabourCost) error {
	query := `
		INSERT INTO labour_costs (job_type, tier, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_type, tier) DO UPDATE SET price = EXCLUDED.price`

	_, err := r.db.ExecContext(ctx, query, c.JobType, string(c.Tier), c.Price)
	if err != nil {
		return fmt.Errorf("failed to upsert labour cost: %w", err)
	}
	return nil
}
