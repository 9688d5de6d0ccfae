package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"boiler-quote-engine/internal/models"
)

// BoilerRepository handles boiler catalog database operations.
type BoilerRepository struct {
	db *DB
}

// NewBoilerRepository creates a new boiler repository.
func NewBoilerRepository(db *DB) *BoilerRepository {
	return &BoilerRepository{db: db}
}

// Create inserts a new boiler offering into the catalog.
func (r *BoilerRepository) Create(ctx context.Context, b *models.BoilerOffering) (int64, error) {
	query := `
		INSERT INTO boilers (
			make, model, boiler_type, tier, dhw_kw, supply_price,
			warranty_years, flow_rate_lpm, efficiency_rating,
			created_at, updated_at, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10, true)
		RETURNING id`

	var id int64
	now := time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		b.Make,
		b.Model,
		string(b.BoilerType),
		string(b.Tier),
		b.DhwKw,
		b.SupplyPrice,
		b.WarrantyYears,
		b.FlowRateLpm,
		b.EfficiencyRating,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create boiler offering: %w", err)
	}

	return id, nil
}

// GetAllActive retrieves all active boiler offerings ordered by supply price.
func (r *BoilerRepository) GetAllActive(ctx context.Context) ([]models.BoilerOffering, error) {
	query := `
		SELECT id, make, model, boiler_type, tier, dhw_kw, supply_price,
			warranty_years, flow_rate_lpm, efficiency_rating,
			created_at, updated_at, is_active
		FROM boilers
		WHERE is_active = true
		ORDER BY supply_price, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query boilers: %w", err)
	}
	defer rows.Close()

	var boilers []models.BoilerOffering
	for rows.Next() {
		boiler, err := scanBoiler(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan boiler: %w", err)
		}
		boilers = append(boilers, boiler)
	}

	return boilers, nil
}

// GetByID retrieves a boiler offering by its ID.
func (r *BoilerRepository) GetByID(ctx context.Context, id int64) (*models.BoilerOffering, error) {
	query := `
		SELECT id, make, model, boiler_type, tier, dhw_kw, supply_price,
			warranty_years, flow_rate_lpm, efficiency_rating,
			created_at, updated_at, is_active
		FROM boilers
		WHERE id = $1`

	boiler, err := scanBoiler(r.db.QueryRowContext(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get boiler: %w", err)
	}

	return &boiler, nil
}

// Deactivate marks a boiler offering as inactive.
func (r *BoilerRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE boilers SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id)
	return err
}

// scanBoiler scans a row into a BoilerOffering.
func scanBoiler(row pgx.Row) (models.BoilerOffering, error) {
	var b models.BoilerOffering
	var boilerType, tier string

	err := row.Scan(
		&b.ID,
		&b.Make,
		&b.Model,
		&boilerType,
		&tier,
		&b.DhwKw,
		&b.SupplyPrice,
		&b.WarrantyYears,
		&b.FlowRateLpm,
		&b.EfficiencyRating,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.IsActive,
	)

	if err != nil {
		return models.BoilerOffering{}, err
	}

	b.BoilerType = models.BoilerTopology(boilerType)
	b.Tier = models.PriceTier(tier)

	return b, nil
}
