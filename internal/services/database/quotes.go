package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"boiler-quote-engine/internal/models"
)

// QuoteRepository handles persistence of accepted quotes.
type QuoteRepository struct {
	db *DB
}

// NewQuoteRepository creates a new quote repository.
func NewQuoteRepository(db *DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create persists an accepted quote together with the property profile the
// customer submitted.
func (r *QuoteRepository) Create(ctx context.Context, q *models.QuoteRecordCreate) (int64, error) {
	if err := models.ValidateQuoteRecordCreate(q); err != nil {
		return 0, err
	}

	profileJSON, err := json.Marshal(q.Profile)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal property profile: %w", err)
	}

	query := `
		INSERT INTO quotes (
			quote_ref, customer_name, customer_email, customer_phone,
			profile, selected_tier, total_price, boiler_type, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		q.QuoteRef,
		q.CustomerName,
		q.CustomerEmail,
		q.CustomerPhone,
		string(profileJSON),
		string(q.SelectedTier),
		q.TotalPrice,
		string(q.BoilerType),
		time.Now().UTC(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create quote record: %w", err)
	}

	return id, nil
}

// GetByRef retrieves a stored quote by its reference.
func (r *QuoteRepository) GetByRef(ctx context.Context, quoteRef string) (*models.QuoteRecord, error) {
	query := `
		SELECT id, quote_ref, customer_name, customer_email, customer_phone,
			profile, selected_tier, total_price, boiler_type, created_at
		FROM quotes
		WHERE quote_ref = $1`

	var rec models.QuoteRecord
	var profileJSON, tier, boilerType string

	err := r.db.QueryRowContext(ctx, query, quoteRef).Scan(
		&rec.ID,
		&rec.QuoteRef,
		&rec.CustomerName,
		&rec.CustomerEmail,
		&rec.CustomerPhone,
		&profileJSON,
		&tier,
		&rec.TotalPrice,
		&boilerType,
		&rec.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote record: %w", err)
	}

	if err := json.Unmarshal([]byte(profileJSON), &rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property profile: %w", err)
	}
	rec.SelectedTier = models.QuoteTier(tier)
	rec.BoilerType = models.BoilerTopology(boilerType)

	return &rec, nil
}

// ListRecent retrieves the most recently accepted quotes.
func (r *QuoteRepository) ListRecent(ctx context.Context, limit int) ([]models.QuoteRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, quote_ref, customer_name, customer_email, customer_phone,
			profile, selected_tier, total_price, boiler_type, created_at
		FROM quotes
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var records []models.QuoteRecord
	for rows.Next() {
		var rec models.QuoteRecord
		var profileJSON, tier, boilerType string

		if err := rows.Scan(
			&rec.ID,
			&rec.QuoteRef,
			&rec.CustomerName,
			&rec.CustomerEmail,
			&rec.CustomerPhone,
			&profileJSON,
			&tier,
			&rec.TotalPrice,
			&boilerType,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote record: %w", err)
		}

		if err := json.Unmarshal([]byte(profileJSON), &rec.Profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property profile: %w", err)
		}
		rec.SelectedTier = models.QuoteTier(tier)
		rec.BoilerType = models.BoilerTopology(boilerType)

		records = append(records, rec)
	}

	return records, nil
}
