package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/chainraise/launchpad-api/internal/errors"
	"github.com/chainraise/launchpad-api/internal/models"
)

// businessRepository implements BusinessRepository
type businessRepository struct {
	db dbExecutor
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db dbExecutor) BusinessRepository {
	return &businessRepository{db: db}
}

const businessColumns = `
	id, owner_id, legal_name, description, website, industry, kyb_level,
	registration_number, ein, founder_count, accounting_reviewed,
	current_score, score_updated_at, created_at, updated_at`

func scanBusiness(row rowScanner) (*models.Business, error) {
	b := &models.Business{}
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.LegalName, &b.Description, &b.Website,
		&b.Industry, &b.KYBLevel, &b.RegistrationNumber, &b.EIN,
		&b.FounderCount, &b.AccountingReviewed, &b.CurrentScore,
		&b.ScoreUpdatedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID retrieves a business by ID
func (r *businessRepository) GetByID(id uuid.UUID) (*models.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	business, err := scanBusiness(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("business not found", err)
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return business, nil
}

// ListByOwner retrieves every business owned by a user
func (r *businessRepository) ListByOwner(ownerID uuid.UUID) ([]models.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	var businesses []models.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, *b)
	}
	return businesses, nil
}

// Create creates a new business with the default baseline score
func (r *businessRepository) Create(business *models.Business) error {
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now
	if business.KYBLevel == "" {
		business.KYBLevel = models.KYBNone
	}
	if business.CurrentScore == 0 {
		business.CurrentScore = 50
	}

	query := `
		INSERT INTO businesses (
			id, owner_id, legal_name, description, website, industry, kyb_level,
			registration_number, ein, founder_count, accounting_reviewed,
			current_score, score_updated_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
	`
	_, err := r.db.Exec(query,
		business.ID, business.OwnerID, business.LegalName, business.Description,
		business.Website, business.Industry, business.KYBLevel,
		business.RegistrationNumber, business.EIN, business.FounderCount,
		business.AccountingReviewed, business.CurrentScore,
		business.ScoreUpdatedAt, business.CreatedAt, business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// Update updates business attributes; score fields go through UpdateScore
func (r *businessRepository) Update(business *models.Business) error {
	business.UpdatedAt = time.Now()

	query := `
		UPDATE businesses SET
			legal_name = $2, description = $3, website = $4, industry = $5,
			kyb_level = $6, registration_number = $7, ein = $8,
			founder_count = $9, accounting_reviewed = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		business.ID, business.LegalName, business.Description, business.Website,
		business.Industry, business.KYBLevel, business.RegistrationNumber,
		business.EIN, business.FounderCount, business.AccountingReviewed,
		business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("business not found", nil)
	}
	return nil
}

// Delete deletes a business
func (r *businessRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("business not found", nil)
	}
	return nil
}

// UpdateScore persists the recomputed score fields
func (r *businessRepository) UpdateScore(id uuid.UUID, score int, updatedAt time.Time) error {
	query := `UPDATE businesses SET current_score = $2, score_updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(query, id, score, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update business score: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("business not found", nil)
	}
	return nil
}

// ListStaleScores returns ids of businesses whose score has not been
// recomputed since the given cutoff
func (r *businessRepository) ListStaleScores(before time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM businesses
		WHERE score_updated_at IS NULL OR score_updated_at < $1
		ORDER BY score_updated_at ASC NULLS FIRST
		LIMIT $2
	`
	rows, err := r.db.Query(query, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale businesses: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan business id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
