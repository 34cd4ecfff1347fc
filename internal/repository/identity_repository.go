package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/chainraise/launchpad-api/internal/errors"
	"github.com/chainraise/launchpad-api/internal/models"
)

// identityRepository implements IdentityRepository
type identityRepository struct {
	db dbExecutor
}

// NewIdentityRepository creates a new identity-verification repository
func NewIdentityRepository(db dbExecutor) IdentityRepository {
	return &identityRepository{db: db}
}

// GetByUserID retrieves a user's identity-verification record
func (r *identityRepository) GetByUserID(userID uuid.UUID) (*models.IdentityVerification, error) {
	query := `
		SELECT id, user_id, status, accredited, kyc_verified, verified_at, created_at, updated_at
		FROM identity_verifications WHERE user_id = $1
	`
	record := &models.IdentityVerification{}
	err := r.db.QueryRow(query, userID).Scan(
		&record.ID, &record.UserID, &record.Status, &record.Accredited,
		&record.KYCVerified, &record.VerifiedAt, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("identity verification not found", err)
		}
		return nil, fmt.Errorf("failed to get identity verification: %w", err)
	}
	return record, nil
}

// Upsert creates or replaces the verification record for a user
func (r *identityRepository) Upsert(record *models.IdentityVerification) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	query := `
		INSERT INTO identity_verifications (
			id, user_id, status, accredited, kyc_verified, verified_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			status = EXCLUDED.status,
			accredited = EXCLUDED.accredited,
			kyc_verified = EXCLUDED.kyc_verified,
			verified_at = EXCLUDED.verified_at,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(query,
		record.ID, record.UserID, record.Status, record.Accredited,
		record.KYCVerified, record.VerifiedAt, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert identity verification: %w", err)
	}
	return nil
}
