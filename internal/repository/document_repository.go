package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// documentRepository implements DocumentRepository
type documentRepository struct {
	db dbExecutor
}

// NewDocumentRepository creates a new document metadata repository
func NewDocumentRepository(db dbExecutor) DocumentRepository {
	return &documentRepository{db: db}
}

// Create stores a document metadata record
func (r *documentRepository) Create(doc *models.EntityDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO entity_documents (
			id, entity_kind, entity_id, type, file_name, file_url, verified, uploaded_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(query,
		doc.ID, doc.EntityKind, doc.EntityID, doc.Type, doc.FileName,
		doc.FileURL, doc.Verified, doc.UploadedBy, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// ListByEntity retrieves all document records for an entity
func (r *documentRepository) ListByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]models.EntityDocument, error) {
	query := `
		SELECT id, entity_kind, entity_id, type, file_name, file_url, verified, uploaded_by, created_at
		FROM entity_documents
		WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, kind, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.EntityDocument
	for rows.Next() {
		var d models.EntityDocument
		err := rows.Scan(&d.ID, &d.EntityKind, &d.EntityID, &d.Type,
			&d.FileName, &d.FileURL, &d.Verified, &d.UploadedBy, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Summarize aggregates the document facts rule evaluation needs
func (r *documentRepository) Summarize(kind trustscore.EntityKind, entityID uuid.UUID) (*DocumentSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE type = 'audit') > 0,
			COUNT(*) FILTER (WHERE type = 'audit' AND verified) > 0,
			COUNT(*) FILTER (WHERE type = 'financial') > 0,
			COUNT(*) FILTER (WHERE type = 'founder_kyc' AND verified)
		FROM entity_documents
		WHERE entity_kind = $1 AND entity_id = $2
	`
	summary := &DocumentSummary{}
	err := r.db.QueryRow(query, kind, entityID).Scan(
		&summary.Count, &summary.HasAudit, &summary.HasVerifiedAudit,
		&summary.HasFinancial, &summary.FounderKYCVerifiedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize documents: %w", err)
	}
	return summary, nil
}
