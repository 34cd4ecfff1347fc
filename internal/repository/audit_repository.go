package repository

import (
	"fmt"
	"time"
)

// auditRepository implements the write-only AuditRepository
type auditRepository struct {
	db dbExecutor
}

// NewAuditRepository creates a new audit-log repository
func NewAuditRepository(db dbExecutor) AuditRepository {
	return &auditRepository{db: db}
}

// Append writes one audit-log line. Callers treat failures as
// non-fatal; the sink must never block a business operation.
func (r *auditRepository) Append(entry *AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO audit_logs (category, action, actor, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(query, entry.Category, entry.Action, entry.Actor,
		entry.EntityID, entry.Detail, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}
