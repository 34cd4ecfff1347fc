package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// ledgerRepository implements LedgerRepository over the score_events
// table. Only INSERT and SELECT are issued here; the ledger is
// append-only by contract.
type ledgerRepository struct {
	db dbExecutor
}

// NewLedgerRepository creates a new score ledger repository
func NewLedgerRepository(db dbExecutor) LedgerRepository {
	return &ledgerRepository{db: db}
}

// Append stores one immutable score event
func (r *ledgerRepository) Append(event *trustscore.ScoreEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal event metadata: %w", err)
	}

	query := `
		INSERT INTO score_events (
			entity_kind, entity_id, event_type, points, reason, triggered_by, metadata, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = r.db.QueryRow(query,
		event.EntityKind, event.EntityID, event.Type, event.Points,
		event.Reason, event.TriggeredBy, metadataJSON, event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to append score event: %w", err)
	}
	return nil
}

const scoreEventColumns = `id, entity_kind, entity_id, event_type, points, reason, triggered_by, metadata, created_at`

func scanScoreEvents(rows *sql.Rows) ([]trustscore.ScoreEvent, error) {
	var events []trustscore.ScoreEvent
	for rows.Next() {
		var ev trustscore.ScoreEvent
		var metadataJSON []byte
		err := rows.Scan(&ev.ID, &ev.EntityKind, &ev.EntityID, &ev.Type,
			&ev.Points, &ev.Reason, &ev.TriggeredBy, &metadataJSON, &ev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score event: %w", err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &ev.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event metadata: %w", err)
			}
		}
		events = append(events, ev)
	}
	return events, nil
}

// ListByEntity returns the full ledger for an entity in creation order,
// ties broken by insertion order
func (r *ledgerRepository) ListByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]trustscore.ScoreEvent, error) {
	query := `
		SELECT ` + scoreEventColumns + ` FROM score_events
		WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, kind, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query score events: %w", err)
	}
	defer rows.Close()
	return scanScoreEvents(rows)
}

// ListNegativeByEntity returns only the negative-point events for an
// entity. Recomputation sums exactly these; positive events are
// re-derived from live attributes instead.
func (r *ledgerRepository) ListNegativeByEntity(kind trustscore.EntityKind, entityID uuid.UUID) ([]trustscore.ScoreEvent, error) {
	query := `
		SELECT ` + scoreEventColumns + ` FROM score_events
		WHERE entity_kind = $1 AND entity_id = $2 AND points < 0
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, kind, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query negative score events: %w", err)
	}
	defer rows.Close()
	return scanScoreEvents(rows)
}

// ListRecentByEntity returns the most recent events for an entity,
// newest first
func (r *ledgerRepository) ListRecentByEntity(kind trustscore.EntityKind, entityID uuid.UUID, limit int) ([]trustscore.ScoreEvent, error) {
	query := `
		SELECT ` + scoreEventColumns + ` FROM score_events
		WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
	rows, err := r.db.Query(query, kind, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent score events: %w", err)
	}
	defer rows.Close()
	return scanScoreEvents(rows)
}
