package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/chainraise/launchpad-api/internal/errors"
	"github.com/chainraise/launchpad-api/internal/models"
)

// projectRepository implements ProjectRepository
type projectRepository struct {
	db dbExecutor
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db dbExecutor) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `
	id, owner_id, name, token_symbol, description, website, whitepaper_url,
	twitter_url, telegram_url, discord_url, liquidity_lock_months,
	team_vesting_months, audit_provider, audit_report_url, contract_verified,
	current_score, score_updated_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.TokenSymbol, &p.Description, &p.Website,
		&p.WhitepaperURL, &p.TwitterURL, &p.TelegramURL, &p.DiscordURL,
		&p.LiquidityLockMonths, &p.TeamVestingMonths, &p.AuditProvider,
		&p.AuditReportURL, &p.ContractVerified, &p.CurrentScore,
		&p.ScoreUpdatedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID retrieves a project by ID
func (r *projectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("project not found", err)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListByOwner retrieves every project owned by a user
func (r *projectRepository) ListByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

// Create creates a new project with the default baseline score
func (r *projectRepository) Create(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.CurrentScore == 0 {
		project.CurrentScore = 50
	}

	query := `
		INSERT INTO projects (
			id, owner_id, name, token_symbol, description, website, whitepaper_url,
			twitter_url, telegram_url, discord_url, liquidity_lock_months,
			team_vesting_months, audit_provider, audit_report_url, contract_verified,
			current_score, score_updated_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		)
	`
	_, err := r.db.Exec(query,
		project.ID, project.OwnerID, project.Name, project.TokenSymbol,
		project.Description, project.Website, project.WhitepaperURL,
		project.TwitterURL, project.TelegramURL, project.DiscordURL,
		project.LiquidityLockMonths, project.TeamVestingMonths,
		project.AuditProvider, project.AuditReportURL, project.ContractVerified,
		project.CurrentScore, project.ScoreUpdatedAt, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update updates project attributes. Score fields are excluded on
// purpose: they are written only through UpdateScore.
func (r *projectRepository) Update(project *models.Project) error {
	project.UpdatedAt = time.Now()

	query := `
		UPDATE projects SET
			name = $2, token_symbol = $3, description = $4, website = $5,
			whitepaper_url = $6, twitter_url = $7, telegram_url = $8,
			discord_url = $9, liquidity_lock_months = $10, team_vesting_months = $11,
			audit_provider = $12, audit_report_url = $13, contract_verified = $14,
			updated_at = $15
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		project.ID, project.Name, project.TokenSymbol, project.Description,
		project.Website, project.WhitepaperURL, project.TwitterURL,
		project.TelegramURL, project.DiscordURL, project.LiquidityLockMonths,
		project.TeamVestingMonths, project.AuditProvider, project.AuditReportURL,
		project.ContractVerified, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("project not found", nil)
	}
	return nil
}

// Delete deletes a project
func (r *projectRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("project not found", nil)
	}
	return nil
}

// UpdateScore persists the recomputed score fields
func (r *projectRepository) UpdateScore(id uuid.UUID, score int, updatedAt time.Time) error {
	query := `UPDATE projects SET current_score = $2, score_updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(query, id, score, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update project score: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("project not found", nil)
	}
	return nil
}

// ListStaleScores returns ids of projects whose score has not been
// recomputed since the given cutoff
func (r *projectRepository) ListStaleScores(before time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM projects
		WHERE score_updated_at IS NULL OR score_updated_at < $1
		ORDER BY score_updated_at ASC NULLS FIRST
		LIMIT $2
	`
	rows, err := r.db.Query(query, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale projects: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan project id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
