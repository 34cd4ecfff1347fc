package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a registered token launch
type Project struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	OwnerID             uuid.UUID  `json:"owner_id" db:"owner_id"`
	Name                string     `json:"name" db:"name"`
	TokenSymbol         string     `json:"token_symbol" db:"token_symbol"`
	Description         string     `json:"description" db:"description"`
	Website             string     `json:"website" db:"website"`
	WhitepaperURL       string     `json:"whitepaper_url" db:"whitepaper_url"`
	TwitterURL          string     `json:"twitter_url" db:"twitter_url"`
	TelegramURL         string     `json:"telegram_url" db:"telegram_url"`
	DiscordURL          string     `json:"discord_url" db:"discord_url"`
	LiquidityLockMonths int        `json:"liquidity_lock_months" db:"liquidity_lock_months"`
	TeamVestingMonths   int        `json:"team_vesting_months" db:"team_vesting_months"`
	AuditProvider       string     `json:"audit_provider" db:"audit_provider"`
	AuditReportURL      string     `json:"audit_report_url" db:"audit_report_url"`
	ContractVerified    bool       `json:"contract_verified" db:"contract_verified"`
	CurrentScore        int        `json:"current_score" db:"current_score"`
	ScoreUpdatedAt      *time.Time `json:"score_updated_at" db:"score_updated_at"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// HasSocialLink returns true if at least one social channel is set
func (p *Project) HasSocialLink() bool {
	return p.TwitterURL != "" || p.TelegramURL != "" || p.DiscordURL != ""
}

// HasAudit returns true if both an audit provider and a report URL are present
func (p *Project) HasAudit() bool {
	return p.AuditProvider != "" && p.AuditReportURL != ""
}

// ProjectForm represents the payload for creating or updating a project
type ProjectForm struct {
	Name          string `json:"name" binding:"required"`
	TokenSymbol   string `json:"token_symbol" binding:"required"`
	Description   string `json:"description"`
	Website       string `json:"website"`
	WhitepaperURL string `json:"whitepaper_url"`
	TwitterURL    string `json:"twitter_url"`
	TelegramURL   string `json:"telegram_url"`
	DiscordURL    string `json:"discord_url"`
}
