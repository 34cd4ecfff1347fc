package models

import (
	"time"

	"github.com/google/uuid"
)

// KYBLevel represents the verification depth completed for a business
type KYBLevel string

const (
	KYBNone     KYBLevel = "none"
	KYBBasic    KYBLevel = "basic"
	KYBStandard KYBLevel = "standard"
	KYBEnhanced KYBLevel = "enhanced"
)

// Valid returns true for a recognized KYB level
func (l KYBLevel) Valid() bool {
	switch l {
	case KYBNone, KYBBasic, KYBStandard, KYBEnhanced:
		return true
	}
	return false
}

// Business represents a tokenized business raise
type Business struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	OwnerID            uuid.UUID  `json:"owner_id" db:"owner_id"`
	LegalName          string     `json:"legal_name" db:"legal_name"`
	Description        string     `json:"description" db:"description"`
	Website            string     `json:"website" db:"website"`
	Industry           string     `json:"industry" db:"industry"`
	KYBLevel           KYBLevel   `json:"kyb_level" db:"kyb_level"`
	RegistrationNumber string     `json:"registration_number" db:"registration_number"`
	EIN                string     `json:"ein" db:"ein"`
	FounderCount       int        `json:"founder_count" db:"founder_count"`
	AccountingReviewed bool       `json:"accounting_reviewed" db:"accounting_reviewed"`
	CurrentScore       int        `json:"current_score" db:"current_score"`
	ScoreUpdatedAt     *time.Time `json:"score_updated_at" db:"score_updated_at"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// HasRegistration returns true if either a registration number or an EIN is on file
func (b *Business) HasRegistration() bool {
	return b.RegistrationNumber != "" || b.EIN != ""
}

// BusinessForm represents the payload for creating or updating a business
type BusinessForm struct {
	LegalName          string `json:"legal_name" binding:"required"`
	Description        string `json:"description"`
	Website            string `json:"website"`
	Industry           string `json:"industry"`
	RegistrationNumber string `json:"registration_number"`
	EIN                string `json:"ein"`
	FounderCount       int    `json:"founder_count"`
}
