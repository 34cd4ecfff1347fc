package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType classifies uploaded entity documents
type DocumentType string

const (
	DocumentAudit        DocumentType = "audit"
	DocumentFinancial    DocumentType = "financial"
	DocumentLegal        DocumentType = "legal"
	DocumentWhitepaper   DocumentType = "whitepaper"
	DocumentFounderKYC   DocumentType = "founder_kyc"
	DocumentRegistration DocumentType = "registration"
)

// Valid returns true for a recognized document type
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentAudit, DocumentFinancial, DocumentLegal,
		DocumentWhitepaper, DocumentFounderKYC, DocumentRegistration:
		return true
	}
	return false
}

// EntityDocument is the metadata record for a file uploaded against a
// project or business. File storage itself lives with the upload service;
// the engine only reads type and verification flags.
type EntityDocument struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	EntityKind string       `json:"entity_kind" db:"entity_kind"`
	EntityID   uuid.UUID    `json:"entity_id" db:"entity_id"`
	Type       DocumentType `json:"type" db:"type"`
	FileName   string       `json:"file_name" db:"file_name"`
	FileURL    string       `json:"file_url" db:"file_url"`
	Verified   bool         `json:"verified" db:"verified"`
	UploadedBy uuid.UUID    `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}
