package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus represents the state of an identity verification
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// IdentityVerification represents a user's identity-verification record
// as reported by the identity provider integration
type IdentityVerification struct {
	ID          uuid.UUID          `json:"id" db:"id"`
	UserID      uuid.UUID          `json:"user_id" db:"user_id"`
	Status      VerificationStatus `json:"status" db:"status"`
	Accredited  bool               `json:"accredited" db:"accredited"`
	KYCVerified bool               `json:"kyc_verified" db:"kyc_verified"`
	VerifiedAt  *time.Time         `json:"verified_at" db:"verified_at"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" db:"updated_at"`
}

// IsVerified returns true once the provider has confirmed the identity
func (v *IdentityVerification) IsVerified() bool {
	return v != nil && v.Status == VerificationVerified
}
