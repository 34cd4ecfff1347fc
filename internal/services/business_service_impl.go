package services

import (
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/chainraise/launchpad-api/internal/errors"
	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/models"
	"github.com/chainraise/launchpad-api/internal/repository"
	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// businessServiceImpl implements BusinessService
type businessServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
}

// newBusinessService creates a new business service implementation
func newBusinessService(repos *repository.Repositories, log logger.Logger) BusinessService {
	return &businessServiceImpl{repos: repos, logger: log}
}

// Create registers a new tokenized business raise for a user
func (s *businessServiceImpl) Create(ownerID uuid.UUID, form *models.BusinessForm) (*models.Business, error) {
	business := &models.Business{
		OwnerID:            ownerID,
		LegalName:          form.LegalName,
		Description:        form.Description,
		Website:            form.Website,
		Industry:           form.Industry,
		RegistrationNumber: form.RegistrationNumber,
		EIN:                form.EIN,
		FounderCount:       form.FounderCount,
		KYBLevel:           models.KYBNone,
	}
	if err := s.repos.Business.Create(business); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	s.logger.Info("business registered", "business_id", business.ID.String(), "owner_id", ownerID.String())
	return business, nil
}

// GetByID retrieves a business
func (s *businessServiceImpl) GetByID(id uuid.UUID) (*models.Business, error) {
	return s.repos.Business.GetByID(id)
}

// ListByOwner retrieves every business owned by a user
func (s *businessServiceImpl) ListByOwner(ownerID uuid.UUID) ([]models.Business, error) {
	return s.repos.Business.ListByOwner(ownerID)
}

// getOwned loads a business and enforces that the requester owns it
func (s *businessServiceImpl) getOwned(id, requesterID uuid.UUID, isAdmin bool) (*models.Business, error) {
	business, err := s.repos.Business.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && business.OwnerID != requesterID {
		return nil, apperrors.Forbidden("not the business owner", nil)
	}
	return business, nil
}

// Update changes a business's profile attributes
func (s *businessServiceImpl) Update(id, requesterID uuid.UUID, isAdmin bool, form *models.BusinessForm) (*models.Business, error) {
	business, err := s.getOwned(id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	business.LegalName = form.LegalName
	business.Description = form.Description
	business.Website = form.Website
	business.Industry = form.Industry
	business.RegistrationNumber = form.RegistrationNumber
	business.EIN = form.EIN
	business.FounderCount = form.FounderCount

	if err := s.repos.Business.Update(business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}
	return business, nil
}

// SetKYBLevel records a completed KYB verification level (admin workflow)
func (s *businessServiceImpl) SetKYBLevel(id uuid.UUID, level models.KYBLevel) (*models.Business, error) {
	if !level.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown KYB level %q", level), nil)
	}
	business, err := s.repos.Business.GetByID(id)
	if err != nil {
		return nil, err
	}

	business.KYBLevel = level
	if err := s.repos.Business.Update(business); err != nil {
		return nil, fmt.Errorf("failed to update KYB level: %w", err)
	}
	return business, nil
}

// SetAccountingReviewed flips the external accounting review flag (admin workflow)
func (s *businessServiceImpl) SetAccountingReviewed(id uuid.UUID, reviewed bool) (*models.Business, error) {
	business, err := s.repos.Business.GetByID(id)
	if err != nil {
		return nil, err
	}

	business.AccountingReviewed = reviewed
	if err := s.repos.Business.Update(business); err != nil {
		return nil, fmt.Errorf("failed to update accounting review flag: %w", err)
	}
	return business, nil
}

// AddDocument stores a document metadata record against the business
func (s *businessServiceImpl) AddDocument(id, requesterID uuid.UUID, isAdmin bool, docType models.DocumentType, fileName, fileURL string) (*models.EntityDocument, error) {
	if !docType.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown document type %q", docType), nil)
	}
	if _, err := s.getOwned(id, requesterID, isAdmin); err != nil {
		return nil, err
	}

	doc := &models.EntityDocument{
		EntityKind: string(trustscore.KindBusiness),
		EntityID:   id,
		Type:       docType,
		FileName:   fileName,
		FileURL:    fileURL,
		UploadedBy: requesterID,
	}
	if err := s.repos.Document.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}
	return doc, nil
}
