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

// projectServiceImpl implements ProjectService
type projectServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
}

// newProjectService creates a new project service implementation
func newProjectService(repos *repository.Repositories, log logger.Logger) ProjectService {
	return &projectServiceImpl{repos: repos, logger: log}
}

// Create registers a new token launch for a user
func (s *projectServiceImpl) Create(ownerID uuid.UUID, form *models.ProjectForm) (*models.Project, error) {
	project := &models.Project{
		OwnerID:       ownerID,
		Name:          form.Name,
		TokenSymbol:   form.TokenSymbol,
		Description:   form.Description,
		Website:       form.Website,
		WhitepaperURL: form.WhitepaperURL,
		TwitterURL:    form.TwitterURL,
		TelegramURL:   form.TelegramURL,
		DiscordURL:    form.DiscordURL,
	}
	if err := s.repos.Project.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project registered", "project_id", project.ID.String(), "owner_id", ownerID.String())
	return project, nil
}

// GetByID retrieves a project
func (s *projectServiceImpl) GetByID(id uuid.UUID) (*models.Project, error) {
	return s.repos.Project.GetByID(id)
}

// ListByOwner retrieves every project owned by a user
func (s *projectServiceImpl) ListByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	return s.repos.Project.ListByOwner(ownerID)
}

// getOwned loads a project and enforces that the requester owns it
func (s *projectServiceImpl) getOwned(id, requesterID uuid.UUID, isAdmin bool) (*models.Project, error) {
	project, err := s.repos.Project.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && project.OwnerID != requesterID {
		return nil, apperrors.Forbidden("not the project owner", nil)
	}
	return project, nil
}

// Update changes a project's profile attributes
func (s *projectServiceImpl) Update(id, requesterID uuid.UUID, isAdmin bool, form *models.ProjectForm) (*models.Project, error) {
	project, err := s.getOwned(id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	project.Name = form.Name
	project.TokenSymbol = form.TokenSymbol
	project.Description = form.Description
	project.Website = form.Website
	project.WhitepaperURL = form.WhitepaperURL
	project.TwitterURL = form.TwitterURL
	project.TelegramURL = form.TelegramURL
	project.DiscordURL = form.DiscordURL

	if err := s.repos.Project.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// SetLiquidityLock records the liquidity lock duration on the project row
func (s *projectServiceImpl) SetLiquidityLock(id, requesterID uuid.UUID, isAdmin bool, months int) (*models.Project, error) {
	if months < 0 {
		return nil, apperrors.InvalidInput("lock duration cannot be negative", nil)
	}
	project, err := s.getOwned(id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	project.LiquidityLockMonths = months
	if err := s.repos.Project.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update liquidity lock: %w", err)
	}
	return project, nil
}

// SetVesting records the team vesting duration on the project row
func (s *projectServiceImpl) SetVesting(id, requesterID uuid.UUID, isAdmin bool, months int) (*models.Project, error) {
	if months < 0 {
		return nil, apperrors.InvalidInput("vesting duration cannot be negative", nil)
	}
	project, err := s.getOwned(id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	project.TeamVestingMonths = months
	if err := s.repos.Project.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update vesting: %w", err)
	}
	return project, nil
}

// SetAudit records the external audit provider and report URL
func (s *projectServiceImpl) SetAudit(id, requesterID uuid.UUID, isAdmin bool, provider, reportURL string) (*models.Project, error) {
	if provider == "" || reportURL == "" {
		return nil, apperrors.InvalidInput("audit provider and report URL are required", nil)
	}
	project, err := s.getOwned(id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	project.AuditProvider = provider
	project.AuditReportURL = reportURL
	if err := s.repos.Project.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update audit details: %w", err)
	}
	return project, nil
}

// SetContractVerified flips the on-chain verification flag (admin workflow)
func (s *projectServiceImpl) SetContractVerified(id uuid.UUID, verified bool) (*models.Project, error) {
	project, err := s.repos.Project.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.ContractVerified = verified
	if err := s.repos.Project.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update contract verification: %w", err)
	}
	return project, nil
}

// AddDocument stores a document metadata record against the project
func (s *projectServiceImpl) AddDocument(id, requesterID uuid.UUID, isAdmin bool, docType models.DocumentType, fileName, fileURL string) (*models.EntityDocument, error) {
	if !docType.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown document type %q", docType), nil)
	}
	if _, err := s.getOwned(id, requesterID, isAdmin); err != nil {
		return nil, err
	}

	doc := &models.EntityDocument{
		EntityKind: string(trustscore.KindProject),
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
