package services

import (
	"context"
	"fmt"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// SupervisorService defines the interface for supervisor-related operations
type SupervisorService interface {
	GetAll(ctx context.Context) ([]*models.SupervisorDetails, error)
	Create(ctx context.Context, s *models.Supervisor) (*models.Supervisor, error)
	Update(ctx context.Context, id int64, patch models.SupervisorPatch) (*models.Supervisor, error)
	Delete(ctx context.Context, id int64) error
}

// supervisorServiceImpl implements the SupervisorService interface
type supervisorServiceImpl struct {
	supervisors SupervisorStore
	positions   PositionStore
	roles       DictionaryStore[models.Role]
	catalog     CatalogStore
}

// NewSupervisorService creates a new supervisor service instance
func NewSupervisorService(supervisors SupervisorStore, positions PositionStore, roles DictionaryStore[models.Role], catalog CatalogStore) SupervisorService {
	return &supervisorServiceImpl{
		supervisors: supervisors,
		positions:   positions,
		roles:       roles,
		catalog:     catalog,
	}
}

// checkReferences verifies every supplied foreign key names an existing row
func (s *supervisorServiceImpl) checkReferences(ctx context.Context, practiceID, positionID, roleID *int64) error {
	checks := []struct {
		field    string
		id       *int64
		exists   func(context.Context, int64) (bool, error)
		notFound error
	}{
		{"practice_id", practiceID, s.catalog.PracticeExists, apperrors.ErrPracticeNotFound},
		{"position_id", positionID, s.positions.Exists, apperrors.ErrPositionNotFound},
		{"role_id", roleID, s.roles.Exists, apperrors.ErrRoleNotFound},
	}

	for _, c := range checks {
		if c.id == nil {
			continue
		}
		if err := validation.RequirePositiveID(c.field, *c.id); err != nil {
			return err
		}
		ok, err := c.exists(ctx, *c.id)
		if err != nil {
			return fmt.Errorf("error checking %s: %w", c.field, err)
		}
		if !ok {
			return c.notFound
		}
	}
	return nil
}

// GetAll retrieves all supervisors with their details
func (s *supervisorServiceImpl) GetAll(ctx context.Context) ([]*models.SupervisorDetails, error) {
	supervisors, err := s.supervisors.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving supervisors: %w", err)
	}
	return supervisors, nil
}

// Create creates a new supervisor; practice, position and role are all required
func (s *supervisorServiceImpl) Create(ctx context.Context, sup *models.Supervisor) (*models.Supervisor, error) {
	if sup == nil {
		return nil, apperrors.NewValidationError("supervisor is required")
	}

	fullName, err := validation.RequireName("full_name", sup.FullName)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, &sup.PracticeID, &sup.PositionID, &sup.RoleID); err != nil {
		return nil, err
	}

	created, err := s.supervisors.Create(ctx, &models.Supervisor{
		FullName:   fullName,
		PracticeID: sup.PracticeID,
		PositionID: sup.PositionID,
		RoleID:     sup.RoleID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating supervisor: %w", err)
	}
	return created, nil
}

// Update renames a supervisor and changes the foreign keys present in patch
func (s *supervisorServiceImpl) Update(ctx context.Context, id int64, patch models.SupervisorPatch) (*models.Supervisor, error) {
	if err := validation.RequirePositiveID("id", id); err != nil {
		return nil, err
	}

	fullName, err := validation.RequireName("full_name", patch.FullName)
	if err != nil {
		return nil, err
	}
	patch.FullName = fullName

	if err := s.checkReferences(ctx, patch.PracticeID, patch.PositionID, patch.RoleID); err != nil {
		return nil, err
	}

	updated, err := s.supervisors.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating supervisor: %w", err)
	}
	return updated, nil
}

// Delete deletes a supervisor
func (s *supervisorServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validation.RequirePositiveID("id", id); err != nil {
		return err
	}
	if err := s.supervisors.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting supervisor: %w", err)
	}
	return nil
}
