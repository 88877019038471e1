package services

import (
	"context"
	"fmt"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// PositionService defines the interface for position-related operations
type PositionService interface {
	GetAll(ctx context.Context) ([]*models.Position, error)
	Create(ctx context.Context, name string, organizationID int64) (*models.Position, error)
	Update(ctx context.Context, id int64, name string, organizationID int64) (*models.Position, error)
	Delete(ctx context.Context, id int64) error
}

// positionServiceImpl implements the PositionService interface
type positionServiceImpl struct {
	positions PositionStore
	catalog   CatalogStore
}

// NewPositionService creates a new position service instance
func NewPositionService(positions PositionStore, catalog CatalogStore) PositionService {
	return &positionServiceImpl{
		positions: positions,
		catalog:   catalog,
	}
}

// validatePosition checks the name and that the organization exists
func (s *positionServiceImpl) validatePosition(ctx context.Context, name string, organizationID int64) (string, error) {
	name, err := validation.RequireName("position_name", name)
	if err != nil {
		return "", err
	}
	if err := validation.RequirePositiveID("organization_id", organizationID); err != nil {
		return "", err
	}

	exists, err := s.catalog.OrganizationExists(ctx, organizationID)
	if err != nil {
		return "", fmt.Errorf("error checking organization: %w", err)
	}
	if !exists {
		return "", apperrors.ErrOrganizationNotFound
	}
	return name, nil
}

// GetAll retrieves all positions
func (s *positionServiceImpl) GetAll(ctx context.Context) ([]*models.Position, error) {
	positions, err := s.positions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving positions: %w", err)
	}
	return positions, nil
}

// Create creates a new position
func (s *positionServiceImpl) Create(ctx context.Context, name string, organizationID int64) (*models.Position, error) {
	name, err := s.validatePosition(ctx, name, organizationID)
	if err != nil {
		return nil, err
	}

	position, err := s.positions.Create(ctx, name, organizationID)
	if err != nil {
		return nil, fmt.Errorf("error creating position: %w", err)
	}
	return position, nil
}

// Update updates an existing position
func (s *positionServiceImpl) Update(ctx context.Context, id int64, name string, organizationID int64) (*models.Position, error) {
	if err := validation.RequirePositiveID("id", id); err != nil {
		return nil, err
	}
	name, err := s.validatePosition(ctx, name, organizationID)
	if err != nil {
		return nil, err
	}

	position, err := s.positions.Update(ctx, id, name, organizationID)
	if err != nil {
		return nil, fmt.Errorf("error updating position: %w", err)
	}
	return position, nil
}

// Delete deletes a position no supervisor holds
func (s *positionServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validation.RequirePositiveID("id", id); err != nil {
		return err
	}

	inUse, err := s.positions.HasDependents(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking position dependents: %w", err)
	}
	if inUse {
		return apperrors.ErrPositionInUse
	}

	if err := s.positions.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting position: %w", err)
	}
	return nil
}
