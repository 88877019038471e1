package services

import (
	"context"
	"fmt"

	"github.com/yigit/practicum/internal/app/models"
)

// CatalogService lists the read-only organization and practice tables
type CatalogService interface {
	GetOrganizations(ctx context.Context) ([]*models.Organization, error)
	GetPractices(ctx context.Context) ([]*models.Practice, error)
}

type catalogServiceImpl struct {
	catalog CatalogStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog CatalogStore) CatalogService {
	return &catalogServiceImpl{catalog: catalog}
}

func (s *catalogServiceImpl) GetOrganizations(ctx context.Context) ([]*models.Organization, error) {
	organizations, err := s.catalog.GetOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving organizations: %w", err)
	}
	return organizations, nil
}

func (s *catalogServiceImpl) GetPractices(ctx context.Context) ([]*models.Practice, error) {
	practices, err := s.catalog.GetPractices(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving practices: %w", err)
	}
	return practices, nil
}
