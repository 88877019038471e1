package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

func TestPositionService_Create(t *testing.T) {
	catalog := newMemCatalog()
	catalog.organizations[3] = "Metallurg LLC"
	positions := newMemPositions()
	svc := NewPositionService(positions, catalog)

	p, err := svc.Create(context.Background(), " Engineer ", 3)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", p.Name)
	assert.Equal(t, int64(3), p.OrganizationID)

	_, err = svc.Create(context.Background(), "Engineer", 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.Create(context.Background(), "Engineer", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), "  ", 3)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Len(t, positions.rows, 1)
}

func TestPositionService_UpdateChecksOrganization(t *testing.T) {
	catalog := newMemCatalog()
	catalog.organizations[1] = "A"
	positions := newMemPositions()
	p, _ := positions.Create(context.Background(), "Lead", 1)

	svc := NewPositionService(positions, catalog)
	_, err := svc.Update(context.Background(), p.ID, "Lead", 2)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
	assert.Equal(t, int64(1), positions.rows[p.ID].OrganizationID)
}

func TestPositionService_DeleteInUse(t *testing.T) {
	positions := newMemPositions()
	p, _ := positions.Create(context.Background(), "Lead", 1)
	positions.deps[p.ID] = true

	err := NewPositionService(positions, newMemCatalog()).Delete(context.Background(), p.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, positions.rows, p.ID)
}
