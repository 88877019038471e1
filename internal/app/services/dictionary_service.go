package services

import (
	"context"
	"fmt"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// DictionaryService manages a single-name reference table
type DictionaryService[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, name string) (*T, error)
	Update(ctx context.Context, id int64, name string) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Reference-table services
type (
	LocationService = DictionaryService[models.Location]
	GroupService    = DictionaryService[models.Group]
	RoleService     = DictionaryService[models.Role]
)

// dictionaryServiceImpl implements DictionaryService
type dictionaryServiceImpl[T any] struct {
	store  DictionaryStore[T]
	entity string
	field  string
	inUse  error
}

// NewLocationService creates the practice location service
func NewLocationService(store DictionaryStore[models.Location]) LocationService {
	return &dictionaryServiceImpl[models.Location]{store: store, entity: "location", field: "location", inUse: apperrors.ErrLocationInUse}
}

// NewGroupService creates the student group service
func NewGroupService(store DictionaryStore[models.Group]) GroupService {
	return &dictionaryServiceImpl[models.Group]{store: store, entity: "group", field: "group_name", inUse: apperrors.ErrGroupInUse}
}

// NewRoleService creates the supervisor role service
func NewRoleService(store DictionaryStore[models.Role]) RoleService {
	return &dictionaryServiceImpl[models.Role]{store: store, entity: "role", field: "role_name", inUse: apperrors.ErrRoleInUse}
}

// GetAll lists every row
func (s *dictionaryServiceImpl[T]) GetAll(ctx context.Context) ([]*T, error) {
	items, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s list: %w", s.entity, err)
	}
	return items, nil
}

// Create validates and inserts a row
func (s *dictionaryServiceImpl[T]) Create(ctx context.Context, name string) (*T, error) {
	name, err := validation.RequireName(s.field, name)
	if err != nil {
		return nil, err
	}

	item, err := s.store.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", s.entity, err)
	}
	return item, nil
}

// Update validates and renames a row
func (s *dictionaryServiceImpl[T]) Update(ctx context.Context, id int64, name string) (*T, error) {
	if err := validation.RequirePositiveID("id", id); err != nil {
		return nil, err
	}
	name, err := validation.RequireName(s.field, name)
	if err != nil {
		return nil, err
	}

	item, err := s.store.Update(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("error updating %s: %w", s.entity, err)
	}
	return item, nil
}

// Delete removes a row that nothing references
func (s *dictionaryServiceImpl[T]) Delete(ctx context.Context, id int64) error {
	if err := validation.RequirePositiveID("id", id); err != nil {
		return err
	}

	inUse, err := s.store.HasDependents(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking %s dependents: %w", s.entity, err)
	}
	if inUse {
		return s.inUse
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting %s: %w", s.entity, err)
	}
	return nil
}
