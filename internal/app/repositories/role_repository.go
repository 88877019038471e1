package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

// RoleRepository handles roles database operations
type RoleRepository struct {
	table *dictionaryTable
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		table: &dictionaryTable{
			db:       db,
			sb:       newStatementBuilder(),
			table:    "roles",
			idCol:    "role_id",
			nameCol:  "role_name",
			notFound: apperrors.ErrRoleNotFound,
			inUse:    apperrors.ErrRoleInUse,
		},
	}
}

func toRole(row dictionaryRow) *models.Role {
	return &models.Role{ID: row.ID, Name: row.Name}
}

// GetAll returns every role ordered by id
func (r *RoleRepository) GetAll(ctx context.Context) ([]*models.Role, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	roles := make([]*models.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, toRole(row))
	}
	return roles, nil
}

// Create inserts a role
func (r *RoleRepository) Create(ctx context.Context, name string) (*models.Role, error) {
	row, err := r.table.create(ctx, name)
	if err != nil {
		return nil, err
	}
	return toRole(row), nil
}

// Update renames a role
func (r *RoleRepository) Update(ctx context.Context, id int64, name string) (*models.Role, error) {
	row, err := r.table.update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return toRole(row), nil
}

// Delete removes a role
func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	return r.table.delete(ctx, id)
}

// Exists reports whether the role exists
func (r *RoleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.table.exists(ctx, id)
}

// HasDependents reports whether any supervisor holds the role
func (r *RoleRepository) HasDependents(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.table.db, r.table.sb, "supervisor", "role_id", id)
}
