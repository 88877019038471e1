package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

// GroupRepository handles student_groups database operations
type GroupRepository struct {
	table *dictionaryTable
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		table: &dictionaryTable{
			db:       db,
			sb:       newStatementBuilder(),
			table:    "student_groups",
			idCol:    "group_id",
			nameCol:  "group_name",
			notFound: apperrors.ErrGroupNotFound,
			inUse:    apperrors.ErrGroupInUse,
		},
	}
}

func toGroup(row dictionaryRow) *models.Group {
	return &models.Group{ID: row.ID, Name: row.Name}
}

// GetAll returns every group ordered by id
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.Group, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]*models.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, toGroup(row))
	}
	return groups, nil
}

// Create inserts a group
func (r *GroupRepository) Create(ctx context.Context, name string) (*models.Group, error) {
	row, err := r.table.create(ctx, name)
	if err != nil {
		return nil, err
	}
	return toGroup(row), nil
}

// Update renames a group
func (r *GroupRepository) Update(ctx context.Context, id int64, name string) (*models.Group, error) {
	row, err := r.table.update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return toGroup(row), nil
}

// Delete removes a group
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	return r.table.delete(ctx, id)
}

// Exists reports whether the group exists
func (r *GroupRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.table.exists(ctx, id)
}

// HasDependents reports whether any student belongs to the group
func (r *GroupRepository) HasDependents(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.table.db, r.table.sb, "student", "group_id", id)
}
