package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

// LocationRepository handles practice_location database operations
type LocationRepository struct {
	table *dictionaryTable
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{
		table: &dictionaryTable{
			db:       db,
			sb:       newStatementBuilder(),
			table:    "practice_location",
			idCol:    "location_id",
			nameCol:  "location",
			notFound: apperrors.ErrLocationNotFound,
			inUse:    apperrors.ErrLocationInUse,
		},
	}
}

func toLocation(row dictionaryRow) *models.Location {
	return &models.Location{ID: row.ID, Location: row.Name}
}

// GetAll returns every location ordered by id
func (r *LocationRepository) GetAll(ctx context.Context) ([]*models.Location, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	locations := make([]*models.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, toLocation(row))
	}
	return locations, nil
}

// Create inserts a location
func (r *LocationRepository) Create(ctx context.Context, name string) (*models.Location, error) {
	row, err := r.table.create(ctx, name)
	if err != nil {
		return nil, err
	}
	return toLocation(row), nil
}

// Update renames a location
func (r *LocationRepository) Update(ctx context.Context, id int64, name string) (*models.Location, error) {
	row, err := r.table.update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return toLocation(row), nil
}

// Delete removes a location
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	return r.table.delete(ctx, id)
}

// Exists reports whether the location exists
func (r *LocationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.table.exists(ctx, id)
}

// HasDependents reports whether any practice takes place at the location
func (r *LocationRepository) HasDependents(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.table.db, r.table.sb, "practice", "location_id", id)
}
