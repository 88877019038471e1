package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/dberrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

// PositionRepository handles user_position database operations
type PositionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *pgxpool.Pool) *PositionRepository {
	return &PositionRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetAll returns every position with its organization name
func (r *PositionRepository) GetAll(ctx context.Context) ([]*models.Position, error) {
	sql, args, err := r.sb.Select("p.position_id", "p.position_name", "p.organization_id", "o.organization_name").
		From("user_position p").
		Join("practice_organization o ON o.organization_id = p.organization_id").
		OrderBy("p.position_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all positions SQL")
		return nil, fmt.Errorf("failed to build get all positions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all positions query")
		return nil, fmt.Errorf("error querying positions: %w", err)
	}
	defer rows.Close()

	positions := []*models.Position{}
	for rows.Next() {
		p := &models.Position{}
		if err := rows.Scan(&p.ID, &p.Name, &p.OrganizationID, &p.OrganizationName); err != nil {
			logger.Error().Err(err).Msg("Error scanning position row")
			return nil, fmt.Errorf("error scanning position row: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating position rows")
		return nil, fmt.Errorf("error iterating position rows: %w", err)
	}

	return positions, nil
}

// Create inserts a position
func (r *PositionRepository) Create(ctx context.Context, name string, organizationID int64) (*models.Position, error) {
	sql, args, err := r.sb.Insert("user_position").
		Columns("position_name", "organization_id").
		Values(name, organizationID).
		Suffix("RETURNING position_id, position_name, organization_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create position SQL")
		return nil, fmt.Errorf("failed to build create position query: %w", err)
	}

	p := &models.Position{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Name, &p.OrganizationID); err != nil {
		if _, ok := dberrors.IsForeignKeyViolation(err); ok {
			return nil, apperrors.ErrOrganizationNotFound
		}
		logger.Error().Err(err).Msg("Error executing create position query")
		return nil, fmt.Errorf("error creating position: %w", err)
	}
	return p, nil
}

// Update changes a position's name and organization
func (r *PositionRepository) Update(ctx context.Context, id int64, name string, organizationID int64) (*models.Position, error) {
	sql, args, err := r.sb.Update("user_position").
		SetMap(map[string]interface{}{
			"position_name":   name,
			"organization_id": organizationID,
		}).
		Where(squirrel.Eq{"position_id": id}).
		Suffix("RETURNING position_id, position_name, organization_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update position SQL")
		return nil, fmt.Errorf("failed to build update position query: %w", err)
	}

	p := &models.Position{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Name, &p.OrganizationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPositionNotFound
		}
		if _, ok := dberrors.IsForeignKeyViolation(err); ok {
			return nil, apperrors.ErrOrganizationNotFound
		}
		logger.Error().Err(err).Int64("positionID", id).Msg("Error executing update position query")
		return nil, fmt.Errorf("error updating position: %w", err)
	}
	return p, nil
}

// Delete removes a position
func (r *PositionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("user_position").
		Where(squirrel.Eq{"position_id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete position SQL")
		return fmt.Errorf("failed to build delete position query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if _, ok := dberrors.IsForeignKeyViolation(err); ok {
			return apperrors.ErrPositionInUse
		}
		logger.Error().Err(err).Int64("positionID", id).Msg("Error executing delete position query")
		return fmt.Errorf("error deleting position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPositionNotFound
	}
	return nil
}

// Exists reports whether the position exists
func (r *PositionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "user_position", "position_id", id)
}

// HasDependents reports whether any supervisor holds the position
func (r *PositionRepository) HasDependents(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "supervisor", "position_id", id)
}
