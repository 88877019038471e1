package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

var supervisorColumns = []string{"supervisor_id", "full_name", "practice_id", "position_id", "role_id"}

// SupervisorRepository handles supervisor database operations
type SupervisorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSupervisorRepository creates a new SupervisorRepository
func NewSupervisorRepository(db *pgxpool.Pool) *SupervisorRepository {
	return &SupervisorRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanSupervisor(row pgx.Row) (*models.Supervisor, error) {
	s := &models.Supervisor{}
	if err := row.Scan(&s.ID, &s.FullName, &s.PracticeID, &s.PositionID, &s.RoleID); err != nil {
		return nil, err
	}
	return s, nil
}

// GetAll returns every supervisor joined with practice, role, position and organization
func (r *SupervisorRepository) GetAll(ctx context.Context) ([]*models.SupervisorDetails, error) {
	sql, args, err := r.sb.Select(
		"s.supervisor_id", "s.full_name", "s.practice_id", "s.position_id", "s.role_id",
		"p.start_date", "p.end_date", "r.role_name", "up.position_name", "o.organization_name",
	).
		From("supervisor s").
		Join("practice p ON p.practice_id = s.practice_id").
		Join("roles r ON r.role_id = s.role_id").
		Join("user_position up ON up.position_id = s.position_id").
		Join("practice_organization o ON o.organization_id = up.organization_id").
		OrderBy("s.supervisor_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all supervisors SQL")
		return nil, fmt.Errorf("failed to build get all supervisors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all supervisors query")
		return nil, fmt.Errorf("error querying supervisors: %w", err)
	}
	defer rows.Close()

	supervisors := []*models.SupervisorDetails{}
	for rows.Next() {
		d := &models.SupervisorDetails{}
		if err := rows.Scan(
			&d.ID, &d.FullName, &d.PracticeID, &d.PositionID, &d.RoleID,
			&d.PracticeStart, &d.PracticeEnd, &d.RoleName, &d.PositionName, &d.OrganizationName,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning supervisor row")
			return nil, fmt.Errorf("error scanning supervisor row: %w", err)
		}
		supervisors = append(supervisors, d)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating supervisor rows")
		return nil, fmt.Errorf("error iterating supervisor rows: %w", err)
	}

	return supervisors, nil
}

// Create inserts a supervisor
func (r *SupervisorRepository) Create(ctx context.Context, s *models.Supervisor) (*models.Supervisor, error) {
	sql, args, err := r.sb.Insert("supervisor").
		Columns("full_name", "practice_id", "position_id", "role_id").
		Values(s.FullName, s.PracticeID, s.PositionID, s.RoleID).
		Suffix("RETURNING " + strings.Join(supervisorColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create supervisor SQL")
		return nil, fmt.Errorf("failed to build create supervisor query: %w", err)
	}

	created, err := scanSupervisor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create supervisor query")
		return nil, fmt.Errorf("error creating supervisor: %w", err)
	}
	return created, nil
}

// Update applies patch; nil foreign keys keep their stored value
func (r *SupervisorRepository) Update(ctx context.Context, id int64, patch models.SupervisorPatch) (*models.Supervisor, error) {
	set := map[string]interface{}{"full_name": patch.FullName}
	if patch.PracticeID != nil {
		set["practice_id"] = *patch.PracticeID
	}
	if patch.PositionID != nil {
		set["position_id"] = *patch.PositionID
	}
	if patch.RoleID != nil {
		set["role_id"] = *patch.RoleID
	}

	sql, args, err := r.sb.Update("supervisor").
		SetMap(set).
		Where(squirrel.Eq{"supervisor_id": id}).
		Suffix("RETURNING " + strings.Join(supervisorColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update supervisor SQL")
		return nil, fmt.Errorf("failed to build update supervisor query: %w", err)
	}

	updated, err := scanSupervisor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSupervisorNotFound
		}
		logger.Error().Err(err).Int64("supervisorID", id).Msg("Error executing update supervisor query")
		return nil, fmt.Errorf("error updating supervisor: %w", err)
	}
	return updated, nil
}

// Delete removes a supervisor
func (r *SupervisorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("supervisor").
		Where(squirrel.Eq{"supervisor_id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete supervisor SQL")
		return fmt.Errorf("failed to build delete supervisor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("supervisorID", id).Msg("Error executing delete supervisor query")
		return fmt.Errorf("error deleting supervisor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSupervisorNotFound
	}
	return nil
}
