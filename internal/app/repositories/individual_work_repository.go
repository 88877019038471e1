package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

const individualWorkReturning = "RETURNING individual_work_id, student_id, issue_date, work_description, " +
	"issue_deadline, complete_mark, created_at, updated_at, is_deleted"

// IndividualWorkRepository handles individual_work database operations
type IndividualWorkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewIndividualWorkRepository creates a new IndividualWorkRepository
func NewIndividualWorkRepository(db *pgxpool.Pool) *IndividualWorkRepository {
	return &IndividualWorkRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanIndividualWork(row pgx.Row) (*models.IndividualWork, error) {
	w := &models.IndividualWork{}
	err := row.Scan(&w.ID, &w.StudentID, &w.IssueDate, &w.Description, &w.IssueDeadline,
		&w.CompleteMark, &w.CreatedAt, &w.UpdatedAt, &w.IsDeleted)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *IndividualWorkRepository) selectWorks() squirrel.SelectBuilder {
	return r.sb.Select("individual_work_id", "student_id", "issue_date", "work_description",
		"issue_deadline", "complete_mark", "created_at", "updated_at", "is_deleted").
		From("individual_work").
		Where(squirrel.Eq{"is_deleted": false})
}

// ListByStudent returns the student's live works, latest issued first
func (r *IndividualWorkRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.IndividualWork, error) {
	sql, args, err := r.selectWorks().
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("issue_date DESC", "individual_work_id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list individual works SQL")
		return nil, fmt.Errorf("failed to build list individual works query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list individual works query")
		return nil, fmt.Errorf("error querying individual works: %w", err)
	}
	defer rows.Close()

	works := []*models.IndividualWork{}
	for rows.Next() {
		w, err := scanIndividualWork(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning individual work row")
			return nil, fmt.Errorf("error scanning individual work row: %w", err)
		}
		works = append(works, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating individual work rows: %w", err)
	}
	return works, nil
}

// GetByID returns a live work regardless of owner
func (r *IndividualWorkRepository) GetByID(ctx context.Context, id int64) (*models.IndividualWork, error) {
	sql, args, err := r.selectWorks().Where(squirrel.Eq{"individual_work_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get individual work query: %w", err)
	}

	w, err := scanIndividualWork(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIndividualWorkNotFound
		}
		logger.Error().Err(err).Int64("individualWorkID", id).Msg("Error scanning individual work")
		return nil, fmt.Errorf("error getting individual work: %w", err)
	}
	return w, nil
}

// Create adds a work for w.StudentID
func (r *IndividualWorkRepository) Create(ctx context.Context, w *models.IndividualWork) (*models.IndividualWork, error) {
	sql, args, err := r.sb.Insert("individual_work").
		Columns("student_id", "issue_date", "work_description", "issue_deadline", "complete_mark").
		Values(w.StudentID, w.IssueDate, w.Description, w.IssueDeadline, w.CompleteMark).
		Suffix(individualWorkReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create individual work query: %w", err)
	}

	created, err := scanIndividualWork(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", w.StudentID).Msg("Error executing create individual work query")
		return nil, fmt.Errorf("error creating individual work: %w", err)
	}
	return created, nil
}

// Update applies the non-nil fields of patch to the student's work
func (r *IndividualWorkRepository) Update(ctx context.Context, studentID, id int64, patch models.IndividualWorkPatch) (*models.IndividualWork, error) {
	set := map[string]interface{}{"updated_at": squirrel.Expr("CURRENT_TIMESTAMP")}
	if patch.IssueDate != nil {
		set["issue_date"] = *patch.IssueDate
	}
	if patch.Description != nil {
		set["work_description"] = *patch.Description
	}
	if patch.IssueDeadline != nil {
		set["issue_deadline"] = *patch.IssueDeadline
	}
	if patch.CompleteMark != nil {
		set["complete_mark"] = *patch.CompleteMark
	}

	sql, args, err := r.sb.Update("individual_work").
		SetMap(set).
		Where(squirrel.Eq{"individual_work_id": id, "student_id": studentID, "is_deleted": false}).
		Suffix(individualWorkReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update individual work query: %w", err)
	}

	w, err := scanIndividualWork(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIndividualWorkNotFound
		}
		logger.Error().Err(err).Int64("individualWorkID", id).Msg("Error executing update individual work query")
		return nil, fmt.Errorf("error updating individual work: %w", err)
	}
	return w, nil
}

// SoftDelete flags the student's work as deleted
func (r *IndividualWorkRepository) SoftDelete(ctx context.Context, studentID, id int64) error {
	sql, args, err := r.sb.Update("individual_work").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"individual_work_id": id, "student_id": studentID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete individual work query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("individualWorkID", id).Msg("Error executing delete individual work query")
		return fmt.Errorf("error deleting individual work: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrIndividualWorkNotFound
	}
	return nil
}

// PurgeByStudent hard deletes every work of the student, soft-deleted ones included
func (r *IndividualWorkRepository) PurgeByStudent(ctx context.Context, q db.Querier, studentID int64) (int64, error) {
	sql, args, err := r.sb.Delete("individual_work").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge individual works query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error purging individual works")
		return 0, fmt.Errorf("error purging individual works: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
