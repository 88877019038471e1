package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

const diaryReturning = "RETURNING entry_id, student_id, work_date, description, created_at, updated_at, is_deleted"

// DiaryRepository handles work_diary database operations. Every read and write except
// PurgeByStudent ignores soft-deleted rows.
type DiaryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDiaryRepository creates a new DiaryRepository
func NewDiaryRepository(db *pgxpool.Pool) *DiaryRepository {
	return &DiaryRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanDiaryEntry(row pgx.Row) (*models.DiaryEntry, error) {
	e := &models.DiaryEntry{}
	err := row.Scan(&e.ID, &e.StudentID, &e.WorkDate, &e.Description, &e.CreatedAt, &e.UpdatedAt, &e.IsDeleted)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *DiaryRepository) selectEntries() squirrel.SelectBuilder {
	return r.sb.Select("entry_id", "student_id", "work_date", "description", "created_at", "updated_at", "is_deleted").
		From("work_diary").
		Where(squirrel.Eq{"is_deleted": false})
}

// ListByStudent returns the student's live entries, newest first
func (r *DiaryRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.DiaryEntry, error) {
	sql, args, err := r.selectEntries().
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("work_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list diary SQL")
		return nil, fmt.Errorf("failed to build list diary query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list diary query")
		return nil, fmt.Errorf("error querying diary entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.DiaryEntry{}
	for rows.Next() {
		e, err := scanDiaryEntry(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning diary row")
			return nil, fmt.Errorf("error scanning diary row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating diary rows: %w", err)
	}
	return entries, nil
}

// GetByID returns a live entry regardless of owner
func (r *DiaryRepository) GetByID(ctx context.Context, id int64) (*models.DiaryEntry, error) {
	sql, args, err := r.selectEntries().Where(squirrel.Eq{"entry_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get diary entry query: %w", err)
	}

	e, err := scanDiaryEntry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDiaryEntryNotFound
		}
		logger.Error().Err(err).Int64("entryID", id).Msg("Error scanning diary entry")
		return nil, fmt.Errorf("error getting diary entry: %w", err)
	}
	return e, nil
}

// Create adds an entry for the student
func (r *DiaryRepository) Create(ctx context.Context, studentID int64, workDate time.Time, description string) (*models.DiaryEntry, error) {
	sql, args, err := r.sb.Insert("work_diary").
		Columns("student_id", "work_date", "description").
		Values(studentID, workDate, description).
		Suffix(diaryReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create diary entry query: %w", err)
	}

	e, err := scanDiaryEntry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing create diary entry query")
		return nil, fmt.Errorf("error creating diary entry: %w", err)
	}
	return e, nil
}

// Update rewrites the description, and the work date when one is given, of the student's entry
func (r *DiaryRepository) Update(ctx context.Context, studentID, id int64, workDate *time.Time, description string) (*models.DiaryEntry, error) {
	builder := r.sb.Update("work_diary").
		Set("description", description).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP"))
	if workDate != nil {
		builder = builder.Set("work_date", *workDate)
	}

	sql, args, err := builder.
		Where(squirrel.Eq{"entry_id": id, "student_id": studentID, "is_deleted": false}).
		Suffix(diaryReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update diary entry query: %w", err)
	}

	e, err := scanDiaryEntry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDiaryEntryNotFound
		}
		logger.Error().Err(err).Int64("entryID", id).Msg("Error executing update diary entry query")
		return nil, fmt.Errorf("error updating diary entry: %w", err)
	}
	return e, nil
}

// SoftDelete flags the student's entry as deleted
func (r *DiaryRepository) SoftDelete(ctx context.Context, studentID, id int64) error {
	sql, args, err := r.sb.Update("work_diary").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"entry_id": id, "student_id": studentID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete diary entry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("entryID", id).Msg("Error executing delete diary entry query")
		return fmt.Errorf("error deleting diary entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDiaryEntryNotFound
	}
	return nil
}

// InsertDatedToday adds an entry dated CURRENT_DATE through q and returns its id
func (r *DiaryRepository) InsertDatedToday(ctx context.Context, q db.Querier, studentID int64, description string) (int64, error) {
	sql, args, err := r.sb.Insert("work_diary").
		Columns("student_id", "work_date", "description").
		Values(studentID, squirrel.Expr("CURRENT_DATE"), description).
		Suffix("RETURNING entry_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert diary entry query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error inserting diary entry")
		return 0, fmt.Errorf("error inserting diary entry: %w", err)
	}
	return id, nil
}

// PurgeByStudent hard deletes every entry of the student, soft-deleted ones included
func (r *DiaryRepository) PurgeByStudent(ctx context.Context, q db.Querier, studentID int64) (int64, error) {
	sql, args, err := r.sb.Delete("work_diary").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge diary query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error purging diary entries")
		return 0, fmt.Errorf("error purging diary entries: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
