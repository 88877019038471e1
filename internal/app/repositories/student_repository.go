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
	"github.com/yigit/practicum/internal/pkg/dberrors"
	"github.com/yigit/practicum/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// StudentRepository handles student database operations. Methods taking a db.Querier run on
// whatever the caller passes, usually an open transaction.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetByUserID resolves the student record of a user
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "user_id", "group_id", "practice_id").
		From("student").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.UserID, &s.GroupID, &s.PracticeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return s, nil
}

// GetProfile returns the student's identity, group, practice, location and practice supervisors.
// The profile row and the supervisor list are read concurrently on separate pool connections.
func (r *StudentRepository) GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	var (
		p           *models.StudentProfile
		supervisors []models.ProfileSupervisor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = r.profileRow(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		supervisors, err = r.profileSupervisors(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.Supervisors = supervisors
	return p, nil
}

func (r *StudentRepository) profileRow(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(
		"u.user_id", "u.username", "u.full_name", "sg.group_name",
		"p.practice_id", "p.start_date", "p.end_date", "pl.location",
	).
		From("student s").
		Join("users u ON u.user_id = s.user_id").
		Join("student_groups sg ON sg.group_id = s.group_id").
		Join("practice p ON p.practice_id = s.practice_id").
		Join("practice_location pl ON pl.location_id = p.location_id").
		Where(squirrel.Eq{"u.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p := &models.StudentProfile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.UserID, &p.Username, &p.FullName, &p.GroupName,
		&p.PracticeID, &p.StartDate, &p.EndDate, &p.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting student profile: %w", err)
	}
	return p, nil
}

// profileSupervisors lists the supervisors of the practice the user's student row points at
func (r *StudentRepository) profileSupervisors(ctx context.Context, userID int64) ([]models.ProfileSupervisor, error) {
	sql, args, err := r.sb.Select("s.supervisor_id", "s.full_name", "up.position_name", "po.organization_name", "r.role_name").
		From("supervisor s").
		Join("student st ON st.practice_id = s.practice_id").
		Join("user_position up ON up.position_id = s.position_id").
		Join("practice_organization po ON po.organization_id = up.organization_id").
		Join("roles r ON r.role_id = s.role_id").
		Where(squirrel.Eq{"st.user_id": userID}).
		OrderBy("s.supervisor_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build profile supervisors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing profile supervisors query")
		return nil, fmt.Errorf("error querying profile supervisors: %w", err)
	}
	defer rows.Close()

	supervisors := []models.ProfileSupervisor{}
	for rows.Next() {
		var s models.ProfileSupervisor
		if err := rows.Scan(&s.ID, &s.FullName, &s.PositionName, &s.OrganizationName, &s.RoleName); err != nil {
			return nil, fmt.Errorf("error scanning profile supervisor row: %w", err)
		}
		supervisors = append(supervisors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile supervisor rows: %w", err)
	}
	return supervisors, nil
}

// LockGroup returns the student's current group and locks the row for the rest of the transaction
func (r *StudentRepository) LockGroup(ctx context.Context, q db.Querier, studentID int64) (int64, error) {
	sql, args, err := r.sb.Select("group_id").
		From("student").
		Where(squirrel.Eq{"student_id": studentID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build lock student query: %w", err)
	}

	var groupID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&groupID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, fmt.Errorf("error locking student: %w", err)
	}
	return groupID, nil
}

// UpdateGroup moves the student to groupID
func (r *StudentRepository) UpdateGroup(ctx context.Context, q db.Querier, studentID, groupID int64) error {
	sql, args, err := r.sb.Update("student").
		Set("group_id", groupID).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student group query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if _, ok := dberrors.IsForeignKeyViolation(err); ok {
			return apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("groupID", groupID).Msg("Error updating student group")
		return fmt.Errorf("error updating student group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes the student row. Diary and individual work rows must be gone first.
func (r *StudentRepository) Delete(ctx context.Context, q db.Querier, studentID int64) error {
	sql, args, err := r.sb.Delete("student").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
