package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/dberrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

// Views backing the view reports
const (
	StudentGroupsViewDDL = `CREATE OR REPLACE VIEW student_groups_view AS
SELECT s.student_id, u.full_name, g.group_name, p.practice_id, p.start_date, p.end_date
FROM student s
JOIN users u ON s.user_id = u.user_id
JOIN student_groups g ON s.group_id = g.group_id
JOIN practice p ON s.practice_id = p.practice_id`

	PracticeStudentsViewDDL = `CREATE OR REPLACE VIEW practice_students_view AS
SELECT p.practice_id, p.start_date, p.end_date, pl.location, COUNT(s.student_id) AS student_count
FROM practice p
LEFT JOIN student s ON p.practice_id = s.practice_id
JOIN practice_location pl ON p.location_id = pl.location_id
GROUP BY p.practice_id, p.start_date, p.end_date, pl.location`
)

// reportCatalog maps report names to their fixed SQL. Password hashes are never selected.
var reportCatalog = map[string]string{
	"users": `SELECT user_id, username, full_name FROM users ORDER BY user_id`,

	"practices": `SELECT practice_id, start_date, end_date, location_id FROM practice ORDER BY start_date`,

	"students-groups": `SELECT s.student_id, u.full_name, g.group_name, p.start_date, p.end_date
FROM student s
JOIN users u ON s.user_id = u.user_id
JOIN student_groups g ON s.group_id = g.group_id
JOIN practice p ON s.practice_id = p.practice_id
ORDER BY s.student_id`,

	"diary": `SELECT entry_id, student_id, work_date, description, created_at, updated_at, is_deleted
FROM work_diary ORDER BY work_date DESC`,

	"admins": `SELECT u.user_id, u.username, u.full_name
FROM users u
WHERE u.user_id IN (SELECT user_id FROM admin_users)
ORDER BY u.user_id`,

	"students-recent-diary": `SELECT DISTINCT s.student_id, u.full_name, g.group_name
FROM student s
JOIN users u ON s.user_id = u.user_id
JOIN student_groups g ON s.group_id = g.group_id
WHERE s.student_id IN (
    SELECT student_id FROM work_diary WHERE work_date >= CURRENT_DATE - INTERVAL '7 days'
)
ORDER BY u.full_name`,

	"students-practice-location": `SELECT u.full_name, g.group_name, p.start_date, p.end_date, pl.location
FROM student s
JOIN users u ON s.user_id = u.user_id
JOIN student_groups g ON s.group_id = g.group_id
JOIN practice p ON s.practice_id = p.practice_id
JOIN practice_location pl ON p.location_id = pl.location_id
ORDER BY p.start_date, u.full_name`,

	"supervisors-details": `SELECT s.full_name, r.role_name, po.organization_name, up.position_name
FROM supervisor s
JOIN roles r ON s.role_id = r.role_id
JOIN user_position up ON s.position_id = up.position_id
JOIN practice_organization po ON up.organization_id = po.organization_id
ORDER BY s.full_name`,

	"student-groups-view": `SELECT * FROM student_groups_view ORDER BY full_name`,

	"practice-students-view": `SELECT * FROM practice_students_view ORDER BY start_date`,
}

// ReportNames lists the catalog in alphabetical order
func ReportNames() []string {
	names := make([]string, 0, len(reportCatalog))
	for name := range reportCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReportRepository runs catalog reports, view DDL, stored functions, stored procedures and
// caller-supplied SELECT text.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// RunReport executes the named catalog report
func (r *ReportRepository) RunReport(ctx context.Context, name string) (*models.ResultSet, error) {
	sql, ok := reportCatalog[name]
	if !ok {
		return nil, apperrors.ErrReportNotFound
	}
	return r.RunSelect(ctx, r.db, sql)
}

// RunSelect executes sql through q and collects every row into a ResultSet. Statements go
// through the extended protocol, which accepts a single statement only.
func (r *ReportRepository) RunSelect(ctx context.Context, q db.Querier, sql string) (*models.ResultSet, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := &models.ResultSet{
		Columns: make([]string, len(fields)),
		Rows:    []map[string]any{},
	}
	for i, fd := range fields {
		result.Columns[i] = fd.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("error reading row values: %w", err)
		}
		row := make(map[string]any, len(values))
		for i, v := range values {
			row[result.Columns[i]] = v
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	result.RowCount = int64(len(result.Rows))
	return result, nil
}

// CreateStudentGroupsView creates or replaces student_groups_view
func (r *ReportRepository) CreateStudentGroupsView(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, StudentGroupsViewDDL); err != nil {
		logger.Error().Err(err).Msg("Error creating student_groups_view")
		return fmt.Errorf("error creating student_groups_view: %w", err)
	}
	return nil
}

// CreatePracticeStudentsView creates or replaces practice_students_view
func (r *ReportRepository) CreatePracticeStudentsView(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, PracticeStudentsViewDDL); err != nil {
		logger.Error().Err(err).Msg("Error creating practice_students_view")
		return fmt.Errorf("error creating practice_students_view: %w", err)
	}
	return nil
}

// StudentsCount calls get_students_count
func (r *ReportRepository) StudentsCount(ctx context.Context, practiceID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT get_students_count($1)`, practiceID).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("practiceID", practiceID).Msg("Error calling get_students_count")
		return 0, fmt.Errorf("error calling get_students_count: %w", err)
	}
	return count, nil
}

// AverageDiaryEntries calls get_avg_diary_entries
func (r *ReportRepository) AverageDiaryEntries(ctx context.Context) (float64, error) {
	var avg float64
	if err := r.db.QueryRow(ctx, `SELECT get_avg_diary_entries()::float8`).Scan(&avg); err != nil {
		logger.Error().Err(err).Msg("Error calling get_avg_diary_entries")
		return 0, fmt.Errorf("error calling get_avg_diary_entries: %w", err)
	}
	return avg, nil
}

// AddStudent calls the add_student procedure. s.PasswordHash must already be hashed.
func (r *ReportRepository) AddStudent(ctx context.Context, s models.NewStudent) error {
	_, err := r.db.Exec(ctx, `CALL add_student($1, $2, $3, $4, $5)`,
		s.Username, s.PasswordHash, s.FullName, s.GroupID, s.PracticeID)
	if err == nil {
		return nil
	}

	if dberrors.IsDuplicateKeyError(err) {
		return ErrUsernameTaken
	}
	if constraint, ok := dberrors.IsForeignKeyViolation(err); ok {
		switch constraint {
		case "student_group_id_fkey":
			return apperrors.ErrGroupNotFound
		case "student_practice_id_fkey":
			return apperrors.ErrPracticeNotFound
		}
	}
	logger.Error().Err(err).Str("username", s.Username).Msg("Error calling add_student")
	return fmt.Errorf("error calling add_student: %w", err)
}

// ClosePractice calls the close_practice procedure
func (r *ReportRepository) ClosePractice(ctx context.Context, practiceID int64, endDate time.Time) error {
	if _, err := r.db.Exec(ctx, `CALL close_practice($1, $2)`, practiceID, endDate); err != nil {
		if dberrors.IsNoDataFound(err) {
			return apperrors.ErrPracticeNotFound
		}
		logger.Error().Err(err).Int64("practiceID", practiceID).Msg("Error calling close_practice")
		return fmt.Errorf("error calling close_practice: %w", err)
	}
	return nil
}
