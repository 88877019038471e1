package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/practicum/internal/app/auth"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/repositories"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/auth"
	"github.com/yigit/practicum/internal/testutil"
)

func countRows(t *testing.T, database *db.PostgresDB, sql string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, database.Pool.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

func TestIntegration_MoveStudent(t *testing.T) {
	database := testutil.DB(t)
	f := testutil.Seed(t, database)
	repos := repositories.NewRepositories(database.Pool)
	svc := NewTransactionService(database, repos.StudentRepository, repos.DiaryRepository, repos.IndividualWorkRepository)
	ctx := context.Background()

	result, err := svc.MoveStudent(ctx, f.StudentID, f.OtherGroupID)
	require.NoError(t, err)
	assert.Equal(t, f.GroupID, result.OldGroupID)

	student, err := repos.StudentRepository.GetByUserID(ctx, f.UserID)
	require.NoError(t, err)
	assert.Equal(t, f.OtherGroupID, student.GroupID)

	entry, err := repos.DiaryRepository.GetByID(ctx, result.DiaryEntryID)
	require.NoError(t, err)
	assert.Contains(t, entry.Description, "Student moved to group ID:")

	// an unknown group fails on the foreign key and leaves the student and diary untouched
	_, err = svc.MoveStudent(ctx, f.StudentID, 9999)
	assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
	student, err = repos.StudentRepository.GetByUserID(ctx, f.UserID)
	require.NoError(t, err)
	assert.Equal(t, f.OtherGroupID, student.GroupID)
	assert.Equal(t, 1, countRows(t, database, `SELECT count(*) FROM work_diary WHERE student_id = $1`, f.StudentID))
}

func TestIntegration_DeleteStudentPurgesSoftDeletedRows(t *testing.T) {
	database := testutil.DB(t)
	f := testutil.Seed(t, database)
	repos := repositories.NewRepositories(database.Pool)
	ctx := context.Background()
	day := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)

	kept, err := repos.DiaryRepository.Create(ctx, f.StudentID, day, "kept")
	require.NoError(t, err)
	hidden, err := repos.DiaryRepository.Create(ctx, f.StudentID, day, "hidden")
	require.NoError(t, err)
	require.NoError(t, repos.DiaryRepository.SoftDelete(ctx, f.StudentID, hidden.ID))

	work, err := repos.IndividualWorkRepository.Create(ctx, &models.IndividualWork{
		StudentID: f.StudentID, IssueDate: day, Description: "report", IssueDeadline: day.AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	require.NoError(t, repos.IndividualWorkRepository.SoftDelete(ctx, f.StudentID, work.ID))

	// soft-deleted rows are invisible to normal reads
	entries, err := repos.DiaryRepository.ListByStudent(ctx, f.StudentID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, kept.ID, entries[0].ID)
	_, err = repos.DiaryRepository.GetByID(ctx, hidden.ID)
	assert.ErrorIs(t, err, apperrors.ErrDiaryEntryNotFound)

	svc := NewTransactionService(database, repos.StudentRepository, repos.DiaryRepository, repos.IndividualWorkRepository)
	result, err := svc.DeleteStudent(ctx, f.StudentID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.DiaryEntriesDeleted)
	assert.Equal(t, int64(1), result.IndividualWorksDeleted)

	assert.Zero(t, countRows(t, database, `SELECT count(*) FROM work_diary WHERE student_id = $1`, f.StudentID))
	assert.Zero(t, countRows(t, database, `SELECT count(*) FROM individual_work WHERE student_id = $1`, f.StudentID))
	assert.Zero(t, countRows(t, database, `SELECT count(*) FROM student WHERE student_id = $1`, f.StudentID))
	assert.Equal(t, 1, countRows(t, database, `SELECT count(*) FROM users WHERE user_id = $1`, f.UserID))
}

func TestIntegration_DynamicQueryIsReadOnly(t *testing.T) {
	database := testutil.DB(t)
	testutil.Seed(t, database)
	repos := repositories.NewRepositories(database.Pool)
	svc := NewQueryService(repos.ReportRepository, database)
	ctx := context.Background()

	result, err := svc.ExecuteDynamic(ctx, "SELECT username FROM users")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RowCount)
	assert.Equal(t, "ivanov", result.Rows[0]["username"])

	_, err = svc.ExecuteDynamic(ctx, "SELECT nextval('users_user_id_seq')")
	assert.ErrorIs(t, err, ErrReadOnlyRejected)

	_, err = svc.ExecuteDynamic(ctx, "SELECT 1; DELETE FROM users")
	assert.Error(t, err)
	assert.Equal(t, 1, countRows(t, database, `SELECT count(*) FROM users`))
}

func TestIntegration_ReportsAndDictionaries(t *testing.T) {
	database := testutil.DB(t)
	f := testutil.Seed(t, database)
	repos := repositories.NewRepositories(database.Pool)
	ctx := context.Background()

	users, err := NewQueryService(repos.ReportRepository, database).RunReport(ctx, "users")
	require.NoError(t, err)
	assert.NotContains(t, users.Columns, "password")

	locations := NewLocationService(repos.LocationRepository)
	err = locations.Delete(ctx, f.LocationID)
	assert.ErrorIs(t, err, apperrors.ErrLocationInUse)

	unused, err := locations.Create(ctx, "  Innopolis ")
	require.NoError(t, err)
	assert.Equal(t, "Innopolis", unused.Location)
	require.NoError(t, locations.Delete(ctx, unused.ID))
}

func TestIntegration_ProceduresAndOwnership(t *testing.T) {
	database := testutil.DB(t)
	f := testutil.Seed(t, database)
	repos := repositories.NewRepositories(database.Pool)
	ctx := context.Background()

	procedures := NewProcedureService(repos.ReportRepository)
	require.NoError(t, procedures.AddStudent(ctx, AddStudentInput{
		Username: "petrov", Password: "secret", FullName: "Petr Petrov", GroupID: f.GroupID, PracticeID: f.PracticeID,
	}))
	petrov, err := repos.UserRepository.GetByUsername(ctx, "petrov")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(petrov.Password, "secret"))

	err = procedures.ClosePractice(ctx, 9999, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrPracticeNotFound)

	diary := NewDiaryService(repos.DiaryRepository, appauth.NewAuthorizationService(repos.StudentRepository))
	entry, err := diary.Create(ctx, f.UserID, nil, "first day")
	require.NoError(t, err)

	_, err = diary.Get(ctx, petrov.ID, entry.ID)
	assert.ErrorIs(t, err, appauth.ErrNotRowOwner)
	assert.ErrorIs(t, diary.Delete(ctx, petrov.ID, entry.ID), apperrors.ErrPermissionDenied)

	count, err := NewQueryService(repos.ReportRepository, database).StudentsCount(ctx, f.PracticeID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestIntegration_StudentProfile(t *testing.T) {
	database := testutil.DB(t)
	f := testutil.Seed(t, database)
	repos := repositories.NewRepositories(database.Pool)
	ctx := context.Background()

	_, err := database.Pool.Exec(ctx,
		`INSERT INTO supervisor (full_name, practice_id, position_id, role_id) VALUES ('Olga Smirnova', $1, $2, $3)`,
		f.PracticeID, f.PositionID, f.RoleID)
	require.NoError(t, err)

	svc := NewStudentService(repos.StudentRepository)
	profile, err := svc.GetProfile(ctx, f.UserID)
	require.NoError(t, err)
	assert.Equal(t, "IT-21", profile.GroupName)
	assert.Equal(t, "Kazan", profile.Location)
	require.Len(t, profile.Supervisors, 1)
	assert.Equal(t, "Olga Smirnova", profile.Supervisors[0].FullName)
	assert.Equal(t, "Acme", profile.Supervisors[0].OrganizationName)

	_, err = svc.GetProfile(ctx, f.UserID+100)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
