package services

import (
	"context"
	"time"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/db"
)

// The interfaces below are the persistence contracts the services consume. The pgx
// repositories in internal/app/repositories satisfy them.

// TxRunner runs fn inside one read-write transaction, committing when fn returns nil
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error
}

// ReadOnlyRunner runs fn inside one READ ONLY transaction
type ReadOnlyRunner interface {
	InReadOnlyTx(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error
}

// DictionaryStore persists a single-name reference table
type DictionaryStore[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, name string) (*T, error)
	Update(ctx context.Context, id int64, name string) (*T, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	HasDependents(ctx context.Context, id int64) (bool, error)
}

// PositionStore persists user_position rows
type PositionStore interface {
	GetAll(ctx context.Context) ([]*models.Position, error)
	Create(ctx context.Context, name string, organizationID int64) (*models.Position, error)
	Update(ctx context.Context, id int64, name string, organizationID int64) (*models.Position, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	HasDependents(ctx context.Context, id int64) (bool, error)
}

// SupervisorStore persists supervisor rows
type SupervisorStore interface {
	GetAll(ctx context.Context) ([]*models.SupervisorDetails, error)
	Create(ctx context.Context, s *models.Supervisor) (*models.Supervisor, error)
	Update(ctx context.Context, id int64, patch models.SupervisorPatch) (*models.Supervisor, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogStore reads organizations and practices
type CatalogStore interface {
	GetOrganizations(ctx context.Context) ([]*models.Organization, error)
	GetPractices(ctx context.Context) ([]*models.Practice, error)
	OrganizationExists(ctx context.Context, id int64) (bool, error)
	PracticeExists(ctx context.Context, id int64) (bool, error)
}

// UserStore reads accounts
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// StudentStore reads and mutates student rows
type StudentStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error)
	LockGroup(ctx context.Context, q db.Querier, studentID int64) (int64, error)
	UpdateGroup(ctx context.Context, q db.Querier, studentID, groupID int64) error
	Delete(ctx context.Context, q db.Querier, studentID int64) error
}

// DiaryStore persists work_diary rows
type DiaryStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.DiaryEntry, error)
	GetByID(ctx context.Context, id int64) (*models.DiaryEntry, error)
	Create(ctx context.Context, studentID int64, workDate time.Time, description string) (*models.DiaryEntry, error)
	Update(ctx context.Context, studentID, id int64, workDate *time.Time, description string) (*models.DiaryEntry, error)
	SoftDelete(ctx context.Context, studentID, id int64) error
	InsertDatedToday(ctx context.Context, q db.Querier, studentID int64, description string) (int64, error)
	PurgeByStudent(ctx context.Context, q db.Querier, studentID int64) (int64, error)
}

// IndividualWorkStore persists individual_work rows
type IndividualWorkStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.IndividualWork, error)
	GetByID(ctx context.Context, id int64) (*models.IndividualWork, error)
	Create(ctx context.Context, w *models.IndividualWork) (*models.IndividualWork, error)
	Update(ctx context.Context, studentID, id int64, patch models.IndividualWorkPatch) (*models.IndividualWork, error)
	SoftDelete(ctx context.Context, studentID, id int64) error
	PurgeByStudent(ctx context.Context, q db.Querier, studentID int64) (int64, error)
}

// ReportStore runs reports, view DDL, stored functions and procedures
type ReportStore interface {
	RunReport(ctx context.Context, name string) (*models.ResultSet, error)
	RunSelect(ctx context.Context, q db.Querier, sql string) (*models.ResultSet, error)
	CreateStudentGroupsView(ctx context.Context) error
	CreatePracticeStudentsView(ctx context.Context) error
	StudentsCount(ctx context.Context, practiceID int64) (int64, error)
	AverageDiaryEntries(ctx context.Context) (float64, error)
	AddStudent(ctx context.Context, s models.NewStudent) error
	ClosePractice(ctx context.Context, practiceID int64, endDate time.Time) error
}
